package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Document represents a markdown file in the vault.
// Identity is the relative path; Name (path with directory and extension
// stripped) is the secondary identity used for wiki-link resolution.
type Document struct {
	Path    string // relative to the vault root
	Name    string // filename without extension
	ModTime time.Time
}

// NewDocument builds a Document from a vault-relative path and mod time.
func NewDocument(relPath string, modTime time.Time) Document {
	return Document{
		Path:    relPath,
		Name:    DocumentName(relPath),
		ModTime: modTime,
	}
}

// DocumentName returns the document name for a vault-relative path:
// the base filename with its extension stripped.
func DocumentName(relPath string) string {
	base := filepath.Base(relPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AgeDays returns the document's age in whole days at the given instant.
func (d Document) AgeDays(now time.Time) int {
	return int(now.Sub(d.ModTime).Hours() / 24)
}

// IsMarkdown reports whether a filename looks like a markdown document.
func IsMarkdown(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".md")
}
