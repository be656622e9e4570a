package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dexscan/internal/application"
	"dexscan/internal/domain"
)

// Directories never descended into, on top of the hidden-dir rule.
var defaultExclusions = map[string]bool{
	".git":         true,
	".obsidian":    true,
	"node_modules": true,
	".dexscan":     true,
}

// Repository implements ports.VaultRepository using the filesystem
type Repository struct {
	root string
}

// NewRepository creates a new filesystem repository rooted at vaultPath.
func NewRepository(vaultPath string) (*Repository, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	abs, err := filepath.Abs(vaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", application.ErrVaultNotFound, abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", application.ErrVaultNotFound, abs)
	}

	return &Repository{root: abs}, nil
}

// Root returns the absolute vault root path.
func (r *Repository) Root() string {
	return r.root
}

// ListMarkdown returns markdown documents under dir, relative to the vault
// root, descending at most maxDepth directory levels (0 means no limit).
// A missing directory yields no documents rather than an error.
func (r *Repository) ListMarkdown(dir string, maxDepth int) ([]domain.Document, error) {
	base := filepath.Join(r.root, filepath.FromSlash(dir))

	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	var docs []domain.Document
	err = filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			if path == base {
				return nil
			}
			name := info.Name()
			if strings.HasPrefix(name, ".") || defaultExclusions[name] {
				return filepath.SkipDir
			}
			if maxDepth > 0 && dirDepth(base, path) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		name := info.Name()
		if strings.HasPrefix(name, ".") || !domain.IsMarkdown(name) {
			return nil
		}

		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return nil
		}
		docs = append(docs, domain.NewDocument(filepath.ToSlash(rel), info.ModTime()))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	return docs, nil
}

// ReadFile reads a vault-relative file.
func (r *Repository) ReadFile(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.root, filepath.FromSlash(relPath)))
}

// CountFiles counts entries directly under dir matching glob.
// exists is false when dir is missing.
func (r *Repository) CountFiles(dir, glob string) (int, bool) {
	entries, err := os.ReadDir(filepath.Join(r.root, filepath.FromSlash(dir)))
	if err != nil {
		return 0, false
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if ok, _ := filepath.Match(glob, entry.Name()); ok {
			count++
		}
	}
	return count, true
}

// dirDepth returns how many levels below base a directory sits.
func dirDepth(base, path string) int {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
