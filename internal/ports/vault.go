package ports

import "dexscan/internal/domain"

// VaultRepository defines read access to the vault's file tree.
// Implementations never fail on missing directories; they return empty
// results so scans degrade gracefully on partial vaults.
type VaultRepository interface {
	// ListMarkdown returns the markdown documents under dir (relative to
	// the vault root), descending at most maxDepth directory levels.
	// maxDepth 0 means no limit.
	ListMarkdown(dir string, maxDepth int) ([]domain.Document, error)

	// ReadFile reads a vault-relative file.
	ReadFile(relPath string) ([]byte, error)

	// CountFiles counts entries directly under dir matching glob.
	// exists is false when dir is missing.
	CountFiles(dir, glob string) (count int, exists bool)

	// Root returns the absolute vault root path.
	Root() string
}
