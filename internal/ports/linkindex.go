package ports

import "dexscan/internal/domain"

// LinkIndex provides cached access to the vault's wiki-link graph.
// Query operations should be O(log n) via database indexes.
type LinkIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Backlinks returns the cross references pointing at a document name.
	Backlinks(targetName string) ([]domain.CrossReference, error)

	// LinksFrom returns the cross references originating in a file.
	LinksFrom(sourcePath string) ([]domain.CrossReference, error)
}
