package ports

import "dexscan/internal/domain"

// SearchIndex provides read access to the external semantic search index.
// Availability is probed once and cached; all operations degrade to
// "unavailable" rather than failing the scan.
type SearchIndex interface {
	// IsAvailable reports whether the index backend can be reached.
	IsAvailable() bool

	// Status returns the index's current collections and pending work.
	Status() (*domain.IndexStatus, error)
}
