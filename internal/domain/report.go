package domain

import "time"

// StaleFile is a document left untouched past an age threshold.
type StaleFile struct {
	Path    string `json:"path"`
	AgeDays int    `json:"ageDays"`
}

// BrokenLink is a wiki-link whose target resolves to no known document.
type BrokenLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// OrphanedPage is a document referenced nowhere in the monitored corpora.
type OrphanedPage struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Report aggregates the findings of a full maintenance scan.
// All entities are derived fresh on each invocation; nothing is persisted.
type Report struct {
	StaleFiles         []StaleFile    `json:"staleFiles"`
	BrokenLinks        []BrokenLink   `json:"brokenLinks"`
	OrphanedPages      []OrphanedPage `json:"orphanedPages"`
	StaleMemoryEntries []StaleFile    `json:"staleMemoryEntries"`
}

// Total returns the overall number of findings.
func (r *Report) Total() int {
	return len(r.StaleFiles) + len(r.BrokenLinks) + len(r.OrphanedPages) + len(r.StaleMemoryEntries)
}

// Healthy reports whether the scan found nothing to fix.
func (r *Report) Healthy() bool {
	return r.Total() == 0
}

// SyncStats holds statistics from a link-index sync operation.
type SyncStats struct {
	NodesAdded   int
	NodesUpdated int
	NodesDeleted int
	EdgesAdded   int
	FilesScanned int
	Duration     time.Duration
}
