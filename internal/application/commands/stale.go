package commands

import (
	"context"
	"time"

	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// StaleFilesCommand finds documents under a directory that have not been
// modified for more than ThresholdDays.
type StaleFilesCommand struct {
	repo          ports.VaultRepository
	Dir           string
	ThresholdDays int
	Now           time.Time
}

// NewStaleFilesCommand creates a new StaleFilesCommand
func NewStaleFilesCommand(repo ports.VaultRepository, dir string, thresholdDays int) *StaleFilesCommand {
	return &StaleFilesCommand{
		repo:          repo,
		Dir:           dir,
		ThresholdDays: thresholdDays,
		Now:           time.Now(),
	}
}

// Execute runs the stale scan and returns findings in traversal order.
// Files with an unknown mod time are skipped rather than flagged.
func (c *StaleFilesCommand) Execute(ctx context.Context) ([]domain.StaleFile, error) {
	docs, err := c.repo.ListMarkdown(c.Dir, 0)
	if err != nil {
		return nil, err
	}

	var stale []domain.StaleFile
	for _, doc := range docs {
		if doc.ModTime.IsZero() {
			continue
		}
		age := doc.AgeDays(c.Now)
		if age > c.ThresholdDays {
			stale = append(stale, domain.StaleFile{Path: doc.Path, AgeDays: age})
		}
	}

	return stale, nil
}
