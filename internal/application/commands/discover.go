package commands

import (
	"context"

	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// DiscoverCommand evaluates the collection catalog against the vault and,
// in health-check mode, cross-references the search index.
type DiscoverCommand struct {
	repo    ports.VaultRepository
	index   ports.SearchIndex
	Catalog []domain.CollectionCandidate
}

// NewDiscoverCommand creates a new DiscoverCommand
func NewDiscoverCommand(repo ports.VaultRepository, index ports.SearchIndex) *DiscoverCommand {
	return &DiscoverCommand{
		repo:    repo,
		index:   index,
		Catalog: domain.DefaultCatalog,
	}
}

// Execute evaluates every catalog candidate, sorted by priority.
func (c *DiscoverCommand) Execute(ctx context.Context) ([]domain.Evaluation, error) {
	return domain.EvaluateCatalog(c.Catalog, c.repo.CountFiles), nil
}

// HealthCheck compares discovered candidates against the search index.
// An unreachable index is reported in the result, never as an error.
func (c *DiscoverCommand) HealthCheck(ctx context.Context) (domain.HealthCheck, error) {
	evals, err := c.Execute(ctx)
	if err != nil {
		return domain.HealthCheck{}, err
	}

	var status *domain.IndexStatus
	if c.index != nil && c.index.IsAvailable() {
		if s, err := c.index.Status(); err == nil {
			status = s
		}
	}

	return domain.BuildHealthCheck(evals, status), nil
}

// Suggestions returns only the actionable suggestion strings from a
// health check.
func (c *DiscoverCommand) Suggestions(ctx context.Context) ([]string, error) {
	hc, err := c.HealthCheck(ctx)
	if err != nil {
		return nil, err
	}
	return hc.Suggestions, nil
}
