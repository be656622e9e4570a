package commands

import (
	"context"

	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// BrokenLinksCommand finds wiki-links whose target name matches no
// document in the corpus. The name index covers every corpus document;
// link extraction samples at most SampleLimit files to bound read I/O.
type BrokenLinksCommand struct {
	repo        ports.VaultRepository
	SampleLimit int
}

// NewBrokenLinksCommand creates a new BrokenLinksCommand
func NewBrokenLinksCommand(repo ports.VaultRepository) *BrokenLinksCommand {
	return &BrokenLinksCommand{
		repo:        repo,
		SampleLimit: domain.LinkSampleLimit,
	}
}

// Execute runs the link-integrity scan. Matching is exact and
// case-sensitive, mirroring how the vault's editor resolves links.
func (c *BrokenLinksCommand) Execute(ctx context.Context) ([]domain.BrokenLink, error) {
	var corpus []domain.Document
	names := make(map[string]bool)

	for _, dir := range domain.CorpusDirs {
		docs, err := c.repo.ListMarkdown(dir, domain.LinkCorpusDepth)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			names[doc.Name] = true
		}
		corpus = append(corpus, docs...)
	}

	sample := corpus
	if c.SampleLimit > 0 && len(sample) > c.SampleLimit {
		sample = sample[:c.SampleLimit]
	}

	var broken []domain.BrokenLink
	for _, doc := range sample {
		content, err := c.repo.ReadFile(doc.Path)
		if err != nil {
			continue
		}
		for _, ref := range domain.ExtractLinks(doc.Path, string(content)) {
			if !names[ref.Target] {
				broken = append(broken, domain.BrokenLink{
					Source: doc.Path,
					Target: ref.Target,
				})
			}
		}
	}

	return broken, nil
}
