package commands

import (
	"context"
	"fmt"
	"io"

	"dexscan/internal/application"
	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// MaintenanceCommand runs every health check and aggregates the findings
// into a single report. The report is computed fresh on each run.
type MaintenanceCommand struct {
	repo ports.VaultRepository
}

// NewMaintenanceCommand creates a new MaintenanceCommand
func NewMaintenanceCommand(repo ports.VaultRepository) *MaintenanceCommand {
	return &MaintenanceCommand{repo: repo}
}

// Execute runs all scans and returns the aggregate report.
func (c *MaintenanceCommand) Execute(ctx context.Context) (*domain.Report, error) {
	report := &domain.Report{}

	stale, err := NewStaleFilesCommand(c.repo, domain.InboxDir, domain.StaleInboxDays).Execute(ctx)
	if err != nil {
		return nil, &application.ScanError{Section: "stale files", Err: err}
	}
	report.StaleFiles = stale

	broken, err := NewBrokenLinksCommand(c.repo).Execute(ctx)
	if err != nil {
		return nil, &application.ScanError{Section: "broken links", Err: err}
	}
	report.BrokenLinks = broken

	orphans, err := NewOrphanedPagesCommand(c.repo).Execute(ctx)
	if err != nil {
		return nil, &application.ScanError{Section: "orphaned pages", Err: err}
	}
	report.OrphanedPages = orphans

	memories, err := NewStaleFilesCommand(c.repo, domain.MemoriesDir, domain.StaleMemoryDays).Execute(ctx)
	if err != nil {
		return nil, &application.ScanError{Section: "stale memories", Err: err}
	}
	report.StaleMemoryEntries = memories

	return report, nil
}

// RenderReport writes a human-readable report. Each section shows at most
// domain.ReportSectionCap lines, then a count of what was elided.
func RenderReport(w io.Writer, r *domain.Report) {
	if r.Healthy() {
		fmt.Fprintln(w, "No issues found. Vault is healthy.")
		return
	}

	if len(r.StaleFiles) > 0 {
		fmt.Fprintf(w, "Stale inbox files (untouched %d+ days):\n", domain.StaleInboxDays)
		renderSection(w, len(r.StaleFiles), func(i int) string {
			return fmt.Sprintf("%s (%d days)", r.StaleFiles[i].Path, r.StaleFiles[i].AgeDays)
		})
	}

	if len(r.BrokenLinks) > 0 {
		fmt.Fprintln(w, "Broken links:")
		renderSection(w, len(r.BrokenLinks), func(i int) string {
			return fmt.Sprintf("%s -> [[%s]]", r.BrokenLinks[i].Source, r.BrokenLinks[i].Target)
		})
	}

	if len(r.OrphanedPages) > 0 {
		fmt.Fprintln(w, "Orphaned people pages:")
		renderSection(w, len(r.OrphanedPages), func(i int) string {
			return r.OrphanedPages[i].Path
		})
	}

	if len(r.StaleMemoryEntries) > 0 {
		fmt.Fprintf(w, "Stale memory entries (untouched %d+ days):\n", domain.StaleMemoryDays)
		renderSection(w, len(r.StaleMemoryEntries), func(i int) string {
			return fmt.Sprintf("%s (%d days)", r.StaleMemoryEntries[i].Path, r.StaleMemoryEntries[i].AgeDays)
		})
	}

	fmt.Fprintf(w, "%d issues found.\n", r.Total())
}

func renderSection(w io.Writer, total int, line func(i int) string) {
	shown := total
	if shown > domain.ReportSectionCap {
		shown = domain.ReportSectionCap
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(w, "  - %s\n", line(i))
	}
	if total > shown {
		fmt.Fprintf(w, "  ...and %d more\n", total-shown)
	}
	fmt.Fprintln(w)
}
