package commands

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestMaintenanceCommandHealthyVault(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "00-Inbox/fresh.md", "nothing to see", 1)

	cmd := NewMaintenanceCommand(newTestRepo(t, root))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !report.Healthy() {
		t.Errorf("expected healthy report, got %+v", report)
	}

	var buf strings.Builder
	RenderReport(&buf, report)
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("got output %q", buf.String())
	}
}

func TestMaintenanceCommandFindings(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "00-Inbox/old.md", "stale [[Nobody]]", 45)
	writeNote(t, root, "04-People/John Roe.md", "", 1)
	writeNote(t, root, "System/Memories/2024-01-01.md", "old memory", 120)

	cmd := NewMaintenanceCommand(newTestRepo(t, root))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(report.StaleFiles) != 1 {
		t.Errorf("got stale files %+v", report.StaleFiles)
	}
	if len(report.BrokenLinks) != 1 {
		t.Errorf("got broken links %+v", report.BrokenLinks)
	}
	if len(report.OrphanedPages) != 1 {
		t.Errorf("got orphans %+v", report.OrphanedPages)
	}
	if len(report.StaleMemoryEntries) != 1 {
		t.Errorf("got stale memories %+v", report.StaleMemoryEntries)
	}
	if report.Total() != 4 {
		t.Errorf("got total %d, want 4", report.Total())
	}
}

func TestMaintenanceCommandIdempotent(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "00-Inbox/old.md", "stale", 45)

	cmd := NewMaintenanceCommand(newTestRepo(t, root))
	first, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.Total() != second.Total() {
		t.Errorf("totals drifted between runs: %d vs %d", first.Total(), second.Total())
	}
}

func TestRenderReportCapsSections(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 13; i++ {
		writeNote(t, root, fmt.Sprintf("00-Inbox/old-%02d.md", i), "stale", 60)
	}

	cmd := NewMaintenanceCommand(newTestRepo(t, root))
	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	RenderReport(&buf, report)
	out := buf.String()

	if !strings.Contains(out, "...and 3 more") {
		t.Errorf("expected elision marker, got:\n%s", out)
	}
	if !strings.Contains(out, "13 issues found.") {
		t.Errorf("expected total line, got:\n%s", out)
	}
}
