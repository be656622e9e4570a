package views

import (
	"testing"

	"dexscan/internal/domain"
)

type stubRepo struct{}

func (stubRepo) ListMarkdown(dir string, maxDepth int) ([]domain.Document, error) { return nil, nil }
func (stubRepo) ReadFile(relPath string) ([]byte, error)                          { return nil, nil }
func (stubRepo) CountFiles(dir, glob string) (int, bool)                          { return 0, false }
func (stubRepo) Root() string                                                     { return "/vault" }

func TestBuildFindings(t *testing.T) {
	report := &domain.Report{
		StaleFiles:    []domain.StaleFile{{Path: "00-Inbox/a.md", AgeDays: 40}},
		BrokenLinks:   []domain.BrokenLink{{Source: "01-Projects/b.md", Target: "Gone"}},
		OrphanedPages: []domain.OrphanedPage{{Path: "04-People/c.md", Name: "c"}},
	}
	health := domain.HealthCheck{Suggestions: []string{"create collection \"people\""}}

	fs := buildFindings(report, health)

	if len(fs) != 4 {
		t.Fatalf("got %d findings, want 4", len(fs))
	}
	if fs[0].path != "00-Inbox/a.md" {
		t.Errorf("got %+v", fs[0])
	}
	if fs[1].section != "Broken links" {
		t.Errorf("got section %q", fs[1].section)
	}
	if fs[3].path != "" {
		t.Error("suggestions should not carry a path")
	}
}

func TestReportModelScanDone(t *testing.T) {
	m := NewReportModel(stubRepo{}, nil)

	m.Update(scanDoneMsg{
		report: &domain.Report{
			StaleFiles: []domain.StaleFile{{Path: "00-Inbox/a.md", AgeDays: 31}},
		},
	})

	if m.scanning {
		t.Error("scan should be finished")
	}
	if len(m.findings) != 1 {
		t.Fatalf("got %d findings", len(m.findings))
	}
	if _, ok := m.selected(); !ok {
		t.Error("cursor should land on the first finding")
	}
}
