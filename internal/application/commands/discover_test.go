package commands

import (
	"context"
	"fmt"
	"testing"

	"dexscan/internal/domain"
)

// fakeIndex is a test double for ports.SearchIndex.
type fakeIndex struct {
	available bool
	status    *domain.IndexStatus
	err       error
}

func (f *fakeIndex) IsAvailable() bool { return f.available }

func (f *fakeIndex) Status() (*domain.IndexStatus, error) { return f.status, f.err }

func seedPeopleVault(t *testing.T, root string, people, inbox int) {
	t.Helper()
	for i := 0; i < people; i++ {
		writeNote(t, root, fmt.Sprintf("04-People/person-%d.md", i), "", 1)
	}
	for i := 0; i < inbox; i++ {
		writeNote(t, root, fmt.Sprintf("00-Inbox/note-%d.md", i), "", 1)
	}
}

func evalByName(evals []domain.Evaluation, name string) domain.Evaluation {
	for _, ev := range evals {
		if ev.Name == name {
			return ev
		}
	}
	return domain.Evaluation{}
}

func TestDiscoverCommand(t *testing.T) {
	root := t.TempDir()
	seedPeopleVault(t, root, 3, 4)

	cmd := NewDiscoverCommand(newTestRepo(t, root), nil)
	evals, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got := evalByName(evals, "people"); got.State != domain.StateCandidate {
		t.Errorf("people: got state %q, want candidate (%+v)", got.State, got)
	}
	if got := evalByName(evals, "inbox"); got.State != domain.StateSkippedTooFew {
		t.Errorf("inbox: got state %q, want skipped-too-few (%+v)", got.State, got)
	}
	if got := evalByName(evals, "resources"); got.State != domain.StateSkippedAbsent {
		t.Errorf("resources: got state %q, want skipped-absent", got.State)
	}
}

func TestDiscoverCommandIdempotent(t *testing.T) {
	root := t.TempDir()
	seedPeopleVault(t, root, 3, 4)

	cmd := NewDiscoverCommand(newTestRepo(t, root), nil)
	first, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("got %d then %d evaluations", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("evaluation %d changed between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDiscoverHealthCheck(t *testing.T) {
	root := t.TempDir()
	seedPeopleVault(t, root, 3, 0)

	index := &fakeIndex{
		available: true,
		status: &domain.IndexStatus{
			Collections:       []domain.ExistingCollection{{Name: "people", FileCount: 2}},
			PendingEmbeddings: 4,
		},
	}

	cmd := NewDiscoverCommand(newTestRepo(t, root), index)
	hc, err := cmd.HealthCheck(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !hc.IndexAvailable {
		t.Error("expected index available")
	}
	if len(hc.StaleCollections) != 1 || hc.StaleCollections[0].Drift != 1 {
		t.Errorf("got stale collections %+v", hc.StaleCollections)
	}
	if hc.PendingEmbeddings != 4 {
		t.Errorf("got pending %d", hc.PendingEmbeddings)
	}
	if len(hc.NewCandidates) != 0 {
		t.Errorf("got new candidates %+v", hc.NewCandidates)
	}
}

func TestDiscoverHealthCheckIndexDown(t *testing.T) {
	root := t.TempDir()
	seedPeopleVault(t, root, 3, 0)

	cmd := NewDiscoverCommand(newTestRepo(t, root), &fakeIndex{available: false})
	hc, err := cmd.HealthCheck(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if hc.IndexAvailable {
		t.Error("expected index unavailable")
	}
	if len(hc.NewCandidates) != 1 {
		t.Errorf("candidates should still be reported, got %+v", hc.NewCandidates)
	}
}

func TestDiscoverSuggestions(t *testing.T) {
	root := t.TempDir()
	seedPeopleVault(t, root, 3, 0)

	index := &fakeIndex{available: true, status: &domain.IndexStatus{}}
	cmd := NewDiscoverCommand(newTestRepo(t, root), index)
	suggestions, err := cmd.Suggestions(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions: %v", len(suggestions), suggestions)
	}
}
