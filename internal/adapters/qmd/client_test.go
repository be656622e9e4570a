package qmd

import "testing"

func TestParseStatus(t *testing.T) {
	output := `qmd index status

Collections:
  meetings    142 files   updated 2025-06-01
  people       38 files   updated 2025-05-28
  projects     12 files

Pending embeddings: 12
`

	status := parseStatus(output)

	if len(status.Collections) != 3 {
		t.Fatalf("got %d collections: %+v", len(status.Collections), status.Collections)
	}
	if status.Collections[0].Name != "meetings" || status.Collections[0].FileCount != 142 {
		t.Errorf("got %+v", status.Collections[0])
	}
	if status.Collections[0].UpdatedAt != "2025-06-01" {
		t.Errorf("got updated %q", status.Collections[0].UpdatedAt)
	}
	if status.Collections[2].UpdatedAt != "" {
		t.Errorf("projects should have no update stamp, got %q", status.Collections[2].UpdatedAt)
	}
	if status.PendingEmbeddings != 12 {
		t.Errorf("got pending %d, want 12", status.PendingEmbeddings)
	}
}

func TestParseStatusEmptyIndex(t *testing.T) {
	status := parseStatus("Collections:\n\nPending embeddings: 0\n")

	if len(status.Collections) != 0 {
		t.Errorf("got %+v", status.Collections)
	}
	if status.PendingEmbeddings != 0 {
		t.Errorf("got pending %d", status.PendingEmbeddings)
	}
}

func TestParseStatusUnexpectedFormat(t *testing.T) {
	status := parseStatus("something entirely different\n")

	if len(status.Collections) != 0 || status.PendingEmbeddings != 0 {
		t.Errorf("unexpected output should parse to empty status, got %+v", status)
	}
}
