package domain

import (
	"testing"
	"time"
)

func TestDocumentName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"04-People/Jane Doe.md", "Jane Doe"},
		{"note.md", "note"},
		{"System/Memories/2025-01-03.md", "2025-01-03"},
		{"no-extension", "no-extension"},
	}

	for _, tt := range tests {
		if got := DocumentName(tt.path); got != tt.want {
			t.Errorf("DocumentName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAgeDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := NewDocument("a.md", now.AddDate(0, 0, -31))

	if got := doc.AgeDays(now); got != 31 {
		t.Errorf("got %d days, want 31", got)
	}
}

func TestIsMarkdown(t *testing.T) {
	if !IsMarkdown("Note.MD") {
		t.Error("uppercase extension should match")
	}
	if IsMarkdown("image.png") {
		t.Error("png should not match")
	}
}
