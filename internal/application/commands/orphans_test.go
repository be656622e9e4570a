package commands

import (
	"context"
	"testing"
)

func TestOrphanedPagesCommand(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "04-People/Jane Doe.md", "", 1)
	writeNote(t, root, "04-People/John Roe.md", "", 1)
	writeNote(t, root, "System/Tasks.md", "- [ ] follow up with Jane Doe", 1)

	cmd := NewOrphanedPagesCommand(newTestRepo(t, root))
	orphans, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(orphans) != 1 {
		t.Fatalf("got %d orphans, want 1: %+v", len(orphans), orphans)
	}
	if orphans[0].Name != "John Roe" {
		t.Errorf("got %q, want John Roe", orphans[0].Name)
	}
}

func TestOrphanedPagesCommandMeetingMention(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "04-People/John Roe.md", "", 1)
	writeNote(t, root, "03-Meetings/standup.md", "John Roe gave an update", 1)

	cmd := NewOrphanedPagesCommand(newTestRepo(t, root))
	orphans, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(orphans) != 0 {
		t.Errorf("got %+v, want none", orphans)
	}
}

func TestOrphanedPagesCommandOldMeetingDoesNotCount(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "04-People/John Roe.md", "", 1)
	writeNote(t, root, "03-Meetings/recent-a.md", "nothing relevant", 2)
	writeNote(t, root, "03-Meetings/recent-b.md", "nothing relevant", 3)
	writeNote(t, root, "03-Meetings/ancient.md", "John Roe was here", 400)

	cmd := NewOrphanedPagesCommand(newTestRepo(t, root))
	cmd.RecentMeetings = 2
	orphans, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(orphans) != 1 {
		t.Errorf("mention outside the recent window should not count, got %+v", orphans)
	}
}

func TestOrphanedPagesCommandNoPeopleDir(t *testing.T) {
	cmd := NewOrphanedPagesCommand(newTestRepo(t, t.TempDir()))
	orphans, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if orphans != nil {
		t.Errorf("got %+v, want nil", orphans)
	}
}
