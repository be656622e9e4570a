package commands

import (
	"context"
	"testing"
)

func TestBrokenLinksCommand(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "01-Projects/Alpha.md", "see [[Beta]] and [[Missing Page]]", 1)
	writeNote(t, root, "02-Areas/Beta.md", "links back to [[Alpha]]", 1)

	cmd := NewBrokenLinksCommand(newTestRepo(t, root))
	broken, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(broken) != 1 {
		t.Fatalf("got %d broken links, want 1: %+v", len(broken), broken)
	}
	if broken[0].Source != "01-Projects/Alpha.md" || broken[0].Target != "Missing Page" {
		t.Errorf("got %+v", broken[0])
	}
}

func TestBrokenLinksCommandResolvesAcrossDirs(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "03-Meetings/standup.md", "with [[Jane Doe]]", 1)
	writeNote(t, root, "04-People/Jane Doe.md", "", 1)

	cmd := NewBrokenLinksCommand(newTestRepo(t, root))
	broken, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(broken) != 0 {
		t.Errorf("got %+v, want none", broken)
	}
}

func TestBrokenLinksCommandCaseSensitive(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "01-Projects/Alpha.md", "see [[beta]]", 1)
	writeNote(t, root, "02-Areas/Beta.md", "", 1)

	cmd := NewBrokenLinksCommand(newTestRepo(t, root))
	broken, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(broken) != 1 {
		t.Errorf("lowercase target should not resolve, got %+v", broken)
	}
}

func TestBrokenLinksCommandAliasedLink(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "01-Projects/Alpha.md", "ping [[Gone|the gone page]]", 1)

	cmd := NewBrokenLinksCommand(newTestRepo(t, root))
	broken, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(broken) != 1 || broken[0].Target != "Gone" {
		t.Errorf("got %+v", broken)
	}
}

func TestBrokenLinksCommandSampleLimit(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "00-Inbox/first.md", "[[Nowhere A]]", 1)
	writeNote(t, root, "01-Projects/second.md", "[[Nowhere B]]", 1)

	cmd := NewBrokenLinksCommand(newTestRepo(t, root))
	cmd.SampleLimit = 1
	broken, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Only the first corpus file gets its links checked; the name index
	// still covers everything.
	if len(broken) != 1 || broken[0].Target != "Nowhere A" {
		t.Errorf("got %+v", broken)
	}
}
