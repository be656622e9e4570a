package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewRepositoryMissingVault(t *testing.T) {
	_, err := NewRepository(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing vault")
	}
}

func TestListMarkdown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "00-Inbox/one.md")
	writeFile(t, root, "00-Inbox/two.MD")
	writeFile(t, root, "00-Inbox/image.png")
	writeFile(t, root, "00-Inbox/sub/three.md")
	writeFile(t, root, "00-Inbox/.hidden.md")
	writeFile(t, root, "00-Inbox/.trash/gone.md")
	writeFile(t, root, "00-Inbox/node_modules/pkg/readme.md")

	repo, err := NewRepository(root)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := repo.ListMarkdown("00-Inbox", 0)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]bool{
		"00-Inbox/one.md":       true,
		"00-Inbox/two.MD":       true,
		"00-Inbox/sub/three.md": true,
	}
	if len(docs) != len(want) {
		t.Fatalf("got %d docs, want %d: %+v", len(docs), len(want), docs)
	}
	for _, doc := range docs {
		if !want[doc.Path] {
			t.Errorf("unexpected document %q", doc.Path)
		}
	}
}

func TestListMarkdownMissingDir(t *testing.T) {
	repo, err := NewRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	docs, err := repo.ListMarkdown("04-People", 0)
	if err != nil {
		t.Fatal(err)
	}
	if docs != nil {
		t.Errorf("got %+v, want nil", docs)
	}
}

func TestListMarkdownDepthCap(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "01-Projects/top.md")
	writeFile(t, root, "01-Projects/a/second.md")
	writeFile(t, root, "01-Projects/a/b/third.md")

	repo, err := NewRepository(root)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := repo.ListMarkdown("01-Projects", 2)
	if err != nil {
		t.Fatal(err)
	}

	for _, doc := range docs {
		if doc.Path == "01-Projects/a/b/third.md" {
			t.Error("depth cap did not skip nested directory")
		}
	}
	if len(docs) != 2 {
		t.Errorf("got %d docs, want 2: %+v", len(docs), docs)
	}
}

func TestCountFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "04-People/Jane Doe.md")
	writeFile(t, root, "04-People/John Roe.md")
	writeFile(t, root, "04-People/photo.jpg")
	writeFile(t, root, "04-People/archive/old.md")

	repo, err := NewRepository(root)
	if err != nil {
		t.Fatal(err)
	}

	count, exists := repo.CountFiles("04-People", "*.md")
	if !exists {
		t.Fatal("expected directory to exist")
	}
	if count != 2 {
		t.Errorf("got %d, want 2", count)
	}

	if _, exists := repo.CountFiles("06-Resources", "*.md"); exists {
		t.Error("missing directory should report exists=false")
	}
}

func TestReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "System/Tasks.md")

	repo, err := NewRepository(root)
	if err != nil {
		t.Fatal(err)
	}

	content, err := repo.ReadFile("System/Tasks.md")
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "content" {
		t.Errorf("got %q", content)
	}
}
