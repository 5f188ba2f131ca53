package picker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCandidates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":      "build/\nsecret.txt\n",
		"a.txt":           "hello",
		"notes.md":        "# Title",
		"main.go":         "package main",
		"image.png":       "\x89PNG",
		"secret.txt":      "ignored",
		"src/lib.rs":      "fn main() {}",
		"build/out.log":   "INFO built",
		".hidden/x.txt":   "hidden",
		"src/.private.md": "hidden",
	})

	got, err := Candidates(root, "")
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "main.go"),
		filepath.Join(root, "notes.md"),
		filepath.Join(root, "src", "lib.rs"),
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}

	filtered, err := Candidates(root, "LIB")
	if err != nil {
		t.Fatalf("Candidates with query: %v", err)
	}
	if len(filtered) != 1 || filtered[0] != filepath.Join(root, "src", "lib.rs") {
		t.Fatalf("filtered = %v", filtered)
	}
}

func TestSelectShortcuts(t *testing.T) {
	if _, err := Select(nil); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	got, err := Select([]string{"only.md"})
	if err != nil || got != "only.md" {
		t.Fatalf("Select single = %q, %v", got, err)
	}
}

func TestPreview(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "notes.md")
	writeTree(t, root, map[string]string{"notes.md": "# One\nsecond line\n"})

	out := Preview(p, 1)
	if !strings.Contains(out, "Type: Markdown") || !strings.Contains(out, "# One") {
		t.Fatalf("unexpected preview:\n%s", out)
	}
	if strings.Contains(out, "second line") {
		t.Fatalf("preview should be limited to one line:\n%s", out)
	}

	missing := Preview(filepath.Join(root, "nope.txt"), 3)
	if !strings.Contains(missing, "Error:") {
		t.Fatalf("expected error in preview:\n%s", missing)
	}
}
