package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

// writeFile creates a file with parent directories under dir.
func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("finds html files recursively in sorted order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "z.html", "<html></html>")
		writeFile(t, dir, "a.html", "<html></html>")
		writeFile(t, dir, filepath.Join("sub", "deep", "page.html"), "<html></html>")
		writeFile(t, dir, "notes.txt", "not html")
		writeFile(t, dir, "UPPER.HTML", "<html></html>")

		got, err := Discover(dir)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"UPPER.HTML", "a.html", filepath.Join("sub", "deep", "page.html"), "z.html"}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})

	t.Run("missing root errors", func(t *testing.T) {
		t.Parallel()

		if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Fatal("expected error for missing root")
		}
	})

	t.Run("empty tree yields no paths", func(t *testing.T) {
		t.Parallel()

		got, err := Discover(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Fatalf("got %v, want none", got)
		}
	})
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses documents preserving order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.html", "<html><head><title>A</title></head><body></body></html>")
		writeFile(t, dir, "b.html", "<html><head><title>B</title></head><body></body></html>")

		pages, skipped := NewLoader(nil).Load(dir, []string{"a.html", "b.html"})
		if len(skipped) != 0 {
			t.Fatalf("unexpected skips: %v", skipped)
		}
		if len(pages) != 2 || pages[0].RelPath != "a.html" || pages[1].RelPath != "b.html" {
			t.Fatalf("pages out of order: %+v", pages)
		}
		if pages[0].Title() != "A" {
			t.Errorf("title %q, want A", pages[0].Title())
		}
	})

	t.Run("unreadable document is skipped not fatal", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "good.html", "<html><body></body></html>")

		pages, skipped := NewLoader(nil).Load(dir, []string{"missing.html", "good.html"})
		if len(pages) != 1 || pages[0].RelPath != "good.html" {
			t.Fatalf("surviving pages wrong: %+v", pages)
		}
		if len(skipped) != 1 || skipped[0] != "missing.html" {
			t.Fatalf("skipped list wrong: %v", skipped)
		}
	})
}

func TestWriter(t *testing.T) {
	t.Parallel()

	t.Run("construction creates destination and partials dirs", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "out")
		w, err := NewWriter(dest, "partials")
		if err != nil {
			t.Fatal(err)
		}
		if fi, err := os.Stat(w.PartialsDir()); err != nil || !fi.IsDir() {
			t.Fatalf("partials dir missing: %v", err)
		}
	})

	t.Run("fragment gets a trailing newline", func(t *testing.T) {
		t.Parallel()

		w, err := NewWriter(filepath.Join(t.TempDir(), "out"), "partials")
		if err != nil {
			t.Fatal(err)
		}
		if err := w.WriteFragment("title-meta.html", "<title>x</title>"); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(filepath.Join(w.PartialsDir(), "title-meta.html"))
		if err != nil {
			t.Fatal(err)
		}
		if got := string(data); got != "<title>x</title>\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("page is mirrored at its relative path", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "out")
		w, err := NewWriter(dest, "partials")
		if err != nil {
			t.Fatal(err)
		}

		root, err := html.Parse(strings.NewReader("<html><head></head><body><p>x</p></body></html>"))
		if err != nil {
			t.Fatal(err)
		}
		page := &model.Page{RelPath: filepath.Join("sub", "page.html"), Root: root}
		if err := w.WritePage(page); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(filepath.Join(dest, "sub", "page.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "<p>x</p>") {
			t.Errorf("page content missing: %s", data)
		}
	})

	t.Run("arbitrary files land under the destination root", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "out")
		w, err := NewWriter(dest, "partials")
		if err != nil {
			t.Fatal(err)
		}
		if err := w.WriteFile("extraction-report.md", []byte("# Report\n")); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(dest, "extraction-report.md")); err != nil {
			t.Fatal(err)
		}
	})
}
