package model

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parsePage builds a page from a document string.
func parsePage(t *testing.T, doc string) *Page {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return &Page{RelPath: "page.html", Root: root}
}

func TestPageAccessors(t *testing.T) {
	t.Parallel()

	t.Run("head and body", func(t *testing.T) {
		t.Parallel()

		page := parsePage(t, "<html><head><title>x</title></head><body><p>y</p></body></html>")
		if page.Head() == nil || page.Head().Data != "head" {
			t.Error("head not found")
		}
		if page.Body() == nil || page.Body().Data != "body" {
			t.Error("body not found")
		}
	})

	t.Run("title is trimmed", func(t *testing.T) {
		t.Parallel()

		page := parsePage(t, "<html><head><title>  Home Page  </title></head><body></body></html>")
		if got := page.Title(); got != "Home Page" {
			t.Errorf("title %q, want %q", got, "Home Page")
		}
	})

	t.Run("missing title yields empty", func(t *testing.T) {
		t.Parallel()

		page := parsePage(t, "<html><head></head><body></body></html>")
		if got := page.Title(); got != "" {
			t.Errorf("title %q, want empty", got)
		}
	})

	t.Run("document without head or body", func(t *testing.T) {
		t.Parallel()

		page := &Page{Root: &html.Node{Type: html.DocumentNode}}
		if page.Head() != nil || page.Body() != nil || page.Title() != "" {
			t.Error("bare document should have no head, body, or title")
		}
	})
}

func TestCandidateClaim(t *testing.T) {
	t.Parallel()

	c := &Candidate{ID: 1}
	if c.Claimed() {
		t.Error("fresh candidate already claimed")
	}
	c.Claim()
	if !c.Claimed() {
		t.Error("claim did not stick")
	}
}

func TestClusterRepresentative(t *testing.T) {
	t.Parallel()

	seed := &Candidate{ID: 3}
	cl := &Cluster{Members: []*Candidate{seed, {ID: 5}}}
	if cl.Representative() != seed {
		t.Error("representative is not the first member")
	}
}
