package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parseBody parses markup and returns the body element.
func parseBody(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, err := ParseDocument(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	body := FindFirst(root, "body")
	if body == nil {
		t.Fatal("no body in parsed document")
	}
	return body
}

// TestParseFragment tests re-parsing captured markup.
func TestParseFragment(t *testing.T) {
	t.Parallel()

	t.Run("returns first element", func(t *testing.T) {
		t.Parallel()

		root, err := ParseFragment(`<nav class="main"><a href="/">Home</a></nav>`)
		if err != nil {
			t.Fatalf("parse fragment: %v", err)
		}
		if root == nil {
			t.Fatal("expected element, got nil")
		}
		if root.Data != "nav" {
			t.Errorf("expected nav root, got %q", root.Data)
		}
		if root.Parent != nil {
			t.Error("fragment root should be detached")
		}
	})

	t.Run("no element yields nil", func(t *testing.T) {
		t.Parallel()

		root, err := ParseFragment("just text")
		if err != nil {
			t.Fatalf("parse fragment: %v", err)
		}
		if root != nil {
			t.Errorf("expected nil, got <%s>", root.Data)
		}
	})
}

// TestClone tests deep copy independence.
func TestClone(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body><nav id="n"><a href="/a">A</a></nav></body></html>`)
	nav := FindFirst(body, "nav")
	clone := Clone(nav)

	if clone == nav {
		t.Fatal("clone aliases the original")
	}
	if clone.Parent != nil || clone.NextSibling != nil {
		t.Error("clone root should be detached")
	}

	// Mutating the clone must not touch the original.
	RemoveAttr(clone, "id")
	clone.FirstChild.Data = "b"
	if Attr(nav, "id") != "n" {
		t.Error("original lost its id attribute")
	}
	if nav.FirstChild.Data != "a" {
		t.Error("original child tag changed")
	}

	got, err := Render(clone)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "<b") {
		t.Errorf("clone mutation not reflected in its own render: %s", got)
	}
}

// TestNodeSize tests the size measure used by the mining threshold.
func TestNodeSize(t *testing.T) {
	t.Parallel()

	t.Run("counts elements and non-blank text", func(t *testing.T) {
		t.Parallel()

		// ul + 2 li + 2 a + 2 texts = 7; blank text between tags excluded.
		body := parseBody(t, `<html><body><nav><ul>
			<li><a href="/a">A</a></li>
			<li><a href="/b">B</a></li>
		</ul></nav></body></html>`)
		nav := FindFirst(body, "nav")
		if got := NodeSize(nav); got != 7 {
			t.Errorf("expected size 7, got %d", got)
		}
	})

	t.Run("root is not counted", func(t *testing.T) {
		t.Parallel()

		body := parseBody(t, `<html><body><footer></footer></body></html>`)
		footer := FindFirst(body, "footer")
		if got := NodeSize(footer); got != 0 {
			t.Errorf("expected size 0 for empty element, got %d", got)
		}
	})
}

// TestReplaceWithRaw tests that include directives render verbatim.
func TestReplaceWithRaw(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body><nav><a href="/">Home</a></nav></body></html>`)
	nav := FindFirst(body, "nav")
	ReplaceWithRaw(nav, "@@include('./partials/partial_1_nav.html')")

	got, err := Render(body)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<nav") {
		t.Errorf("nav should be gone: %s", got)
	}
	// The single quotes must survive without entity escaping.
	if !strings.Contains(got, "@@include('./partials/partial_1_nav.html')") {
		t.Errorf("include directive was escaped or lost: %s", got)
	}
}

// TestAttrHelpers tests attribute access.
func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body><a href="#top" class="x">t</a></body></html>`)
	a := FindFirst(body, "a")

	if Attr(a, "href") != "#top" {
		t.Errorf("unexpected href %q", Attr(a, "href"))
	}
	if !HasAttr(a, "class") {
		t.Error("expected class attribute")
	}
	SetAttr(a, "href", "#")
	if Attr(a, "href") != "#" {
		t.Error("SetAttr did not replace existing value")
	}
	SetAttr(a, "role", "button")
	if Attr(a, "role") != "button" {
		t.Error("SetAttr did not add new attribute")
	}
	RemoveAttr(a, "class")
	if HasAttr(a, "class") {
		t.Error("RemoveAttr left the attribute")
	}
}

// TestElementsByTag tests document-order collection.
func TestElementsByTag(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body><div><script src="a.js"></script></div><script src="b.js"></script></body></html>`)
	scripts := ElementsByTag(body, "script")
	if len(scripts) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(scripts))
	}
	if Attr(scripts[0], "src") != "a.js" || Attr(scripts[1], "src") != "b.js" {
		t.Error("scripts not in document order")
	}
}
