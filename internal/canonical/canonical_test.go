package canonical

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
)

// parseElement parses markup and returns the first element.
func parseElement(t *testing.T, markup string) *html.Node {
	t.Helper()
	n, err := dom.ParseFragment(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n == nil {
		t.Fatalf("no element in %q", markup)
	}
	return n
}

// render serializes a node for assertions.
func render(t *testing.T, n *html.Node) string {
	t.Helper()
	s, err := dom.Render(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return s
}

// TestCanonicalize tests the normalization rules.
func TestCanonicalize(t *testing.T) {
	t.Parallel()

	t.Run("input tree is never modified", func(t *testing.T) {
		t.Parallel()

		in := parseElement(t, `<nav id="main" class="navbar active"><a href="#home">Home</a></nav>`)
		before := render(t, in)
		Canonicalize(in)
		if after := render(t, in); after != before {
			t.Errorf("input mutated:\nbefore: %s\nafter:  %s", before, after)
		}
	})

	t.Run("comments are removed", func(t *testing.T) {
		t.Parallel()

		got := render(t, Canonicalize(parseElement(t, `<nav><!-- menu --><a href="/">Home</a></nav>`)))
		if strings.Contains(got, "menu") {
			t.Errorf("comment survived: %s", got)
		}
	})

	t.Run("stateful class tokens are dropped and the rest sorted", func(t *testing.T) {
		t.Parallel()

		got := render(t, Canonicalize(parseElement(t, `<nav class="zeta active alpha SHOW nav-open"><a>x</a></nav>`)))
		if !strings.Contains(got, `class="alpha zeta"`) {
			t.Errorf("expected sorted survivors alpha zeta, got %s", got)
		}
	})

	t.Run("class attribute removed when nothing remains", func(t *testing.T) {
		t.Parallel()

		got := render(t, Canonicalize(parseElement(t, `<li class="active current"><a>x</a></li>`)))
		if strings.Contains(got, "class") {
			t.Errorf("empty class should be removed: %s", got)
		}
	})

	t.Run("anchor values collapse to bare hash", func(t *testing.T) {
		t.Parallel()

		got := render(t, Canonicalize(parseElement(t, `<div><a href="#section-3">x</a><button data-bs-target="#modal-7">y</button></div>`)))
		if strings.Contains(got, "#section-3") || strings.Contains(got, "#modal-7") {
			t.Errorf("instance anchors survived: %s", got)
		}
		if !strings.Contains(got, `href="#"`) {
			t.Errorf("expected bare hash href: %s", got)
		}
	})

	t.Run("non-fragment hrefs are untouched", func(t *testing.T) {
		t.Parallel()

		got := render(t, Canonicalize(parseElement(t, `<a href="/about.html">About</a>`)))
		if !strings.Contains(got, `href="/about.html"`) {
			t.Errorf("regular href changed: %s", got)
		}
	})

	t.Run("volatile and denied attributes are removed", func(t *testing.T) {
		t.Parallel()

		in := `<div id="x" aria-controls="y" aria-expanded="true" data-bs-toggle="collapse" onclick="go()" style="color:red" data-index="4" aria-label="menu" role="navigation"><span>x</span></div>`
		got := render(t, Canonicalize(parseElement(t, in)))
		for _, attr := range []string{"id=", "aria-controls", "aria-expanded", "data-bs-toggle", "onclick", "style=", "data-index"} {
			if strings.Contains(got, attr) {
				t.Errorf("attribute %s survived: %s", attr, got)
			}
		}
		for _, attr := range []string{"aria-label", "role"} {
			if !strings.Contains(got, attr) {
				t.Errorf("attribute %s should survive: %s", attr, got)
			}
		}
	})

	t.Run("whitespace collapses and blank text vanishes", func(t *testing.T) {
		t.Parallel()

		got := render(t, Canonicalize(parseElement(t, "<p>  hello \n\t world  </p>")))
		if !strings.Contains(got, ">hello world<") {
			t.Errorf("expected collapsed text, got %s", got)
		}

		got = render(t, Canonicalize(parseElement(t, "<div>\n   <span>x</span>\n   </div>")))
		if strings.Contains(got, "\n") {
			t.Errorf("blank text survived: %s", got)
		}
	})

	t.Run("non-element input yields nil", func(t *testing.T) {
		t.Parallel()

		if Canonicalize(nil) != nil {
			t.Error("nil input should canonicalize to nil")
		}
		text := &html.Node{Type: html.TextNode, Data: "x"}
		if Canonicalize(text) != nil {
			t.Error("text input should canonicalize to nil")
		}
	})
}

// TestCanonicalizeIdempotent tests that re-canonicalizing a canonical
// subtree produces no further change.
func TestCanonicalizeIdempotent(t *testing.T) {
	t.Parallel()

	in := parseElement(t, `<nav id="main" class="navbar open">
		<!-- nav -->
		<ul class="items">
			<li class="item active"><a href="#home" aria-expanded="false">Home  Page</a></li>
			<li><a href="/about.html" data-track="7">About</a></li>
		</ul>
	</nav>`)

	once := Canonicalize(in)
	twice := Canonicalize(once)
	a, b := render(t, once), render(t, twice)
	if a != b {
		t.Errorf("canonicalization not idempotent:\nonce:  %s\ntwice: %s", a, b)
	}
}
