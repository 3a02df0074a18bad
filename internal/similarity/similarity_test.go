package similarity

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
)

// navMarkup builds a nav list with the given item count. Every list item
// contributes one ul>li>a root-to-leaf path.
func navMarkup(items int) string {
	s := "<nav><ul>"
	for i := 0; i < items; i++ {
		s += "<li><a>x</a></li>"
	}
	return s + "</ul></nav>"
}

// parse returns the first element of the markup.
func parse(t *testing.T, markup string) *html.Node {
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

func TestShingles(t *testing.T) {
	t.Parallel()

	t.Run("windows over a single path", func(t *testing.T) {
		t.Parallel()

		got := Shingles(parse(t, "<nav><ul><li><a>x</a></li></ul></nav>"))
		want := []string{"nav>ul>li", "ul>li>a"}
		if len(got) != len(want) {
			t.Fatalf("got %d shingles, want %d: %v", len(got), len(want), got)
		}
		for _, w := range want {
			if _, ok := got[w]; !ok {
				t.Errorf("missing shingle %q", w)
			}
		}
	})

	t.Run("short paths contribute nothing", func(t *testing.T) {
		t.Parallel()

		if got := Shingles(parse(t, "<div><span>x</span></div>")); len(got) != 0 {
			t.Errorf("expected no shingles for depth-2 tree, got %v", got)
		}
	})

	t.Run("repeated structure deduplicates", func(t *testing.T) {
		t.Parallel()

		one := Shingles(parse(t, navMarkup(1)))
		many := Shingles(parse(t, navMarkup(9)))
		if len(one) != len(many) {
			t.Errorf("identical structure repeated should share a shingle set: %d vs %d", len(one), len(many))
		}
	})
}

func TestTagSequence(t *testing.T) {
	t.Parallel()

	got := TagSequence(parse(t, "<nav><ul><li><a>x</a></li><li><a>y</a></li></ul></nav>"))
	want := []string{"ul", "li", "a", "li", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSignature(t *testing.T) {
	t.Parallel()

	t.Run("identical shingle sets estimate as identical", func(t *testing.T) {
		t.Parallel()

		a := NewSignature(Shingles(parse(t, navMarkup(5))))
		b := NewSignature(Shingles(parse(t, navMarkup(5))))
		if got := Estimate(a, b); got != 1.0 {
			t.Errorf("identical sets estimate %f, want 1.0", got)
		}
	})

	t.Run("disjoint shingle sets estimate near zero", func(t *testing.T) {
		t.Parallel()

		a := NewSignature(Shingles(parse(t, navMarkup(5))))
		b := NewSignature(Shingles(parse(t, "<table><tbody><tr><td>x</td></tr></tbody></table>")))
		if got := Estimate(a, b); got > 0.2 {
			t.Errorf("disjoint sets estimate %f, want near 0", got)
		}
	})

	t.Run("empty sets estimate as identical", func(t *testing.T) {
		t.Parallel()

		a := NewSignature(nil)
		b := NewSignature(map[string]struct{}{})
		if got := Estimate(a, b); got != 1.0 {
			t.Errorf("empty sets estimate %f, want 1.0", got)
		}
	})

	t.Run("signatures are deterministic", func(t *testing.T) {
		t.Parallel()

		shingles := Shingles(parse(t, navMarkup(7)))
		if NewSignature(shingles) != NewSignature(shingles) {
			t.Error("same shingle set produced different signatures")
		}
	})
}

func TestIndex(t *testing.T) {
	t.Parallel()

	t.Run("identical signatures always found", func(t *testing.T) {
		t.Parallel()

		sig := NewSignature(Shingles(parse(t, navMarkup(8))))
		idx := NewIndex(0.6)
		idx.Add(3, sig)
		idx.Add(7, sig)
		idx.Add(1, sig)

		got := idx.Query(sig)
		want := []int{1, 3, 7}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("ids not in ascending order: got %v, want %v", got, want)
			}
		}
	})

	t.Run("dissimilar signatures filtered out", func(t *testing.T) {
		t.Parallel()

		nav := NewSignature(Shingles(parse(t, navMarkup(8))))
		table := NewSignature(Shingles(parse(t, "<table><tbody><tr><td>x</td></tr></tbody></table>")))
		idx := NewIndex(0.6)
		idx.Add(1, table)

		if got := idx.Query(nav); len(got) != 0 {
			t.Errorf("dissimilar signature returned: %v", got)
		}
	})

	t.Run("len counts added signatures", func(t *testing.T) {
		t.Parallel()

		idx := NewIndex(0.6)
		if idx.Len() != 0 {
			t.Errorf("empty index Len = %d", idx.Len())
		}
		idx.Add(1, Signature{})
		idx.Add(2, Signature{})
		if idx.Len() != 2 {
			t.Errorf("Len = %d, want 2", idx.Len())
		}
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("identical sequences have distance zero", func(t *testing.T) {
		t.Parallel()

		a := NewFingerprint([]string{"ul", "li", "a", "li", "a"})
		b := NewFingerprint([]string{"ul", "li", "a", "li", "a"})
		if d := HammingDistance(a, b); d != 0 {
			t.Errorf("distance %d, want 0", d)
		}
	})

	t.Run("different composition moves the fingerprint", func(t *testing.T) {
		t.Parallel()

		a := NewFingerprint([]string{"ul", "li", "a"})
		b := NewFingerprint([]string{"table", "tr", "td"})
		if d := HammingDistance(a, b); d == 0 {
			t.Error("structurally different sequences fingerprint equal")
		}
	})

	t.Run("empty sequence has zero fingerprint", func(t *testing.T) {
		t.Parallel()

		if fp := NewFingerprint(nil); fp != 0 {
			t.Errorf("empty sequence fingerprint %x, want 0", fp)
		}
	})
}
