// Package canonical normalizes subtree copies for similarity comparison.
//
// Canonicalization strips everything that varies between otherwise
// identical component instances: stateful UI classes, instance-specific
// anchors and ids, event handlers, framework data attributes, and
// whitespace formatting. The output exists only to be hashed; it is never
// serialized into emitted files, because it discards content real pages
// need.
//
// Canonicalization is idempotent: applying it to an already canonical
// tree produces no further change.
package canonical

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
)

// statefulClasses matches class tokens that encode transient UI state
// rather than structure. Matched case-insensitively as whole words, so a
// token like "nav-open" is also dropped.
var statefulClasses = regexp.MustCompile(`(?i)\b(active|current|open|show|selected|collapsing|aria-current)\b`)

// anchorAttrs have instance-specific fragment values collapsed to "#".
var anchorAttrs = map[string]bool{
	"href":           true,
	"data-bs-target": true,
}

// volatileAttrs are removed unconditionally.
var volatileAttrs = map[string]bool{
	"id":             true,
	"aria-controls":  true,
	"aria-expanded":  true,
	"data-bs-toggle": true,
}

// deniedAttrs are always removed regardless of prefix.
var deniedAttrs = map[string]bool{
	"onclick": true,
	"onload":  true,
	"style":   true,
}

// allowedAttrs exempts these names from the data-prefix removal rule.
// Note that "id" is listed but still removed: volatileAttrs is applied
// first and takes precedence.
var allowedAttrs = map[string]bool{
	"class":           true,
	"role":            true,
	"aria-label":      true,
	"aria-labelledby": true,
	"href":            true,
	"src":             true,
	"id":              true,
}

// Canonicalize returns a normalized deep copy of the element subtree
// rooted at n, or nil when n is not an element. The input tree is never
// modified.
func Canonicalize(n *html.Node) *html.Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	root := dom.Clone(n)
	stripComments(root)
	normalizeElements(root)
	normalizeText(root)
	return root
}

// stripComments removes every comment node under root.
func stripComments(root *html.Node) {
	removeMatching(root, func(n *html.Node) bool {
		return n.Type == html.CommentNode
	})
}

// normalizeElements applies the attribute rules to root and every element
// descendant.
func normalizeElements(root *html.Node) {
	dom.Walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		normalizeClass(n)
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			switch {
			case volatileAttrs[a.Key]:
				// dropped
			case deniedAttrs[a.Key]:
				// dropped
			case strings.HasPrefix(a.Key, "data-") && !allowedAttrs[a.Key]:
				// dropped
			case anchorAttrs[a.Key] && strings.HasPrefix(a.Val, "#"):
				a.Val = "#"
				kept = append(kept, a)
			default:
				kept = append(kept, a)
			}
		}
		n.Attr = kept
	})
}

// normalizeClass filters stateful tokens out of the class attribute and
// sorts the survivors. The attribute is removed when nothing remains.
func normalizeClass(n *html.Node) {
	val := dom.Attr(n, "class")
	if val == "" {
		if dom.HasAttr(n, "class") {
			dom.RemoveAttr(n, "class")
		}
		return
	}
	var kept []string
	for _, token := range strings.Fields(val) {
		if !statefulClasses.MatchString(token) {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		dom.RemoveAttr(n, "class")
		return
	}
	sort.Strings(kept)
	dom.SetAttr(n, "class", strings.Join(kept, " "))
}

// normalizeText collapses whitespace runs in text nodes to single spaces
// and removes text nodes that become empty.
func normalizeText(root *html.Node) {
	dom.Walk(root, func(n *html.Node) {
		if n.Type == html.TextNode {
			n.Data = strings.Join(strings.Fields(n.Data), " ")
		}
	})
	removeMatching(root, func(n *html.Node) bool {
		return n.Type == html.TextNode && n.Data == ""
	})
}

// removeMatching detaches every node under root for which match returns
// true. The root itself is never removed.
func removeMatching(root *html.Node, match func(*html.Node) bool) {
	var doomed []*html.Node
	dom.Walk(root, func(n *html.Node) {
		if n != root && match(n) {
			doomed = append(doomed, n)
		}
	})
	for _, n := range doomed {
		dom.Detach(n)
	}
}
