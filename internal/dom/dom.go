package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a complete HTML document from r.
// The parser is lenient: it builds a tree for almost any input, inserting
// html/head/body elements when the source omits them.
func ParseDocument(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseFragment parses markup as body content and returns the first element
// node of the result, or nil if the markup contains no element.
// This is how captured raw markup is re-parsed independently of the page
// tree it was captured from.
func ParseFragment(markup string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			n.Parent = nil
			n.PrevSibling = nil
			n.NextSibling = nil
			return n, nil
		}
	}
	return nil, nil
}

// Render serializes n to a string.
func Render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Clone returns a deep copy of n. The copy shares no nodes with the
// original; parent and sibling links on the returned root are nil.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if n.Attr != nil {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// Walk visits n and every descendant in depth-first document order.
func Walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, visit)
	}
}

// FindFirst returns the first element with the given tag name in a
// depth-first search rooted at n, including n itself. Returns nil when no
// such element exists.
func FindFirst(n *html.Node, tag string) *html.Node {
	var found *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if found != nil {
			return
		}
		if cur.Type == html.ElementNode && cur.Data == tag {
			found = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return found
}

// ElementsByTag returns every descendant element of root with the given
// tag name, in document order. The root itself is not considered.
func ElementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				out = append(out, c)
			}
			dfs(c)
		}
	}
	dfs(root)
	return out
}

// Attr returns the value of the named attribute on n, or "" if absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries the named attribute.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the named attribute from n if present.
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// NodeSize returns the number of element descendants plus non-blank text
// descendants of n. The root element itself is not counted; this matches
// the size measure used by the candidate threshold and the cluster ratio
// check, which compare subtree content rather than subtree roots.
func NodeSize(n *html.Node) int {
	size := 0
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.ElementNode:
				size++
			case html.TextNode:
				if strings.TrimSpace(c.Data) != "" {
					size++
				}
			}
			dfs(c)
		}
	}
	dfs(n)
	return size
}

// ReplaceWithRaw replaces n in its parent's child list with a raw node
// containing markup. Raw nodes are rendered verbatim, so include
// directives survive serialization without entity escaping.
// n must have a parent.
func ReplaceWithRaw(n *html.Node, markup string) {
	raw := &html.Node{Type: html.RawNode, Data: markup}
	parent := n.Parent
	parent.InsertBefore(raw, n)
	parent.RemoveChild(n)
}

// AppendRaw appends a raw node containing markup as the last child of
// parent. A newline is inserted first so the directive lands on its own
// line in the rendered output.
func AppendRaw(parent *html.Node, markup string) {
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
	parent.AppendChild(&html.Node{Type: html.RawNode, Data: markup})
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
}

// PrependRaw inserts a raw node containing markup as the first child of
// parent.
func PrependRaw(parent *html.Node, markup string) {
	raw := &html.Node{Type: html.RawNode, Data: markup}
	nl := &html.Node{Type: html.TextNode, Data: "\n"}
	if first := parent.FirstChild; first != nil {
		parent.InsertBefore(raw, first)
		parent.InsertBefore(nl, first)
		return
	}
	parent.AppendChild(raw)
	parent.AppendChild(nl)
}

// Detach removes n from its parent tree. No-op when n has no parent.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
