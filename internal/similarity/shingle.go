package similarity

import (
	"strings"

	"golang.org/x/net/html"
)

// ShingleSize is the window length applied to tag paths. Paths shorter
// than this contribute no shingles.
const ShingleSize = 3

// pathSeparator joins tag names inside one shingle token.
const pathSeparator = ">"

// Shingles returns the set of structural shingles for the canonical
// subtree rooted at n. Every root-to-leaf tag-name path is enumerated
// depth-first (a node with no element children is a leaf); each
// contiguous window of ShingleSize names in a path of at least that
// length becomes one token.
func Shingles(n *html.Node) map[string]struct{} {
	shingles := make(map[string]struct{})
	for _, path := range tagPaths(n) {
		if len(path) < ShingleSize {
			continue
		}
		for i := 0; i+ShingleSize <= len(path); i++ {
			shingles[strings.Join(path[i:i+ShingleSize], pathSeparator)] = struct{}{}
		}
	}
	return shingles
}

// tagPaths enumerates every root-to-leaf tag-name path under n in
// depth-first order.
func tagPaths(n *html.Node) [][]string {
	var paths [][]string
	var dfs func(node *html.Node, prefix []string)
	dfs = func(node *html.Node, prefix []string) {
		path := append(append([]string(nil), prefix...), node.Data)
		leaf := true
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				leaf = false
				dfs(c, path)
			}
		}
		if leaf {
			paths = append(paths, path)
		}
	}
	if n != nil && n.Type == html.ElementNode {
		dfs(n, nil)
	}
	return paths
}

// TagSequence returns the tag names of every element descendant of n in
// document order. The root's own tag is not included; two subtrees with
// different root tags but identical content still fingerprint equal,
// which is intended since the candidate vocabulary already constrains
// root tags.
func TagSequence(n *html.Node) []string {
	var tags []string
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				tags = append(tags, c.Data)
			}
			dfs(c)
		}
	}
	if n != nil {
		dfs(n)
	}
	return tags
}
