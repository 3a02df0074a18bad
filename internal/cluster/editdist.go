package cluster

import (
	"golang.org/x/net/html"
)

// editDistance computes an ordered top-down tree edit distance between
// two element subtrees over tag labels. Relabeling a node costs 1;
// inserting or deleting a node costs the size of the inserted or deleted
// subtree. Children are aligned with a sequence edit over each level.
//
// This is a top-down restriction of general tree edit distance: once two
// nodes are matched, only their child forests are compared against each
// other. It is cheaper than Zhang-Shasha and adequate for a confirmatory
// bound on trees the index already considers near-duplicates.
func editDistance(a, b *html.Node) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return treeSize(b)
	case b == nil:
		return treeSize(a)
	}
	cost := 0
	if a.Data != b.Data {
		cost = 1
	}
	return cost + forestDistance(elementChildren(a), elementChildren(b))
}

// forestDistance aligns two ordered child forests with a Levenshtein-style
// dynamic program whose substitution cost is the recursive tree distance.
func forestDistance(as, bs []*html.Node) int {
	n, m := len(as), len(bs)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + treeSize(bs[j-1])
	}
	for i := 1; i <= n; i++ {
		cur[0] = prev[0] + treeSize(as[i-1])
		for j := 1; j <= m; j++ {
			del := prev[j] + treeSize(as[i-1])
			ins := cur[j-1] + treeSize(bs[j-1])
			sub := prev[j-1] + editDistance(as[i-1], bs[j-1])
			cur[j] = min(del, min(ins, sub))
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// elementChildren returns the element children of n in document order.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// treeSize counts the elements in the subtree rooted at n, including n.
func treeSize(n *html.Node) int {
	size := 1
	for _, c := range elementChildren(n) {
		size += treeSize(c)
	}
	return size
}
