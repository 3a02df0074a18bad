package miner

import (
	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

// NodeRef locates one candidate's live subtree: the owning page and a
// direct reference into that page's tree.
type NodeRef struct {
	// Page is the page whose tree contains Node.
	Page *model.Page

	// Node is the live element the candidate was mined from.
	Node *html.Node
}

// NodeTable maps candidate IDs to their live nodes. It replaces an
// in-tree marker attribute: the page trees carry no trace of mining, and
// the rewrite stage resolves candidates through this table instead.
//
// The table is populated by Assign and read-only afterwards, so the
// parallel rewrite stage needs no locking.
type NodeTable struct {
	refs map[int]NodeRef
}

// NewNodeTable creates an empty table.
func NewNodeTable() *NodeTable {
	return &NodeTable{refs: make(map[int]NodeRef)}
}

// Put records the live node for a candidate ID.
func (t *NodeTable) Put(id int, page *model.Page, node *html.Node) {
	t.refs[id] = NodeRef{Page: page, Node: node}
}

// Lookup returns the live node reference for a candidate ID.
func (t *NodeTable) Lookup(id int) (NodeRef, bool) {
	ref, ok := t.refs[id]
	return ref, ok
}

// Len returns the number of tracked candidates.
func (t *NodeTable) Len() int {
	return len(t.refs)
}

// Assign converts per-page mining results into globally identified
// candidates. Pages must be supplied in corpus order together with their
// mined results; IDs are assigned sequentially over that order, so the
// resulting candidate slice has a deterministic, scheduling-independent
// ascending-ID order. The returned table maps each ID to its live node.
func Assign(pages []*model.Page, minedByPage [][]*Mined) ([]*model.Candidate, *NodeTable) {
	table := NewNodeTable()
	var candidates []*model.Candidate
	id := 0
	for i, page := range pages {
		for _, mn := range minedByPage[i] {
			candidates = append(candidates, &model.Candidate{
				ID:          id,
				PagePath:    page.RelPath,
				RawMarkup:   mn.Raw,
				Canonical:   mn.Canonical,
				Signature:   mn.Signature,
				Fingerprint: mn.Fingerprint,
				Size:        mn.Size,
			})
			table.Put(id, page, mn.Node)
			id++
		}
	}
	return candidates, table
}
