package miner

import (
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/canonical"
	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
	"github.com/Anant-Navadiya/partial-extractor/internal/similarity"
)

// priorityTags are the landmark elements collected anywhere in the body.
var priorityTags = []string{"header", "nav", "footer", "aside"}

// directChildTags are collected only as direct children of the body.
var directChildTags = map[string]bool{"div": true, "section": true}

// Miner scans pages for extraction candidates.
type Miner struct {
	// minNodeCount is the minimum subtree size for a candidate.
	minNodeCount int

	// logger is used for per-candidate debug logging.
	logger *slog.Logger
}

// Option configures a Miner.
type Option func(*Miner)

// WithMinNodeCount sets the minimum subtree size for a candidate.
func WithMinNodeCount(n int) Option {
	return func(m *Miner) {
		if n > 0 {
			m.minNodeCount = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Miner) {
		m.logger = logger
	}
}

// New creates a Miner. The default minimum node count is 30.
func New(opts ...Option) *Miner {
	m := &Miner{
		minNodeCount: 30,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Mined is one candidate before global ID assignment. It pairs the
// computed candidate data with the live node it was mined from.
type Mined struct {
	// Node is the live element in the page tree.
	Node *html.Node

	// Raw is the verbatim markup captured before any mutation.
	Raw string

	// Canonical is the normalized comparison copy.
	Canonical *html.Node

	// Signature, Fingerprint, and Size are the similarity signals
	// computed from Canonical.
	Signature   similarity.Signature
	Fingerprint similarity.Fingerprint
	Size        int
}

// Mine scans one page body and returns its candidates in document order.
// It never mutates the page tree. An error is returned only when the page
// has no body at all; malformed individual candidates are skipped.
func (m *Miner) Mine(page *model.Page) ([]*Mined, error) {
	body := page.Body()
	if body == nil {
		return nil, fmt.Errorf("page %s: no body element", page.RelPath)
	}

	var mined []*Mined
	for _, node := range m.collect(body) {
		capture, err := m.capture(node)
		if err != nil {
			m.logger.Debug("skipping malformed candidate",
				"page", page.RelPath,
				"tag", node.Data,
				"error", err,
			)
			continue
		}
		mined = append(mined, capture)
	}
	return mined, nil
}

// collect gathers candidate elements in document order: priority
// landmarks anywhere under body, plus direct div/section children of
// body, filtered by the size threshold. A single DFS keeps the order
// stable regardless of which rule matched.
func (m *Miner) collect(body *html.Node) []*html.Node {
	var nodes []*html.Node
	var dfs func(n *html.Node)
	dfs = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && m.wants(c, n == body) {
				nodes = append(nodes, c)
			}
			dfs(c)
		}
	}
	dfs(body)

	kept := nodes[:0]
	for _, n := range nodes {
		if dom.NodeSize(n) >= m.minNodeCount {
			kept = append(kept, n)
		}
	}
	return kept
}

// wants reports whether an element belongs to the candidate vocabulary.
func (m *Miner) wants(n *html.Node, directChild bool) bool {
	for _, tag := range priorityTags {
		if n.Data == tag {
			return true
		}
	}
	return directChild && directChildTags[n.Data]
}

// capture records a candidate's raw markup and computes its similarity
// signals from an independent canonical copy.
func (m *Miner) capture(node *html.Node) (*Mined, error) {
	raw, err := dom.Render(node)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	canon := canonical.Canonicalize(node)
	if canon == nil {
		return nil, fmt.Errorf("canonicalization yielded no usable root for <%s>", node.Data)
	}
	return &Mined{
		Node:        node,
		Raw:         raw,
		Canonical:   canon,
		Signature:   similarity.NewSignature(similarity.Shingles(canon)),
		Fingerprint: similarity.NewFingerprint(similarity.TagSequence(canon)),
		Size:        dom.NodeSize(canon),
	}, nil
}
