package model

import (
	"golang.org/x/net/html"

	"github.com/Anant-Navadiya/partial-extractor/internal/similarity"
)

// Candidate is one subtree considered for extraction into a shared
// partial.
//
// Invariants: RawMarkup is captured before any mutation of the source
// tree and never changes afterwards. Canonical is a write-once derived
// copy that shares no nodes with the source tree and is never inserted
// back into any page. All fields except the claimed flag are read-only
// after mining.
type Candidate struct {
	// ID is the process-wide unique identifier. IDs are assigned in
	// (page order, document position) order, and clustering iterates
	// candidates by ascending ID, so IDs fix the clustering order.
	ID int

	// PagePath is the RelPath of the page the candidate was mined from.
	PagePath string

	// RawMarkup is the verbatim serialization of the subtree at mining
	// time. Partials are emitted from this, never from Canonical.
	RawMarkup string

	// Canonical is the normalized copy used only for similarity
	// computation.
	Canonical *html.Node

	// Signature is the MinHash sketch of Canonical's shingle set.
	Signature similarity.Signature

	// Fingerprint is the SimHash summary of Canonical's tag sequence.
	Fingerprint similarity.Fingerprint

	// Size is the cached element-plus-text node count of Canonical,
	// used by the cluster size-ratio filter.
	Size int

	// claimed marks the candidate as owned by a cluster. Set at most
	// once; a claimed candidate is permanently unavailable to later
	// seeds.
	claimed bool
}

// Claimed reports whether a cluster has claimed this candidate.
func (c *Candidate) Claimed() bool {
	return c.claimed
}

// Claim marks the candidate as owned by a cluster. Claiming is
// irreversible.
func (c *Candidate) Claim() {
	c.claimed = true
}

// Cluster is an ordered group of near-duplicate candidates. A cluster
// must have at least two members to be emitted; the first member is the
// representative whose raw markup becomes the partial body.
type Cluster struct {
	// Members lists the candidates in acceptance order. The seed comes
	// first.
	Members []*Candidate
}

// Representative returns the cluster's first member.
func (c *Cluster) Representative() *Candidate {
	return c.Members[0]
}

// Instance is a back-reference from a partial to one occurrence of it.
type Instance struct {
	// CandidateID identifies the mined subtree to replace.
	CandidateID int

	// PagePath is the RelPath of the page containing the occurrence.
	PagePath string
}

// Partial is an extracted, reusable markup fragment referenced from
// pages via include directives.
type Partial struct {
	// Name is the fragment file name, e.g. "partial_1_nav.html".
	Name string

	// Body is the fragment markup, serialized from the representative's
	// pristine raw capture.
	Body string

	// Instances lists every occurrence across the corpus.
	Instances []Instance
}
