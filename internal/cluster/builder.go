package cluster

import (
	"log/slog"
	"sort"

	"github.com/Anant-Navadiya/partial-extractor/internal/model"
	"github.com/Anant-Navadiya/partial-extractor/internal/similarity"
)

// Default predicate bounds.
const (
	// DefaultMaxHammingDistance is the maximum fingerprint Hamming
	// distance between cluster members.
	DefaultMaxHammingDistance = 6

	// DefaultMinSizeRatio is the minimum min/max size ratio between
	// cluster members.
	DefaultMinSizeRatio = 0.85
)

// Builder groups candidates into clusters.
type Builder struct {
	// index serves approximate near-duplicate signature queries.
	index *similarity.Index

	// maxHamming bounds the fingerprint distance between members.
	maxHamming int

	// minSizeRatio bounds the size disparity between members.
	minSizeRatio float64

	// maxEditDistance, when positive, enables the opt-in tree edit
	// distance predicate with this bound. Zero disables it.
	maxEditDistance int

	// logger is used for per-cluster debug logging.
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithMaxHammingDistance sets the fingerprint distance bound.
func WithMaxHammingDistance(d int) Option {
	return func(b *Builder) {
		if d >= 0 {
			b.maxHamming = d
		}
	}
}

// WithMinSizeRatio sets the size ratio bound.
func WithMinSizeRatio(r float64) Option {
	return func(b *Builder) {
		if r > 0 && r <= 1 {
			b.minSizeRatio = r
		}
	}
}

// WithMaxEditDistance enables the confirmatory tree edit distance
// predicate with the given bound. Zero leaves it disabled (the default).
func WithMaxEditDistance(d int) Option {
	return func(b *Builder) {
		if d >= 0 {
			b.maxEditDistance = d
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder querying the given populated index.
func NewBuilder(index *similarity.Index, opts ...Option) *Builder {
	b := &Builder{
		index:        index,
		maxHamming:   DefaultMaxHammingDistance,
		minSizeRatio: DefaultMinSizeRatio,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Build partitions candidates into clusters with one sequential, ordered
// pass. The input slice is not reordered; iteration runs over a sorted
// view by ascending ID. Candidates accepted into a cluster are claimed
// via their one-time flag. Must not run concurrently with anything that
// touches the candidates.
func (b *Builder) Build(candidates []*model.Candidate) []*model.Cluster {
	byID := make(map[int]*model.Candidate, len(candidates))
	order := make([]*model.Candidate, len(candidates))
	copy(order, candidates)
	sort.Slice(order, func(i, j int) bool { return order[i].ID < order[j].ID })
	for _, c := range order {
		byID[c.ID] = c
	}

	var clusters []*model.Cluster
	for _, seed := range order {
		if seed.Claimed() {
			continue
		}
		seed.Claim()
		members := []*model.Candidate{seed}

		for _, id := range b.index.Query(seed.Signature) {
			if id == seed.ID {
				continue
			}
			match, ok := byID[id]
			if !ok || match.Claimed() {
				continue
			}
			if !b.accepts(seed, match) {
				continue
			}
			match.Claim()
			members = append(members, match)
		}

		if len(members) < 2 {
			// A lone seed stays claimed but yields no cluster.
			continue
		}
		clusters = append(clusters, &model.Cluster{Members: members})
		b.logger.Debug("built cluster",
			"seed", seed.ID,
			"members", len(members),
			"tag", tagOf(seed),
		)
	}
	return clusters
}

// accepts applies the pairwise predicates beyond the index hit.
func (b *Builder) accepts(seed, match *model.Candidate) bool {
	if similarity.HammingDistance(seed.Fingerprint, match.Fingerprint) > b.maxHamming {
		return false
	}
	// The ratio check is skipped, not failed, when either size is zero.
	if seed.Size > 0 && match.Size > 0 {
		small, large := seed.Size, match.Size
		if small > large {
			small, large = large, small
		}
		if float64(small)/float64(large) < b.minSizeRatio {
			return false
		}
	}
	if b.maxEditDistance > 0 {
		if editDistance(seed.Canonical, match.Canonical) > b.maxEditDistance {
			return false
		}
	}
	return true
}

// tagOf returns the root tag of a candidate's canonical tree.
func tagOf(c *model.Candidate) string {
	if c.Canonical == nil {
		return ""
	}
	return c.Canonical.Data
}
