package similarity

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// Banding layout: 16 bands of 8 rows over the 128 signature slots.
// Two signatures collide in a band only when all 8 rows agree, which
// tunes the index's retrieval curve around the 0.6 similarity threshold.
const (
	numBands    = 16
	rowsPerBand = NumPermutations / numBands
)

// Index answers approximate near-duplicate queries over signatures.
//
// Retrieval is two-phase: LSH banding gathers candidates, then the exact
// slot-agreement estimate filters them against the threshold. Results
// below the threshold estimate are never returned (bounded recall, not
// exhaustive: a true near-duplicate that collides in no band is missed).
// Two identical signatures always collide in every band, so identical
// shingle sets are never a false negative.
//
// Index is not safe for concurrent use. The pipeline populates it during
// the sequential ID-assignment pass and queries it during the sequential
// clustering pass, so no locking is needed.
type Index struct {
	// threshold is the minimum similarity estimate for a query hit.
	threshold float64

	// buckets maps band number and band key to the IDs hashed there.
	buckets [numBands]map[uint64][]int

	// signatures records every added signature by ID for the estimate
	// filter in Query.
	signatures map[int]Signature
}

// NewIndex creates an empty index with the given similarity threshold.
func NewIndex(threshold float64) *Index {
	idx := &Index{
		threshold:  threshold,
		signatures: make(map[int]Signature),
	}
	for b := range idx.buckets {
		idx.buckets[b] = make(map[uint64][]int)
	}
	return idx
}

// Add inserts a signature under the given ID.
func (idx *Index) Add(id int, sig Signature) {
	idx.signatures[id] = sig
	for b := 0; b < numBands; b++ {
		key := bandKey(sig, b)
		idx.buckets[b][key] = append(idx.buckets[b][key], id)
	}
}

// Query returns the IDs of all indexed signatures that share at least one
// band with sig and whose similarity estimate against sig meets the
// threshold. Results are in ascending ID order and include the queried
// signature's own ID when it was added.
func (idx *Index) Query(sig Signature) []int {
	seen := make(map[int]struct{})
	for b := 0; b < numBands; b++ {
		for _, id := range idx.buckets[b][bandKey(sig, b)] {
			seen[id] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		if Estimate(sig, idx.signatures[id]) >= idx.threshold {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of indexed signatures.
func (idx *Index) Len() int {
	return len(idx.signatures)
}

// bandKey hashes one band's rows of a signature to a bucket key.
func bandKey(sig Signature, band int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for row := 0; row < rowsPerBand; row++ {
		binary.BigEndian.PutUint64(buf[:], sig[band*rowsPerBand+row])
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
