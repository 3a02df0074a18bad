// Package similarity computes the two structural signals used to decide
// whether canonical subtrees are near-duplicates, and provides an
// approximate index for querying them.
//
// # Components
//
//   - Shingles: length-3 windows over root-to-leaf tag-name paths
//   - Signature: a 128-permutation MinHash sketch over the shingle set,
//     whose slot agreement estimates Jaccard similarity
//   - Fingerprint: a 64-bit SimHash over the ordered descendant tag
//     sequence, compared by Hamming distance
//   - Index: an LSH banding index over signatures answering
//     near-duplicate queries above a similarity threshold
//
// Both signals are pure functions over an immutable canonical tree and
// return fixed-size comparable values; the accept/reject predicates
// (Estimate, HammingDistance) are standalone so the near-duplicate
// decision stays unit-testable apart from indexing mechanics.
//
// Design decision: The sketch primitives are implemented locally over
// FNV-1a hashing rather than pulled from a library because the exact slot
// layout and permutation salts are part of the determinism contract:
// identical corpora must yield identical signatures, band keys, and hence
// identical clustering across builds and platforms.
package similarity
