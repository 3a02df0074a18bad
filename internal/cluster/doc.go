// Package cluster groups mined candidates into near-duplicate clusters.
//
// # Contract
//
// The builder makes one greedy pass over the frozen candidate set in
// ascending-ID order. Each unclaimed candidate seeds a cluster; the
// approximate index proposes members, and each unclaimed proposal is
// accepted iff a three-predicate conjunction holds:
//
//  1. the index returned it (signature estimate at or above threshold)
//  2. fingerprint Hamming distance is within the bound
//  3. size ratio min/max meets the bound (skipped, not failed, when
//     either size is zero)
//
// Accepted members are claimed; a claimed candidate is permanently
// unavailable to later seeds, even if a later seed would match it better.
// Clusters with fewer than two members are discarded.
//
// The pass is intentionally greedy, order-dependent, and non-optimal.
// That is the documented contract, not an accident of mutable state:
// determinism requires a fixed candidate order, and changing the order
// can change the partition.
//
// A tree edit distance bound can be enabled as a fourth, confirmatory
// predicate. It only ever rejects proposals the first three accepted;
// it never admits anything on its own.
package cluster
