// Package miner scans page bodies for candidate subtrees worth
// extracting into shared partials.
//
// # Candidate vocabulary
//
// Two categories are collected per page body:
//   - priority landmarks (header, nav, footer, aside) found anywhere in
//     the body
//   - direct div and section children of the body, with no deeper search
//     for this category
//
// Elements below the minimum node count are discarded; fragments that
// small are not worth extracting.
//
// # Identity tracking
//
// Mined subtrees must be located again after clustering so the rewrite
// stage can replace them. Rather than tagging live trees with a marker
// attribute, the miner records each candidate's live node in a NodeTable
// side table keyed by candidate ID. The page tree stays unpolluted and no
// tag/untag mutation pair exists; raw markup captured at mining time is
// therefore already pristine.
//
// # Concurrency
//
// Mining one page is a pure function of its tree, so pages are mined in
// parallel. Candidate IDs fix the clustering order, so they are not
// assigned during the parallel phase: Assign runs afterwards, sequentially
// over pages in corpus order, making IDs independent of goroutine
// scheduling.
package miner
