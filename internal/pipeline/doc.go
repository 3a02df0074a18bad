// Package pipeline stages the refactoring run.
//
// A run is one finite batch job over a fixed, fully-known corpus: no
// stage begins before its predecessor completes, and each stage's output
// is read-only once the next stage starts. The stages are:
//
//  1. load       - discover and parse the corpus (per-file skip on error)
//  2. headfooter - intersect shared head/footer boilerplate
//  3. mine       - collect candidates (parallel across pages)
//  4. cluster    - one sequential, ordered pass over all candidates
//  5. emit       - write shared fragments and cluster partials
//  6. rewrite    - substitute includes and write pages (parallel)
//  7. report     - write the run summary
//
// Mining and rewriting are pure per-page functions and run under an
// errgroup with a concurrency limit; clustering depends on iteration
// order and a monotonically growing claimed set, so it must stay
// sequential. This staging discipline is what makes the run lock-free:
// parallel phases share no mutable state, and everything they read was
// frozen by an earlier stage.
//
// Design decision: We reuse the step-sequence pattern rather than one
// monolithic function because it gives each stage a name for logging,
// keeps cancellation checks uniform, and lets tests run a truncated
// stage list.
package pipeline
