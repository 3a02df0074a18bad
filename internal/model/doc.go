// Package model defines the core data structures shared by the
// refactoring pipeline stages.
//
// This package contains the following main types:
//   - Page: a parsed source document with its mutable tree
//   - Candidate: a subtree considered for extraction into a shared partial
//   - Cluster: a group of near-duplicate candidates yielding one partial
//   - Partial: an extracted fragment plus its instance back-references
//   - CommonFragments: corpus-wide head and footer boilerplate
//   - Summary: the run summary consumed by the report writer
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Multiple packages (miner, cluster, rewrite,
// report) need these types, so centralizing them prevents import cycles.
//
// Lifecycle contracts: candidates are created once during mining and are
// read-only afterwards except for the one-time claimed flag set during
// clustering. Clusters, partials, and common fragments are created once
// and frozen before the rewrite stage consumes them.
package model
