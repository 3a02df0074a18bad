// Package dom provides helpers over golang.org/x/net/html trees.
//
// All pipeline stages share one tree representation: the html.Node type
// from golang.org/x/net/html. This package concentrates the operations
// they need - parsing, rendering, deep cloning, attribute access, and
// node counting - so the stage packages stay free of tree-walking
// boilerplate.
//
// Design decision: We use golang.org/x/net/html rather than regex or a
// third-party DOM library because:
//  1. It correctly handles malformed HTML common in hand-written templates
//  2. It round-trips documents without destroying author formatting choices
//  3. Standard library extension, well-maintained
//
// Ownership rules: source trees are mutable and exclusively owned by their
// page; Clone produces fully independent trees that never alias source
// nodes. Callers that need a subtree for comparison must clone first.
package dom
