// Package main provides the entry point for the partial-extractor CLI.
//
// partial-extractor detects recurring components (navigation bars,
// headers, footers, repeated content blocks) across a corpus of HTML
// documents built from a common template, extracts each as a shared
// partial, and rewrites the documents to reference the partials via
// include directives.
//
// Usage:
//
//	partial-extractor extract <source-dir> <dest-dir>
//
// See --help for all available options.
package main

// main is the entry point for partial-extractor.
func main() {
	Execute()
}
