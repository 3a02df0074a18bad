package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values. The similarity defaults come from tuning
// against Bootstrap-style template corpora; they trade a small number of
// missed near-duplicates for zero observed false merges.
const (
	// DefaultMinNodeCount is the minimum subtree size (element plus
	// non-blank text descendants) for a mining candidate. Fragments
	// below this are too small to be worth extracting: the include
	// directive plus fragment file costs more than the duplication.
	DefaultMinNodeCount = 30

	// DefaultSimilarityThreshold is the minimum estimated Jaccard
	// similarity for an index hit. Pairs estimating below this are
	// never proposed as cluster members.
	DefaultSimilarityThreshold = 0.6

	// DefaultMaxHammingDistance is the maximum fingerprint Hamming
	// distance between members of one cluster. This confirmatory check
	// catches subtrees whose path structure matches but whose overall
	// tag composition diverges.
	DefaultMaxHammingDistance = 6

	// DefaultMinSizeRatio is the minimum min/max node count ratio
	// between members of one cluster. It rejects structurally similar
	// subtrees of very different bulk, such as a navigation bar versus
	// a mega-menu built from the same markup vocabulary.
	DefaultMinSizeRatio = 0.85

	// DefaultMaxEditDistance disables the opt-in tree edit distance
	// predicate. A positive value enables it as an extra confirmatory
	// bound on top of the standard three predicates.
	DefaultMaxEditDistance = 0

	// DefaultConcurrency is the worker limit for the parallel per-page
	// stages (mining and rewriting).
	DefaultConcurrency = 8

	// DefaultPartialsDirName is the destination subdirectory holding
	// fragment files.
	DefaultPartialsDirName = "partials"

	// DefaultReportFileName is the run summary written beside the
	// rewritten documents. Empty disables the report.
	DefaultReportFileName = "extraction-report.md"

	// AppName is the application name used for XDG directory paths.
	AppName = "partial-extractor"
)

// Config holds all options for one refactoring run. It is populated from
// defaults, then the optional config file, then CLI flags, and passed
// through the application by value injection rather than global state.
type Config struct {
	// SourceDir is the root under which documents are discovered.
	SourceDir string

	// DestDir is the root the refactored tree and partials are written
	// under. It must not already contain output the caller cares about;
	// files are overwritten without prompting.
	DestDir string

	// MinNodeCount is the minimum candidate subtree size.
	MinNodeCount int

	// SimilarityThreshold is the minimum index-hit similarity estimate.
	SimilarityThreshold float64

	// MaxHammingDistance is the fingerprint distance bound for
	// clustering.
	MaxHammingDistance int

	// MinSizeRatio is the size ratio bound for clustering.
	MinSizeRatio float64

	// MaxEditDistance, when positive, enables the tree edit distance
	// predicate with this bound.
	MaxEditDistance int

	// Concurrency is the worker limit for parallel per-page stages.
	Concurrency int

	// PartialsDirName is the destination subdirectory for fragments.
	PartialsDirName string

	// ReportFileName is the run summary file name; empty disables it.
	ReportFileName string

	// Verbose enables debug-level log output.
	Verbose bool

	// ConfigFilePath is an explicit config file path. Empty means
	// search the standard locations.
	ConfigFilePath string
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		MinNodeCount:        DefaultMinNodeCount,
		SimilarityThreshold: DefaultSimilarityThreshold,
		MaxHammingDistance:  DefaultMaxHammingDistance,
		MinSizeRatio:        DefaultMinSizeRatio,
		MaxEditDistance:     DefaultMaxEditDistance,
		Concurrency:         DefaultConcurrency,
		PartialsDirName:     DefaultPartialsDirName,
		ReportFileName:      DefaultReportFileName,
	}
}

// XDGConfigDir returns the XDG config directory for partial-extractor.
// On Linux: ~/.config/partial-extractor
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first violation as a
// sentinel error suitable for errors.Is matching.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return ErrNoSourceDir
	}
	if c.DestDir == "" {
		return ErrNoDestDir
	}
	if c.MinNodeCount <= 0 {
		return ErrInvalidMinNodeCount
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return ErrInvalidThreshold
	}
	if c.MaxHammingDistance < 0 {
		return ErrInvalidHammingDistance
	}
	if c.MinSizeRatio <= 0 || c.MinSizeRatio > 1 {
		return ErrInvalidSizeRatio
	}
	if c.MaxEditDistance < 0 {
		return ErrInvalidEditDistance
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.PartialsDirName == "" || c.PartialsDirName != filepath.Base(c.PartialsDirName) {
		return ErrInvalidPartialsDir
	}
	return nil
}
