package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSourceDir is returned when no source directory is specified.
	ErrNoSourceDir = errors.New("no source directory specified")

	// ErrNoDestDir is returned when no destination directory is specified.
	ErrNoDestDir = errors.New("no destination directory specified")

	// ErrInvalidMinNodeCount is returned when the candidate size
	// threshold is not positive; a zero threshold would extract every
	// trivial element.
	ErrInvalidMinNodeCount = errors.New("invalid min node count: must be positive")

	// ErrInvalidThreshold is returned when the similarity threshold is
	// outside (0, 1].
	ErrInvalidThreshold = errors.New("invalid similarity threshold: must be in (0, 1]")

	// ErrInvalidHammingDistance is returned when the Hamming bound is
	// negative. Zero is valid and means members must fingerprint
	// identically.
	ErrInvalidHammingDistance = errors.New("invalid max hamming distance: must be non-negative")

	// ErrInvalidSizeRatio is returned when the size ratio bound is
	// outside (0, 1].
	ErrInvalidSizeRatio = errors.New("invalid min size ratio: must be in (0, 1]")

	// ErrInvalidEditDistance is returned when the edit distance bound is
	// negative. Zero is valid and means the predicate is disabled.
	ErrInvalidEditDistance = errors.New("invalid max edit distance: must be non-negative")

	// ErrInvalidConcurrency is returned when the worker limit is not
	// positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidPartialsDir is returned when the partials directory name
	// is empty or contains path separators; it must be a bare directory
	// name inside the destination.
	ErrInvalidPartialsDir = errors.New("invalid partials directory: must be a bare directory name")
)
