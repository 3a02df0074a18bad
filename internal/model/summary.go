package model

// Summary aggregates the outcome of one refactoring run for the report
// writer. It carries plain values only so the report package needs no
// access to trees or pipeline state.
type Summary struct {
	// SourceDir and DestDir are the run's root directories.
	SourceDir string
	DestDir   string

	// PageCount is the number of documents processed successfully.
	PageCount int

	// SkippedPages lists documents that failed to parse or process and
	// were excluded from the output.
	SkippedPages []string

	// CandidateCount is the number of mined candidates across all pages.
	CandidateCount int

	// TitleSuffix is the detected common title suffix, if any.
	TitleSuffix string

	// Fragments summarizes the corpus-wide boilerplate partials.
	Fragments []FragmentSummary

	// Partials summarizes each emitted cluster partial.
	Partials []PartialSummary
}

// FragmentSummary describes one shared head/footer fragment.
type FragmentSummary struct {
	// File is the fragment file name.
	File string

	// Lines is the number of non-empty lines in the fragment body.
	Lines int
}

// PartialSummary describes one emitted cluster partial.
type PartialSummary struct {
	// File is the partial file name.
	File string

	// Tag is the root tag of the extracted component.
	Tag string

	// Instances is the number of occurrences replaced by includes.
	Instances int

	// Pages lists the distinct pages the partial occurs in.
	Pages []string
}
