package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/Anant-Navadiya/partial-extractor/internal/config"
	"github.com/Anant-Navadiya/partial-extractor/internal/corpus"
	"github.com/Anant-Navadiya/partial-extractor/internal/miner"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
	"github.com/Anant-Navadiya/partial-extractor/internal/partial"
)

// Run carries the state accumulated across stages. Each field is written
// by exactly one stage and read-only afterwards; the stage list in the
// package comment names the writers.
type Run struct {
	// Config is the validated run configuration.
	Config *config.Config

	// Writer persists output under the destination root. Constructed
	// before the pipeline starts so setup failures abort before any
	// stage runs.
	Writer *corpus.Writer

	// Pages is the loaded corpus in sorted path order. Written by the
	// load stage.
	Pages []*model.Page

	// Skipped lists documents that failed to load. Written by the load
	// stage.
	Skipped []string

	// Fragments is the shared head/footer boilerplate. Written by the
	// headfooter stage.
	Fragments *model.CommonFragments

	// Candidates is the frozen, globally identified candidate set in
	// ascending-ID order. Written by the mine stage.
	Candidates []*model.Candidate

	// Nodes maps candidate IDs to live page nodes. Written by the mine
	// stage.
	Nodes *miner.NodeTable

	// Clusters is the candidate partition. Written by the cluster stage.
	Clusters []*model.Cluster

	// Partials is the emitted fragment list. Written by the emit stage.
	Partials []*model.Partial
}

// NewRun creates a Run over a validated configuration and a constructed
// writer.
func NewRun(cfg *config.Config, writer *corpus.Writer) *Run {
	return &Run{
		Config:    cfg,
		Writer:    writer,
		Fragments: model.NewCommonFragments(),
	}
}

// Summary condenses the run for the report writer.
func (r *Run) Summary() *model.Summary {
	s := &model.Summary{
		SourceDir:      filepath.Clean(r.Config.SourceDir),
		DestDir:        filepath.Clean(r.Config.DestDir),
		PageCount:      len(r.Pages),
		SkippedPages:   r.Skipped,
		CandidateCount: len(r.Candidates),
		TitleSuffix:    r.Fragments.TitleSuffix,
	}
	for _, f := range []struct {
		file string
		body string
	}{
		{model.TitleMetaFragment, r.Fragments.TitleMeta},
		{model.HeadCSSFragment, r.Fragments.HeadCSS},
		{model.FooterScriptsFragment, r.Fragments.FooterScripts},
	} {
		s.Fragments = append(s.Fragments, model.FragmentSummary{
			File:  f.file,
			Lines: countLines(f.body),
		})
	}
	for _, p := range r.Partials {
		s.Partials = append(s.Partials, model.PartialSummary{
			File:      p.Name,
			Tag:       tagFromName(p.Name),
			Instances: len(p.Instances),
			Pages:     partial.InstancePages(p),
		})
	}
	return s
}

// countLines counts non-empty lines in a fragment body.
func countLines(body string) int {
	lines := 0
	for _, line := range strings.Split(body, "\n") {
		if line != "" {
			lines++
		}
	}
	return lines
}

// tagFromName recovers the root tag from a partial file name of the form
// partial_<n>_<tag>.html.
func tagFromName(name string) string {
	trimmed := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.LastIndexByte(trimmed, '_'); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
