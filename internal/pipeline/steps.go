package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Anant-Navadiya/partial-extractor/internal/cluster"
	"github.com/Anant-Navadiya/partial-extractor/internal/corpus"
	"github.com/Anant-Navadiya/partial-extractor/internal/headfooter"
	"github.com/Anant-Navadiya/partial-extractor/internal/miner"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
	"github.com/Anant-Navadiya/partial-extractor/internal/partial"
	"github.com/Anant-Navadiya/partial-extractor/internal/report"
	"github.com/Anant-Navadiya/partial-extractor/internal/rewrite"
	"github.com/Anant-Navadiya/partial-extractor/internal/similarity"
)

// Steps returns the complete stage list for a run, in order.
func Steps(logger *slog.Logger) []Step {
	return []Step{
		&LoadStep{logger: logger},
		&HeadFooterStep{logger: logger},
		&MineStep{logger: logger},
		&ClusterStep{logger: logger},
		&EmitStep{logger: logger},
		&RewriteStep{logger: logger},
		&ReportStep{logger: logger},
	}
}

// LoadStep discovers and parses the corpus.
type LoadStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *LoadStep) Name() string { return "load" }

// Do discovers documents under the source root and parses them into
// pages. An unreadable source root is fatal; individual unreadable or
// unparseable documents are skipped inside the loader.
func (s *LoadStep) Do(_ context.Context, run *Run) error {
	paths, err := corpus.Discover(run.Config.SourceDir)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if len(paths) == 0 {
		s.logger.Warn("no documents found under source root", "source", run.Config.SourceDir)
	}

	pages, skipped := corpus.NewLoader(s.logger).Load(run.Config.SourceDir, paths)
	run.Pages = pages
	run.Skipped = skipped
	s.logger.Info("corpus loaded",
		"pages", len(pages),
		"skipped", len(skipped),
	)
	return nil
}

// HeadFooterStep computes the shared head and footer boilerplate.
type HeadFooterStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *HeadFooterStep) Name() string { return "headfooter" }

// Do intersects head and footer elements across the corpus. An empty
// corpus yields empty fragments, not an error.
func (s *HeadFooterStep) Do(_ context.Context, run *Run) error {
	run.Fragments = headfooter.New(s.logger).Extract(run.Pages)
	s.logger.Info("shared fragments computed",
		"title_suffix", run.Fragments.TitleSuffix,
		"footer_scripts", len(run.Fragments.FooterScriptSrcs),
	)
	return nil
}

// MineStep collects candidates from every page.
type MineStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *MineStep) Name() string { return "mine" }

// Do mines pages concurrently, then assigns global candidate IDs in a
// sequential pass over corpus order so the clustering order never
// depends on goroutine scheduling. A page that fails to mine is logged
// and contributes no candidates; its tree still flows to the rewrite
// stage for head/footer substitution.
func (s *MineStep) Do(ctx context.Context, run *Run) error {
	m := miner.New(
		miner.WithMinNodeCount(run.Config.MinNodeCount),
		miner.WithLogger(s.logger),
	)

	minedByPage := make([][]*miner.Mined, len(run.Pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(run.Config.Concurrency)
	for i, page := range run.Pages {
		i, page := i, page
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			mined, err := m.Mine(page)
			if err != nil {
				s.logger.Warn("could not mine page, continuing", "page", page.RelPath, "error", err)
				return nil
			}
			minedByPage[i] = mined
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("mine: %w", err)
	}

	run.Candidates, run.Nodes = miner.Assign(run.Pages, minedByPage)
	s.logger.Info("candidates mined", "count", len(run.Candidates))
	return nil
}

// ClusterStep groups candidates into near-duplicate clusters.
type ClusterStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *ClusterStep) Name() string { return "cluster" }

// Do indexes every candidate signature, then runs the single sequential
// clustering pass. This stage must not be parallelized: its contract
// depends on ascending-ID iteration and a monotonically growing claimed
// set.
func (s *ClusterStep) Do(_ context.Context, run *Run) error {
	index := similarity.NewIndex(run.Config.SimilarityThreshold)
	for _, c := range run.Candidates {
		index.Add(c.ID, c.Signature)
	}

	builder := cluster.NewBuilder(index,
		cluster.WithMaxHammingDistance(run.Config.MaxHammingDistance),
		cluster.WithMinSizeRatio(run.Config.MinSizeRatio),
		cluster.WithMaxEditDistance(run.Config.MaxEditDistance),
		cluster.WithLogger(s.logger),
	)
	run.Clusters = builder.Build(run.Candidates)
	s.logger.Info("clustering complete", "clusters", len(run.Clusters))
	return nil
}

// EmitStep writes the shared fragments and one partial per cluster.
type EmitStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *EmitStep) Name() string { return "emit" }

// Do emits partials from cluster representatives and writes all fragment
// files. Write failures here are fatal: the destination was verified
// writable at setup, so an error means the run cannot produce complete
// output.
func (s *EmitStep) Do(_ context.Context, run *Run) error {
	run.Partials = partial.NewEmitter(s.logger).Emit(run.Clusters)

	fragments := []struct {
		name string
		body string
	}{
		{model.TitleMetaFragment, run.Fragments.TitleMeta},
		{model.HeadCSSFragment, run.Fragments.HeadCSS},
		{model.FooterScriptsFragment, run.Fragments.FooterScripts},
	}
	for _, f := range fragments {
		if err := run.Writer.WriteFragment(f.name, f.body); err != nil {
			return fmt.Errorf("emit: %w", err)
		}
	}
	for _, p := range run.Partials {
		if err := run.Writer.WriteFragment(p.Name, p.Body); err != nil {
			return fmt.Errorf("emit: %w", err)
		}
	}
	s.logger.Info("partials emitted", "count", len(run.Partials))
	return nil
}

// RewriteStep substitutes includes into page trees and writes the
// mirrored output documents.
type RewriteStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *RewriteStep) Name() string { return "rewrite" }

// Do rewrites pages concurrently. Every input the rewriter reads (node
// table, partials, fragments) was frozen by earlier stages, so pages
// share no mutable state. A page that fails to write is logged and
// skipped; it is simply absent from the output rather than partially
// written.
func (s *RewriteStep) Do(ctx context.Context, run *Run) error {
	rw := rewrite.New(run.Nodes, run.Partials, run.Fragments, s.logger)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(run.Config.Concurrency)
	for _, page := range run.Pages {
		page := page
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rw.Rewrite(page)
			if err := run.Writer.WritePage(page); err != nil {
				s.logger.Warn("could not write page, skipping", "page", page.RelPath, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}
	s.logger.Info("pages rewritten", "count", len(run.Pages))
	return nil
}

// ReportStep writes the run summary.
type ReportStep struct {
	logger *slog.Logger
}

// Name returns the stage name.
func (s *ReportStep) Name() string { return "report" }

// Do renders the markdown summary into the destination root. Disabled
// when the report file name is empty.
func (s *ReportStep) Do(_ context.Context, run *Run) error {
	if run.Config.ReportFileName == "" {
		s.logger.Debug("report disabled")
		return nil
	}
	data, err := report.Render(run.Summary())
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := run.Writer.WriteFile(run.Config.ReportFileName, data); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	s.logger.Info("report written", "file", run.Config.ReportFileName)
	return nil
}
