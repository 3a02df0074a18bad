package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Anant-Navadiya/partial-extractor/internal/config"
	"github.com/Anant-Navadiya/partial-extractor/internal/corpus"
	"github.com/Anant-Navadiya/partial-extractor/internal/log"
	"github.com/Anant-Navadiya/partial-extractor/internal/pipeline"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <source-dir> <dest-dir>",
		Short: "Refactor an HTML corpus into shared partials",
		Long: `Extract scans every .html document under the source directory,
computes the shared head/footer boilerplate, mines and clusters
near-duplicate components, and writes the refactored corpus to the
destination directory: a partials/ subdirectory holding the shared
fragments plus a mirrored document tree with components replaced by
@@include directives.

A document that fails to parse is logged and skipped; the run
continues. An unreadable source or uncreatable destination aborts
before anything is written.

Examples:
  # Refactor a template kit into partials
  partial-extractor extract ./site ./site-refactored

  # Tighter clustering via a config file
  partial-extractor extract -c thresholds.yaml ./site ./out

Configuration file (.partial-extractor) example:
  min_node_count: 30
  similarity_threshold: 0.6
  max_hamming_distance: 6
  min_size_ratio: 0.85`,
		Args: cobra.ExactArgs(2),
		RunE: runExtractCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .partial-extractor in current directory, then XDG config)")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency,
		"Number of pages mined/rewritten concurrently")
	cmd.Flags().IntP("min-nodes", "n", config.DefaultMinNodeCount,
		"Minimum subtree size for an extraction candidate")
	cmd.Flags().String("report", config.DefaultReportFileName,
		"Run summary file name inside the destination (\"none\" disables)")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// The writer performs all destination setup; failure here aborts
	// before any output exists.
	writer, err := corpus.NewWriter(cfg.DestDir, cfg.PartialsDirName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(pipeline.Steps(logger)...)

	run := pipeline.NewRun(cfg, writer)
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Refactoring complete: %d pages, %d partials -> %s\n",
		len(run.Pages), len(run.Partials), cfg.DestDir)
	return nil
}

// buildConfig assembles the run configuration from defaults, the
// optional config file, and CLI flags, in that precedence order.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.New()
	cfg.SourceDir = args[0]
	cfg.DestDir = args[1]
	cfg.Verbose = getVerboseFlag(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPath

	if found := config.FindFile(configPath); found != "" {
		file, err := config.LoadFile(found)
		if err != nil {
			return nil, fmt.Errorf("load config file %s: %w", found, err)
		}
		file.Apply(cfg)
	} else if configPath != "" {
		// An explicitly requested config file must exist.
		return nil, fmt.Errorf("load config file %s: %w", configPath, config.ErrConfigNotFound)
	}

	// Flags override the config file, but only when set.
	if cmd.Flags().Changed("concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("min-nodes") {
		if cfg.MinNodeCount, err = cmd.Flags().GetInt("min-nodes"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("report") {
		report, err := cmd.Flags().GetString("report")
		if err != nil {
			return nil, err
		}
		if report == "none" {
			cfg.ReportFileName = ""
		} else {
			cfg.ReportFileName = report
		}
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its
// parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
