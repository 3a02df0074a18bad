package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for partial-extractor.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partial-extractor",
		Short: "Extract shared partials from template-derived HTML corpora",
		Long: `partial-extractor detects recurring components across a set of HTML
documents built from a common template - navigation bars, headers,
footers, repeated content blocks - and refactors them into shared
partial files referenced via @@include directives.

The run is a deterministic batch job: identical input always produces
identical partials and rewritten documents.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
