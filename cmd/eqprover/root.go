package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	maxDepth *int
	maxSize  *int
	verbose  *bool
}{}

var rootCmd = &cobra.Command{
	Use:           "eqprover <script file>",
	Short:         "Prove Boolean-algebra identities by axiom-directed rewriting",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runProver,
}

func init() {
	rootFlags.maxDepth = rootCmd.Flags().Int("max-depth", 0,
		"override the script's initial max_search_depth (0 keeps the built-in default)")
	rootFlags.maxSize = rootCmd.Flags().Int("max-size", 0,
		"override the script's initial max_tree_size (0 keeps the built-in default)")
	rootFlags.verbose = rootCmd.Flags().Bool("verbose", false,
		"log driver diagnostics to stderr")
}

// Execute runs the root command, printing any returned error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
