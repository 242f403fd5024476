// Command eqprover reads a prover script and writes its proof
// transcripts to standard output. Error diagnostics go to standard
// error. Exit status is non-zero on a parse or runtime-invariant error;
// a proof that fails to discharge within its configured bounds is
// reported on stdout and is not itself an error.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gitrdm/eqprover/internal/diag"
	"github.com/gitrdm/eqprover/pkg/prover"
	"github.com/gitrdm/eqprover/pkg/script"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

func runProver(cmd *cobra.Command, args []string) (err error) {
	log := diag.New(os.Stderr, *rootFlags.verbose)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("internal invariant violation: %v", r)
			err = fmt.Errorf("internal invariant violation: %v", r)
		}
	}()

	path := args[0]
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return errors.Wrapf(readErr, "cannot read script %q", path)
	}

	cmds, parseErr := script.Parse(string(data))
	if parseErr != nil {
		return parseErr
	}

	d := prover.New(os.Stdout, log)
	if *rootFlags.maxDepth > 0 {
		d.Config.MaxSearchDepth = *rootFlags.maxDepth
	}
	if *rootFlags.maxSize > 0 {
		d.Config.MaxTreeSize = *rootFlags.maxSize
	}

	return d.Run(cmds)
}
