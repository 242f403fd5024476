// Package config holds the process-scoped RuntimeConfig the driver
// mutates between proof obligations. There is deliberately no file- or
// environment-based configuration loader here: the script's own "param"
// commands, plus the CLI's --max-depth/--max-size flags for the starting
// bounds, are the only mutation paths the system defines, and the
// RuntimeConfig is never persisted between runs.
package config

// Runtime is the prover's process-scoped configuration. It is mutated
// only by the driver, between obligations; the search engine treats it
// as read-only for the duration of a single proof.
type Runtime struct {
	// MaxSearchDepth bounds how many rewrite steps a path may contain.
	MaxSearchDepth int
	// MaxTreeSize bounds the canonical-text length of an explored term.
	MaxTreeSize int
	// UseProofsAsAxioms, when true, promotes a successfully discharged
	// proof obligation into a new synthetic axiom.
	UseProofsAsAxioms bool
}

// Default returns the RuntimeConfig a driver starts with before any
// "param" command runs.
func Default() Runtime {
	return Runtime{
		MaxSearchDepth:    8,
		MaxTreeSize:       20,
		UseProofsAsAxioms: false,
	}
}
