// Package prover implements the Driver: it consumes parsed script
// commands in order, installs axioms, runs proof obligations against the
// search engine, and prints the transcript spec §6 defines.
package prover

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/eqprover/pkg/axiom"
	"github.com/gitrdm/eqprover/pkg/config"
	"github.com/gitrdm/eqprover/pkg/script"
	"github.com/gitrdm/eqprover/pkg/search"
	"github.com/gitrdm/eqprover/pkg/term"
)

// Driver holds the process-scoped state a script's commands mutate: the
// installed axiom list and the RuntimeConfig. Both are shared across
// proof obligations in the same run; the search engine only ever reads
// them.
type Driver struct {
	Axioms []axiom.Axiom
	Config config.Runtime

	out io.Writer
	log *logrus.Logger
}

// New returns a Driver with default configuration, writing transcripts
// to out and diagnostics through log.
func New(out io.Writer, log *logrus.Logger) *Driver {
	return &Driver{Config: config.Default(), out: out, log: log}
}

// Run executes every command in order, stopping at the first error. A
// failed proof under bounds is not an error. A runtime invariant
// violation (an unreachable command kind or parameter key) panics instead
// of returning an error; the CLI recovers it and reports it as fatal.
func (d *Driver) Run(cmds []script.Command) error {
	for _, cmd := range cmds {
		if err := d.exec(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) exec(cmd script.Command) error {
	switch c := cmd.(type) {
	case script.AxiomCmd:
		d.installAxiom(c)
		return nil
	case script.ParamCmd:
		return d.applyParam(c)
	case script.ProveCmd:
		d.prove(c.LHS, c.RHS)
		return nil
	case script.ShowAxiomsCmd:
		d.showAxioms()
		return nil
	default:
		panic(fmt.Sprintf("prover: unreachable command type %T", cmd))
	}
}

// installAxiom appends (name, LHS, RHS) to the axiom list. Duplicate
// names are permitted: search always uses every entry, and a duplicate
// name only affects which entry a human reading `show axioms.` sees last
// under that name.
func (d *Driver) installAxiom(c script.AxiomCmd) {
	d.Axioms = append(d.Axioms, axiom.Axiom{Name: c.Name, A: c.LHS, B: c.RHS})
	d.log.WithField("axiom", c.Name).Debug("installed axiom")
}

func (d *Driver) applyParam(c script.ParamCmd) error {
	switch c.Key {
	case "max_search_depth":
		d.Config.MaxSearchDepth = c.IntVal
	case "max_tree_size":
		d.Config.MaxTreeSize = c.IntVal
	case "use_proofs_as_axioms":
		d.Config.UseProofsAsAxioms = c.BoolVal
	default:
		panic(fmt.Sprintf("prover: unreachable parameter key %q", c.Key))
	}
	d.log.WithField("param", c.Key).Debug("updated runtime parameter")
	return nil
}

func (d *Driver) showAxioms() {
	for _, ax := range d.Axioms {
		fmt.Fprintf(d.out, "%s : %s = %s .\n", ax.Name, ax.A.String(), ax.B.String())
	}
}

// prove runs one PROVE obligation and writes its transcript to d.out per
// §6: a header line, then either "Statements are the same." or the
// start term followed by one " = <successor>  w/ <axiom>" line per step,
// then a summary line reporting elapsed time and states checked.
func (d *Driver) prove(lhs, rhs term.Term) {
	fmt.Fprintf(d.out, "Prove %s = %s...\n", lhs.String(), rhs.String())
	d.log.WithFields(logrus.Fields{"lhs": lhs.String(), "rhs": rhs.String()}).Info("proof attempt started")

	if lhs.String() == rhs.String() {
		fmt.Fprintln(d.out, "Statements are the same.")
		d.log.Info("proof attempt finished: endpoints already equal")
		d.promote(lhs, rhs)
		return
	}

	start := time.Now()
	result := search.FindPath(d.Axioms, lhs, rhs, d.Config.MaxSearchDepth, d.Config.MaxTreeSize)
	elapsed := time.Since(start).Seconds()

	if !result.Found {
		fmt.Fprintf(d.out, "No path found within %d steps after checking %d states in %.3f seconds.\n",
			d.Config.MaxSearchDepth, result.VisitedCount, elapsed)
		d.log.WithField("states", result.VisitedCount).Info("proof attempt finished: no path found")
		return
	}

	fmt.Fprintln(d.out, lhs.String())
	for _, step := range result.Path {
		fmt.Fprintf(d.out, " = %s  w/ %s\n", step.Term.String(), step.AxiomName)
	}
	fmt.Fprintf(d.out, "Done in %.3f seconds after checking %d states.\n", elapsed, result.VisitedCount)
	d.log.WithField("states", result.VisitedCount).Info("proof attempt finished: path found")

	d.promote(lhs, rhs)
}

// promote appends a synthetic axiom for a just-discharged obligation when
// use_proofs_as_axioms is set, whether the proof took zero steps (the
// endpoints were already equal) or followed a rewrite path.
func (d *Driver) promote(lhs, rhs term.Term) {
	if !d.Config.UseProofsAsAxioms {
		return
	}
	name := fmt.Sprintf("proof of %s = %s", lhs.String(), rhs.String())
	d.Axioms = append(d.Axioms, axiom.Axiom{Name: name, A: lhs, B: rhs})
	d.log.WithField("axiom", name).Debug("promoted proof to axiom")
}
