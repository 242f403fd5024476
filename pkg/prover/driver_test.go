package prover

import (
	"bytes"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/eqprover/internal/diag"
	"github.com/gitrdm/eqprover/pkg/script"
)

func run(t *testing.T, source string) string {
	t.Helper()
	cmds, err := script.Parse(source)
	require.NoError(t, err)

	var out bytes.Buffer
	d := New(&out, diag.New(io.Discard, false))
	require.NoError(t, d.Run(cmds))
	return out.String()
}

// End-to-end scenario 1 (spec §8): Identity.
func TestProveIdentity(t *testing.T) {
	out := run(t, "prove 1 = 1.")
	require.Contains(t, out, "Prove 1 = 1...")
	require.Contains(t, out, "Statements are the same.")
}

// End-to-end scenario 2: commutative-then-identity, two-step path.
func TestProveCommutativeThenIdentity(t *testing.T) {
	source := `
		axiom com_add : (+ a b) = (+ b a) .
		axiom ide_add : (+ a 0) = a .
		prove (+ 0 1) = 1 .
	`
	out := run(t, source)
	require.Contains(t, out, "Prove (+ 0 1) = 1...")
	require.Contains(t, out, "(+ 0 1)\n")
	require.Contains(t, out, " = (+ 1 0)  w/ com_add\n")
	require.Contains(t, out, " = 1  w/ ide_add\n")
	require.Regexp(t, regexp.MustCompile(`Done in \d+\.\d{3} seconds after checking \d+ states\.`), out)
}

// End-to-end scenario 5: unreachable under a tight bound reports failure,
// not an error, and the driver continues past it.
func TestProveReportsFailureUnderBoundsAndContinues(t *testing.T) {
	source := `
		axiom com_add : (+ a b) = (+ b a) .
		param max_search_depth 3.
		prove 1 = (+ x (~ x)) .
		prove 1 = 1.
	`
	out := run(t, source)
	require.Regexp(t, regexp.MustCompile(`No path found within 3 steps after checking \d+ states in \d+\.\d{3} seconds\.`), out)
	require.Contains(t, out, "Statements are the same.")
}

// End-to-end scenario 6: use_proofs_as_axioms promotes a discharged
// obligation so a later, differently-named obligation with the same
// shape resolves in a single step naming the synthetic axiom.
func TestUseProofsAsAxiomsPromotesProofs(t *testing.T) {
	source := `
		param use_proofs_as_axioms true.
		axiom com_add : (+ a b) = (+ b a) .
		axiom ide_add : (+ a 0) = a .
		prove (+ 0 k) = k .
		prove (+ 0 m) = m .
	`
	out := run(t, source)
	require.Contains(t, out, "proof of (+ 0 k) = k")
	require.Contains(t, out, " = m  w/ proof of (+ 0 k) = k")
}

// A trivially-equal obligation is still a successful proof and must be
// promoted when use_proofs_as_axioms is set, not just a path-found one.
func TestUseProofsAsAxiomsPromotesTriviallyEqualProofs(t *testing.T) {
	source := `
		param use_proofs_as_axioms true.
		prove 1 = 1 .
		show axioms.
	`
	out := run(t, source)
	require.Contains(t, out, "Statements are the same.")
	require.Contains(t, out, "proof of 1 = 1 : 1 = 1 .")
}

func TestShowAxiomsPrintsInstalledAxioms(t *testing.T) {
	source := `
		axiom com_add : (+ a b) = (+ b a) .
		show axioms.
	`
	out := run(t, source)
	require.Contains(t, out, "com_add : (+ a b) = (+ b a) .")
}

func TestDuplicateAxiomNamesAreBothUsedBySearch(t *testing.T) {
	source := `
		axiom ide_add : (+ a 0) = a .
		axiom ide_add : (* a 1) = a .
		prove (* k 1) = k .
	`
	out := run(t, source)
	require.Contains(t, out, "Done in")
	require.Contains(t, out, " = k  w/ ide_add")
}
