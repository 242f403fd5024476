package script

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAxiomCommand(t *testing.T) {
	cmds, err := Parse("axiom com_add : (+ a b) = (+ b a) .")
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	ax, ok := cmds[0].(AxiomCmd)
	require.True(t, ok)
	require.Equal(t, "com_add", ax.Name)
	require.Equal(t, "(+ a b)", ax.LHS.String())
	require.Equal(t, "(+ b a)", ax.RHS.String())
}

func TestParseProveCommand(t *testing.T) {
	cmds, err := Parse("prove (+ 0 1) = 1 .")
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	pr, ok := cmds[0].(ProveCmd)
	require.True(t, ok)
	require.Equal(t, "(+ 0 1)", pr.LHS.String())
	require.Equal(t, "1", pr.RHS.String())
}

func TestParseParamCommands(t *testing.T) {
	cmds, err := Parse(`
		param max_search_depth 3.
		param max_tree_size 15.
		param use_proofs_as_axioms true.
	`)
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	depth := cmds[0].(ParamCmd)
	require.Equal(t, "max_search_depth", depth.Key)
	require.Equal(t, 3, depth.IntVal)
	require.False(t, depth.IsBool)

	size := cmds[1].(ParamCmd)
	require.Equal(t, "max_tree_size", size.Key)
	require.Equal(t, 15, size.IntVal)

	flag := cmds[2].(ParamCmd)
	require.Equal(t, "use_proofs_as_axioms", flag.Key)
	require.True(t, flag.IsBool)
	require.True(t, flag.BoolVal)
}

func TestParseShowAxiomsCommand(t *testing.T) {
	cmds, err := Parse("show axioms.")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	_, ok := cmds[0].(ShowAxiomsCmd)
	require.True(t, ok)
}

func TestParseFullScript(t *testing.T) {
	source := `
		# commutativity and identity of addition
		axiom com_add : (+ a b) = (+ b a) .
		axiom ide_add : (+ a 0) = a .
		prove (+ 0 1) = 1 .
	`
	cmds, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, cmds, 3)
}

func TestParseRejectsUnknownParameter(t *testing.T) {
	_, err := Parse("param bogus_key 1.")
	require.Error(t, err)
	_, ok := err.(*SyntaxError)
	require.True(t, ok)
}

func TestParseRejectsMissingTerminator(t *testing.T) {
	_, err := Parse("prove 1 = 1")
	require.Error(t, err)
}

func TestParseRejectsNonPositiveBound(t *testing.T) {
	_, err := Parse("param max_tree_size 0.")
	require.Error(t, err)
}

func TestParseRejectsArityMismatch(t *testing.T) {
	_, err := Parse("prove (~ a b) = a .")
	require.Error(t, err)
}

func TestParseCanonicalRoundTrip(t *testing.T) {
	// Canonical-print round-trip (spec §8): parsing a term's canonical
	// text reproduces the same canonical text.
	source := "prove (* (~ x) (+ y 1)) = (* (~ x) (+ y 1)) ."
	cmds, err := Parse(source)
	require.NoError(t, err)
	pr := cmds[0].(ProveCmd)

	reparsed, err := Parse("prove " + pr.LHS.String() + " = " + pr.RHS.String() + " .")
	require.NoError(t, err)
	pr2 := reparsed[0].(ProveCmd)
	require.Equal(t, pr.LHS.String(), pr2.LHS.String())
}
