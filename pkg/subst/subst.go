// Package subst implements the Substituter: instantiating a pattern
// under a binding produced by a successful match.
package subst

import (
	"github.com/gitrdm/eqprover/pkg/match"
	"github.com/gitrdm/eqprover/pkg/term"
)

// Substitute builds a new Term by a post-order copy of pattern: Prim
// copies as-is, Op copies recursively, and a Var/Unres pattern variable
// is replaced by its bound subterm. A pattern variable that appears in
// pattern but is absent from b — the right-hand side of an axiom
// mentioning a variable its left-hand side did not constrain — is
// replaced by a fresh Unres node from gen. This is the mechanism by
// which a rule like "(* a 0) = 0", applied right to left, introduces a
// new symbol for a on rewrite.
// Every occurrence of the same not-yet-bound name within one Substitute
// call receives the same fresh node, matching the consistency rule
// match.Match already enforces for repeated pattern variables.
func Substitute(pattern term.Term, b match.Binding, gen *term.Generator) term.Term {
	fresh := map[string]term.Term{}
	return substitute(pattern, b, fresh, gen)
}

func substitute(pattern term.Term, b match.Binding, fresh map[string]term.Term, gen *term.Generator) term.Term {
	if name, ok := term.VariableName(pattern); ok {
		if bound, exists := b[name]; exists {
			return bound
		}
		if f, exists := fresh[name]; exists {
			return f
		}
		f := gen.Fresh()
		fresh[name] = f
		return f
	}

	switch p := pattern.(type) {
	case term.Prim:
		return p
	case term.Op:
		children := make([]term.Term, len(p.Children))
		for i, c := range p.Children {
			children[i] = substitute(c, b, fresh, gen)
		}
		rebuilt, err := term.NewOp(p.Symbol, children...)
		if err != nil {
			// Unreachable: p was itself a validly constructed Op, so
			// rebuilding it with the same symbol and arity cannot fail.
			panic("subst: " + err.Error())
		}
		return rebuilt
	default:
		panic("subst: unreachable pattern node kind")
	}
}
