// Package match implements first-order pattern matching of an axiom
// pattern against a subject term, producing a variable-to-subterm
// binding or failure.
package match

import "github.com/gitrdm/eqprover/pkg/term"

// Binding is a finite mapping from pattern-variable name to the subterm
// it was bound to during a successful match.
type Binding map[string]term.Term

// Match attempts to match pattern against subject and returns the
// resulting Binding, or false if the patterns cannot be reconciled.
//
// The recursive structural walk follows the pattern:
//   - an Op pattern requires the subject to be an Op with the same
//     operator symbol and the same arity; children are matched pairwise;
//   - a Prim pattern requires the subject to be a Prim with the same
//     literal;
//   - a Var or Unres pattern names a pattern variable: if it is already
//     bound, the previously bound subterm must be structurally equal
//     (same canonical text) to the current subject, else the match
//     fails; if it is unbound, it is bound to the current subject.
func Match(subject, pattern term.Term) (Binding, bool) {
	b := Binding{}
	if !walk(subject, pattern, b) {
		return nil, false
	}
	return b, true
}

func walk(subject, pattern term.Term, b Binding) bool {
	if name, ok := term.VariableName(pattern); ok {
		if bound, exists := b[name]; exists {
			return bound.String() == subject.String()
		}
		b[name] = subject
		return true
	}

	switch p := pattern.(type) {
	case term.Prim:
		s, ok := subject.(term.Prim)
		return ok && s.Lit == p.Lit
	case term.Op:
		s, ok := subject.(term.Op)
		if !ok || s.Symbol != p.Symbol || len(s.Children) != len(p.Children) {
			return false
		}
		for i := range p.Children {
			if !walk(s.Children[i], p.Children[i], b) {
				return false
			}
		}
		return true
	default:
		// Unreachable: every Term is a Prim, Var, Unres, or Op, and the
		// two variable kinds are already handled above.
		panic("match: unreachable pattern node kind")
	}
}
