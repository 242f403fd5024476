// Package axiom defines the Axiom data model: a named, bidirectional
// rewrite rule between two term patterns.
package axiom

import "github.com/gitrdm/eqprover/pkg/term"

// Axiom is (name, patternA, patternB). Installing an axiom gives the
// rewriter two directed rules: A ⇒ B and B ⇒ A. The identifiers that
// appear inside A and B are pattern variables; they have no special
// declared status distinguishing them from ordinary subject terms — the
// matcher treats any Var or Unres node in a pattern as a binding site.
type Axiom struct {
	Name string
	A    term.Term
	B    term.Term
}
