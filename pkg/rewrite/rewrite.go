// Package rewrite enumerates the single-step successors of a term under
// a rule set applied in both directions — the Rewriter component.
package rewrite

import (
	"github.com/gitrdm/eqprover/pkg/axiom"
	"github.com/gitrdm/eqprover/pkg/match"
	"github.com/gitrdm/eqprover/pkg/subst"
	"github.com/gitrdm/eqprover/pkg/term"
)

// Step pairs a successor term with the name of the axiom that produced
// it. The direction used (A⇒B or B⇒A) is not retained separately; it is
// implied by which of the two passes over an axiom produced the step.
type Step struct {
	AxiomName string
	Term      term.Term
}

// StepAtRoot attempts to rewrite subject at its root using the directed
// rule from ⇒ to. It fails if from does not match subject.
func StepAtRoot(subject, from, to term.Term, gen *term.Generator) (term.Term, bool) {
	b, ok := match.Match(subject, from)
	if !ok {
		return nil, false
	}
	return subst.Substitute(to, b, gen), true
}

// StepsEverywhere yields every successor obtainable by applying the
// directed rule from ⇒ to at any position within subject: first the root
// attempt, then, recursively, each child position in order. Each
// successor carries name as its axiom label. The order is deterministic
// — root first, then the child-0 subtree in pre-order, then the child-1
// subtree — so that breadth-first search built on top of it explores
// states in a reproducible order.
func StepsEverywhere(subject term.Term, name string, from, to term.Term, gen *term.Generator) []Step {
	var steps []Step

	if result, ok := StepAtRoot(subject, from, to, gen); ok {
		steps = append(steps, Step{AxiomName: name, Term: result})
	}

	if op, ok := subject.(term.Op); ok {
		for i, child := range op.Children {
			for _, cs := range StepsEverywhere(child, name, from, to, gen) {
				newChildren := make([]term.Term, len(op.Children))
				copy(newChildren, op.Children)
				newChildren[i] = cs.Term
				rebuilt, err := term.NewOp(op.Symbol, newChildren...)
				if err != nil {
					// Unreachable: same symbol and arity as op.
					panic("rewrite: " + err.Error())
				}
				steps = append(steps, Step{AxiomName: name, Term: rebuilt})
			}
		}
	}

	return steps
}

// AllSteps enumerates every single-step successor of subject under
// axioms, in declaration order, trying each axiom's A⇒B direction before
// its B⇒A direction. The resulting list may contain duplicate successor
// terms — distinct axioms or positions producing the same tree — which
// the search engine is responsible for deduplicating by canonical key.
func AllSteps(subject term.Term, axioms []axiom.Axiom, gen *term.Generator) []Step {
	var all []Step
	for _, ax := range axioms {
		all = append(all, StepsEverywhere(subject, ax.Name, ax.A, ax.B, gen)...)
		all = append(all, StepsEverywhere(subject, ax.Name, ax.B, ax.A, gen)...)
	}
	return all
}
