// Package term defines the formula trees the prover rewrites.
//
// Term is a tagged sum over four node kinds — Prim, Var, Unres, and Op —
// modeled as a sealed interface with one concrete struct per kind, the
// idiomatic Go stand-in for the tagged variant the original design calls
// for. Terms are immutable value types: nothing in this package ever
// mutates a Term after construction, so callers may freely share subtrees
// between a term and its rewrite successors.
package term

import (
	"fmt"
	"strings"
)

// Term is any node in a formula tree. The set of implementations is
// closed to this package; callers switch on the concrete type to inspect
// a Term.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Prim is a Boolean constant, literally "0" or "1".
type Prim struct {
	Lit byte
}

func (Prim) isTerm() {}

// String renders the literal token.
func (p Prim) String() string {
	return string(p.Lit)
}

// Var is a user-written free variable from the script.
type Var struct {
	Name string
}

func (Var) isTerm() {}

// String renders the variable's identifier.
func (v Var) String() string {
	return v.Name
}

// Unres is a placeholder the prover introduces when a rewrite's target
// pattern mentions a variable the source pattern did not bind. Its name
// comes from a Generator and is disjoint from user identifiers.
type Unres struct {
	Name string
}

func (Unres) isTerm() {}

// String renders the placeholder's identifier.
func (u Unres) String() string {
	return u.Name
}

// Op is an operator node: unary "~", or binary "*"/"+".
type Op struct {
	Symbol   string
	Children []Term
}

func (Op) isTerm() {}

// String renders the canonical, prefix-parenthesized text of the node:
// "(~ c)" for unary, "(⊙ l r)" for binary. This text is the term's
// identity everywhere a canonical key is required — the visited set, the
// parent map, and the depth map all key on it.
func (o Op) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(o.Symbol)
	for _, c := range o.Children {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Size is the length of a term's canonical text, the proxy the search
// engine bounds against max_tree_size. It deliberately counts characters,
// not nodes, so deeply parenthesized structures are penalized too.
func Size(t Term) int {
	return len(t.String())
}

// VariableName reports the identifier of a Var or Unres node. Both kinds
// act as pattern variables when they appear in a pattern, and as ordinary
// match targets when they appear in a subject — there is no distinction
// between them at match time.
func VariableName(t Term) (name string, ok bool) {
	switch v := t.(type) {
	case Var:
		return v.Name, true
	case Unres:
		return v.Name, true
	}
	return "", false
}

// NewPrim builds a Boolean constant. lit must be '0' or '1'.
func NewPrim(lit byte) (Term, error) {
	if lit != '0' && lit != '1' {
		return nil, fmt.Errorf("term: invalid PRIM literal %q, want '0' or '1'", lit)
	}
	return Prim{Lit: lit}, nil
}

// NewVar builds a user-written free variable. name must be a valid
// identifier: non-empty, starting with a letter or underscore, continuing
// with letters, digits, or underscores.
func NewVar(name string) (Term, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("term: invalid identifier %q", name)
	}
	return Var{Name: name}, nil
}

// NewOp builds an operator node. symbol must be "~" (arity 1) or "*"/"+"
// (arity 2); the number of children must match that arity exactly.
func NewOp(symbol string, children ...Term) (Term, error) {
	switch symbol {
	case "~":
		if len(children) != 1 {
			return nil, fmt.Errorf("term: operator %q requires 1 child, got %d", symbol, len(children))
		}
	case "*", "+":
		if len(children) != 2 {
			return nil, fmt.Errorf("term: operator %q requires 2 children, got %d", symbol, len(children))
		}
	default:
		return nil, fmt.Errorf("term: unknown operator %q", symbol)
	}
	cs := make([]Term, len(children))
	copy(cs, children)
	return Op{Symbol: symbol, Children: cs}, nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
