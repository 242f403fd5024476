package script

import "github.com/gitrdm/eqprover/pkg/term"

// Command is a single parsed script statement. The driver consumes a
// []Command in source order.
type Command interface {
	isCommand()
}

// AxiomCmd corresponds to `axiom NAME : LHS = RHS .`.
type AxiomCmd struct {
	Name string
	LHS  term.Term
	RHS  term.Term
}

func (AxiomCmd) isCommand() {}

// ProveCmd corresponds to `prove LHS = RHS .`.
type ProveCmd struct {
	LHS term.Term
	RHS term.Term
}

func (ProveCmd) isCommand() {}

// ParamCmd corresponds to `param KEY VALUE .`. Exactly one of IntVal or
// BoolVal is meaningful, selected by IsBool.
type ParamCmd struct {
	Key     string
	IntVal  int
	BoolVal bool
	IsBool  bool
}

func (ParamCmd) isCommand() {}

// ShowAxiomsCmd corresponds to `show axioms .`, a supplemental
// convenience command that prints the installed axiom list.
type ShowAxiomsCmd struct{}

func (ShowAxiomsCmd) isCommand() {}
