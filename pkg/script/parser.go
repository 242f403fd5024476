// Package script is the surface tokenizer/parser for the prover's script
// language. It sits outside the core: its only contract with the rest of
// the system is the []Command slice (built from §3's Term data model) it
// hands to the driver. The core never re-validates what the parser
// already guarantees.
package script

import (
	"strconv"

	"github.com/gitrdm/eqprover/pkg/term"
)

// Parse tokenizes and parses a complete script, returning its commands
// in source order. The first malformed token or construct is reported as
// a *SyntaxError and parsing stops.
func Parse(source string) ([]Command, error) {
	p := &parser{source: source, lex: newLexer(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var cmds []Command
	for p.cur.kind != tokEOF {
		cmd, err := p.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

type parser struct {
	source string
	lex    *lexer
	cur    token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return newSyntaxErrorAt(p.source, p.cur.row, p.cur.col, format, args...)
}

func (p *parser) expect(kind tokenKind) error {
	if p.cur.kind != kind {
		return p.errorf("expected %s, found %s %q", kind, p.cur.kind, p.cur.text)
	}
	return p.advance()
}

func (p *parser) command() (Command, error) {
	if p.cur.kind != tokIdent {
		return nil, p.errorf("expected a command (axiom, prove, param, show), found %s", p.cur.kind)
	}

	switch p.cur.text {
	case "axiom":
		return p.axiomCmd()
	case "prove":
		return p.proveCmd()
	case "param":
		return p.paramCmd()
	case "show":
		return p.showCmd()
	default:
		return nil, p.errorf("unknown command %q", p.cur.text)
	}
}

func (p *parser) axiomCmd() (Command, error) {
	if err := p.advance(); err != nil { // consume "axiom"
		return nil, err
	}
	if p.cur.kind != tokIdent {
		return nil, p.errorf("expected an axiom name, found %s", p.cur.kind)
	}
	name := p.cur.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokColon); err != nil {
		return nil, err
	}
	lhs, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEq); err != nil {
		return nil, err
	}
	rhs, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokDot); err != nil {
		return nil, err
	}
	return AxiomCmd{Name: name, LHS: lhs, RHS: rhs}, nil
}

func (p *parser) proveCmd() (Command, error) {
	if err := p.advance(); err != nil { // consume "prove"
		return nil, err
	}
	lhs, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEq); err != nil {
		return nil, err
	}
	rhs, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokDot); err != nil {
		return nil, err
	}
	return ProveCmd{LHS: lhs, RHS: rhs}, nil
}

func (p *parser) paramCmd() (Command, error) {
	if err := p.advance(); err != nil { // consume "param"
		return nil, err
	}
	if p.cur.kind != tokIdent {
		return nil, p.errorf("expected a parameter name, found %s", p.cur.kind)
	}
	key := p.cur.text
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch key {
	case "max_tree_size", "max_search_depth":
		if p.cur.kind != tokNumber {
			return nil, p.errorf("expected a positive integer value for %q, found %s", key, p.cur.kind)
		}
		n, err := strconv.Atoi(p.cur.text)
		if err != nil || n <= 0 {
			return nil, p.errorf("%q must be a positive integer, found %q", key, p.cur.text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokDot); err != nil {
			return nil, err
		}
		return ParamCmd{Key: key, IntVal: n}, nil

	case "use_proofs_as_axioms":
		if p.cur.kind != tokIdent || (p.cur.text != "true" && p.cur.text != "false") {
			return nil, p.errorf("expected true or false for %q, found %q", key, p.cur.text)
		}
		val := p.cur.text == "true"
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokDot); err != nil {
			return nil, err
		}
		return ParamCmd{Key: key, BoolVal: val, IsBool: true}, nil

	default:
		return nil, p.errorf("unknown parameter %q", key)
	}
}

func (p *parser) showCmd() (Command, error) {
	if err := p.advance(); err != nil { // consume "show"
		return nil, err
	}
	if p.cur.kind != tokIdent || p.cur.text != "axioms" {
		return nil, p.errorf("expected \"axioms\" after \"show\", found %q", p.cur.text)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ShowAxiomsCmd{}, p.expect(tokDot)
}

// formula parses one `formula` production: a PRIM, an identifier (VAR),
// a parenthesized unary "~", or a parenthesized binary "*"/"+".
func (p *parser) formula() (term.Term, error) {
	switch p.cur.kind {
	case tokNumber:
		if p.cur.text != "0" && p.cur.text != "1" {
			return nil, p.errorf("expected 0 or 1, found %q", p.cur.text)
		}
		lit := p.cur.text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := term.NewPrim(lit)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return t, nil

	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := term.NewVar(name)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return t, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parenFormula()

	default:
		return nil, p.errorf("expected a formula, found %s", p.cur.kind)
	}
}

func (p *parser) parenFormula() (term.Term, error) {
	switch p.cur.kind {
	case tokTilde:
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.formula()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		t, err := term.NewOp("~", child)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return t, nil

	case tokStar, tokPlus:
		symbol := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		left, err := p.formula()
		if err != nil {
			return nil, err
		}
		right, err := p.formula()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		t, err := term.NewOp(symbol, left, right)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return t, nil

	default:
		return nil, p.errorf("expected '~', '*', or '+' after '(', found %s", p.cur.kind)
	}
}
