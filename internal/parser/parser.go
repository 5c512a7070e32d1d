// Package parser turns a token stream into an *ast.Program, grounded on
// racketinterpreter/processes/parsing.py's recursive-descent shape (one
// method per grammar rule, an `eat`-style token consumer) but adapted to
// internal/ast's fixed-field node types: where the original defers shape
// checking (does this definition have exactly one body expression? are
// there duplicate formal parameters?) to a later semantic pass over raw
// expression lists, this parser enforces it immediately, since ast.IdAssign,
// ast.ProcAssign, ast.StructAssign and ast.CheckExpect have no raw-exprs
// field to defer into. ast.Cond is the one exception: its branches keep
// their raw Exprs (see internal/ast's doc comment), because cond's clause
// arity and else-placement rules are specified as the semantic analyzer's
// job (spec's Semantic Analyzer component), not the parser's.
package parser

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Parser walks a token stream with one token of required lookahead (two,
// for distinguishing a constant definition from a procedure definition).
type Parser struct {
	c *Cursor
}

// Parse tokenizes nothing itself (the caller already ran internal/lexer);
// it turns an already-produced token stream into a Program, or the first
// syntax error encountered. Like the original, there is no error recovery:
// the first failure is fatal.
func Parse(tokens []lexer.Token) (*ast.Program, *diag.Error) {
	p := &Parser{c: NewCursor(tokens)}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, *diag.Error) {
	pos := p.c.Cur().Pos
	var stmts []ast.Node
	for !p.c.Is(lexer.EOF) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &ast.Program{Base: ast.Base{Position: pos}, Statements: stmts}, nil
}

// parseStatement implements `statement := expr | definition | check-expect`:
// only at this level does a leading keyword route to a special form: a
// "define"/"define-struct"/"check-expect" appearing as an operator inside an
// ordinary expression is left as a plain ProcCall (matching the original's
// expr() never special-casing these), so internal/semantic can report the
// precise "found a definition that is not at the top level" diagnostic.
func (p *Parser) parseStatement() (ast.Node, *diag.Error) {
	if p.c.Is(lexer.LPAREN) {
		next := p.c.Peek(1)
		if next.Type == lexer.NAME {
			switch next.Text {
			case "define":
				return p.parseDefinition()
			case "define-struct":
				return p.parseStruct()
			case "check-expect":
				return p.parseCheckExpect()
			}
		}
	}
	return p.parseExpr()
}

// parseExpr implements `expr := literal | name | "(" expr* ")" | cond |
// list-abbrev`.
func (p *Parser) parseExpr() (ast.Node, *diag.Error) {
	tok := p.c.Cur()
	switch tok.Type {
	case lexer.LPAREN:
		if p.c.Peek(1).Type == lexer.NAME && p.c.Peek(1).Text == "cond" {
			return p.parseCond()
		}
		return p.parseProcCall()
	case lexer.NAME:
		p.c.Advance()
		return &ast.Id{Base: ast.Base{Position: tok.Pos}, Name: tok.Text}, nil
	case lexer.LISTABBREV:
		p.c.Advance()
		return parseListAbbrev(tok)
	case lexer.BOOLEAN, lexer.INTEGER, lexer.RATIONAL, lexer.DECIMAL, lexer.STRING, lexer.SYMBOL:
		return p.parseLiteral()
	default:
		return nil, unexpectedTokenErr(tok)
	}
}

func (p *Parser) parseLiteral() (ast.Node, *diag.Error) {
	tok := p.c.Cur()
	p.c.Advance()
	switch tok.Type {
	case lexer.BOOLEAN:
		return &ast.Bool{Base: ast.Base{Position: tok.Pos}, Value: tok.Bool}, nil
	case lexer.INTEGER:
		return &ast.Num{Base: ast.Base{Position: tok.Pos}, Value: numeric.NewInteger(tok.Int)}, nil
	case lexer.RATIONAL:
		return &ast.Num{Base: ast.Base{Position: tok.Pos}, Value: numeric.NewRational(tok.Rat.Num, tok.Rat.Den)}, nil
	case lexer.DECIMAL:
		return &ast.Num{Base: ast.Base{Position: tok.Pos}, Value: numeric.NewInexact(tok.Dec)}, nil
	case lexer.STRING:
		return &ast.Str{Base: ast.Base{Position: tok.Pos}, Value: tok.Text}, nil
	case lexer.SYMBOL:
		return &ast.Sym{Base: ast.Base{Position: tok.Pos}, Value: tok.Text[1:]}, nil
	default:
		return nil, unexpectedTokenErr(tok)
	}
}

// parseProcCall implements `p-expr := LPAREN expr* RPAREN`. An empty call
// `()` has no operator to resolve against, so it's reported here rather than
// producing a ProcCall with a nil Operator.
func (p *Parser) parseProcCall() (ast.Node, *diag.Error) {
	open := p.c.Cur()
	p.c.Advance()

	var exprs []ast.Node
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	p.c.Advance()

	if len(exprs) == 0 {
		return nil, diag.ExpectedAFunction(open.Pos, diag.DescribeNothing)
	}

	return &ast.ProcCall{Base: ast.Base{Position: open.Pos}, Operator: exprs[0], Args: exprs[1:]}, nil
}
