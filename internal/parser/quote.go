package parser

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// internal/ast has no dedicated "quoted list" node, so a list-abbreviation
// token ('(1 2 3)) is desugared here into the same (cons 1 (cons 2 (cons 3
// empty))) shape a student could have written by hand, reusing the ordinary
// cons builtin and the empty binding instead of adding an evaluator case
// just for this literal form. Bare names inside the quoted form become Sym
// leaves rather than Id references, matching quote's usual semantics.
//
// internal/lexer.scanQuotedList already guarantees the token's Children are
// a self-contained, depth-balanced stream (LPAREN ... RPAREN) built with
// apostropheAsQuote set, so nested quotes can't appear inside one and this
// function never has to handle a SYMBOL or nested LISTABBREV token.
func parseListAbbrev(tok lexer.Token) (ast.Node, *diag.Error) {
	children := make([]lexer.Token, len(tok.Children), len(tok.Children)+1)
	copy(children, tok.Children)
	sub := NewCursor(append(children, lexer.Token{Type: lexer.EOF, Pos: tok.Pos}))
	if !sub.Is(lexer.LPAREN) {
		return nil, unexpectedTokenErr(sub.Cur())
	}
	sub.Advance()
	return parseQuotedList(sub, tok.Pos)
}

func parseQuotedList(c *Cursor, pos diag.Position) (ast.Node, *diag.Error) {
	var elems []ast.Node
	for !c.Is(lexer.RPAREN) {
		if c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(c.Cur().Pos)
		}
		elem, err := parseQuotedElem(c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	c.Advance()
	return consChain(elems, pos), nil
}

func parseQuotedElem(c *Cursor) (ast.Node, *diag.Error) {
	tok := c.Cur()
	switch tok.Type {
	case lexer.LPAREN:
		c.Advance()
		return parseQuotedList(c, tok.Pos)
	case lexer.BOOLEAN:
		c.Advance()
		return &ast.Bool{Base: ast.Base{Position: tok.Pos}, Value: tok.Bool}, nil
	case lexer.INTEGER:
		c.Advance()
		return &ast.Num{Base: ast.Base{Position: tok.Pos}, Value: numeric.NewInteger(tok.Int)}, nil
	case lexer.RATIONAL:
		c.Advance()
		return &ast.Num{Base: ast.Base{Position: tok.Pos}, Value: numeric.NewRational(tok.Rat.Num, tok.Rat.Den)}, nil
	case lexer.DECIMAL:
		c.Advance()
		return &ast.Num{Base: ast.Base{Position: tok.Pos}, Value: numeric.NewInexact(tok.Dec)}, nil
	case lexer.STRING:
		c.Advance()
		return &ast.Str{Base: ast.Base{Position: tok.Pos}, Value: tok.Text}, nil
	case lexer.NAME:
		c.Advance()
		return &ast.Sym{Base: ast.Base{Position: tok.Pos}, Value: tok.Text}, nil
	default:
		return nil, unexpectedTokenErr(tok)
	}
}

// consChain builds the right-nested (cons e0 (cons e1 (... empty))) call
// tree for a quoted list's elements.
func consChain(elems []ast.Node, pos diag.Position) ast.Node {
	var result ast.Node = &ast.Id{Base: ast.Base{Position: pos}, Name: "empty"}
	for i := len(elems) - 1; i >= 0; i-- {
		result = &ast.ProcCall{
			Base:     ast.Base{Position: elems[i].Pos()},
			Operator: &ast.Id{Base: ast.Base{Position: pos}, Name: "cons"},
			Args:     []ast.Node{elems[i], result},
		}
	}
	return result
}
