package parser

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/lexer"
)

// parseCond implements `cond := LPAREN "cond" cond-clause* RPAREN`, grounded
// on parsing.py's cond(): it buffers every clause and then reclassifies a
// trailing clause whose first expression is the bare identifier `else` into
// the else-branch. Unlike the original, it does not go on to validate clause
// arity or a misplaced `else` — internal/ast.CondBranch keeps its raw Exprs
// precisely so internal/semantic's analyze_cond.go can do that (see
// internal/ast's doc comment on CondBranch).
func (p *Parser) parseCond() (ast.Node, *diag.Error) {
	open := p.c.Cur()
	p.c.Advance()
	p.c.Advance() // the "cond" name itself, already matched by the caller

	var branches []*ast.CondBranch
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		if !p.c.Is(lexer.LPAREN) {
			// internal/ast.Cond.Branches only holds well-formed clauses, so a
			// bare expression where a clause is expected (unlike the
			// original, which defers this to semantics) is reported here.
			return nil, diag.ExpectedQuestionAnswerClause(p.c.Cur().Pos, describeToken(p.c.Cur()))
		}
		branch, err := p.parseCondBranch()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	p.c.Advance()

	var elseBranch *ast.CondElse
	if n := len(branches); n > 0 {
		last := branches[n-1]
		if len(last.Exprs) > 0 {
			if id, ok := last.Exprs[0].(*ast.Id); ok && id.Name == "else" {
				branches = branches[:n-1]
				elseBranch = &ast.CondElse{Base: last.Base, Exprs: last.Exprs[1:]}
			}
		}
	}

	return &ast.Cond{Base: ast.Base{Position: open.Pos}, Branches: branches, Else: elseBranch}, nil
}

// parseCondBranch implements `cond-clause := LPAREN expr* RPAREN`, keeping
// the clause's expressions unexamined.
func (p *Parser) parseCondBranch() (*ast.CondBranch, *diag.Error) {
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

	return &ast.CondBranch{Base: ast.Base{Position: open.Pos}, Exprs: exprs}, nil
}
