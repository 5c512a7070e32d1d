package parser

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/lexer"
)

// parseDefinition implements:
//
//	definition := "(" "define" ( name expr | "(" name param+ ")" expr ) ")"
//
// grounded on parsing.py's constant_assignment/procedure_assignment, with
// the exactly-one-body-expression and no-duplicate-parameter rules (left to
// a later semantic pass in the original) enforced here instead, since
// ast.IdAssign and ast.ProcAssign carry a single Value/Body field rather
// than a raw expression list.
func (p *Parser) parseDefinition() (ast.Node, *diag.Error) {
	open := p.c.Cur()
	p.c.Advance()
	p.c.Advance() // "define"

	if p.c.Is(lexer.LPAREN) {
		return p.parseProcAssign(open.Pos)
	}
	return p.parseIdAssign(open.Pos)
}

func (p *Parser) parseIdAssign(definePos diag.Position) (ast.Node, *diag.Error) {
	nameTok := p.c.Cur()
	if nameTok.Type != lexer.NAME {
		return nil, diag.ExpectedAName(definePos, describeToken(nameTok))
	}
	if IsKeyword(nameTok.Text) {
		return nil, diag.ExpectedAName(definePos, diag.DescribeKeyword)
	}
	p.c.Advance()

	if p.c.Is(lexer.RPAREN) {
		return nil, diag.VarMissingAnExpression(definePos, nameTok.Text)
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := rejectMisplacedKeyword(value); err != nil {
		return nil, err
	}

	extra := 0
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
		extra++
	}
	if extra > 0 {
		return nil, diag.VarExpectedOneExpression(definePos, nameTok.Text, extra)
	}
	p.c.Advance()

	return &ast.IdAssign{Base: ast.Base{Position: definePos}, Name: nameTok.Text, Value: value}, nil
}

func (p *Parser) parseProcAssign(definePos diag.Position) (ast.Node, *diag.Error) {
	p.c.Advance() // the inner "("

	nameTok := p.c.Cur()
	if nameTok.Type != lexer.NAME {
		return nil, diag.ExpectedFunctionName(definePos, describeToken(nameTok))
	}
	if IsKeyword(nameTok.Text) {
		return nil, diag.ExpectedFunctionName(definePos, diag.DescribeKeyword)
	}
	p.c.Advance()

	var params []string
	seen := map[string]bool{}
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		paramTok := p.c.Cur()
		if paramTok.Type != lexer.NAME {
			return nil, diag.ExpectedAVariable(definePos, describeToken(paramTok))
		}
		if IsKeyword(paramTok.Text) {
			return nil, diag.ExpectedAVariable(definePos, diag.DescribeKeyword)
		}
		if seen[paramTok.Text] {
			return nil, diag.DuplicateVariable(definePos, paramTok.Text)
		}
		seen[paramTok.Text] = true
		params = append(params, paramTok.Text)
		p.c.Advance()
	}
	p.c.Advance() // close the formal-parameter list

	if p.c.Is(lexer.RPAREN) {
		return nil, diag.MissingAnExpression(definePos)
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	extra := 0
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
		extra++
	}
	if extra > 0 {
		return nil, diag.ExpectedOneExpression(definePos, extra)
	}
	p.c.Advance()

	return &ast.ProcAssign{Base: ast.Base{Position: definePos}, Name: nameTok.Text, Params: params, Body: body}, nil
}

// rejectMisplacedKeyword catches `(define x cond)`-style misuse, where the
// value position holds a bare reference to a keyword that was clearly meant
// to start a form of its own — grounded on visit_IdAssign's
// exprs[1].value in KEYWORDS branch.
func rejectMisplacedKeyword(value ast.Node) *diag.Error {
	id, ok := value.(*ast.Id)
	if !ok || !IsKeyword(id.Name) {
		return nil
	}
	switch id.Name {
	case "cond":
		return diag.CondExpectedOpenParenthesis(id.Pos())
	case "define":
		return diag.DefineExpectedOpenParenthesis(id.Pos())
	case "define-struct":
		return diag.StructExpectedOpenParenthesis(id.Pos())
	case "else":
		return diag.NotAllowed(id.Pos())
	default:
		return nil
	}
}

// parseStruct implements:
//
//	"(" "define-struct" name "(" name* ")" ")"
//
// grounded on parsing.py's structure_assignment, with field-name validation
// done here rather than deferred to semantics for the same reason as
// parseDefinition.
func (p *Parser) parseStruct() (ast.Node, *diag.Error) {
	open := p.c.Cur()
	p.c.Advance()
	p.c.Advance() // "define-struct"

	nameTok := p.c.Cur()
	if nameTok.Type != lexer.NAME {
		return nil, diag.ExpectedStructureName(open.Pos, describeToken(nameTok))
	}
	if IsKeyword(nameTok.Text) {
		return nil, diag.ExpectedStructureName(open.Pos, diag.DescribeKeyword)
	}
	p.c.Advance()

	if !p.c.Is(lexer.LPAREN) {
		return nil, diag.ExpectedFieldNames(open.Pos, describeToken(p.c.Cur()))
	}
	p.c.Advance()

	var fields []string
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		fieldTok := p.c.Cur()
		if fieldTok.Type != lexer.NAME {
			return nil, diag.ExpectedAField(open.Pos, describeToken(fieldTok))
		}
		if IsKeyword(fieldTok.Text) {
			return nil, diag.ExpectedAField(open.Pos, diag.DescribeKeyword)
		}
		fields = append(fields, fieldTok.Text)
		p.c.Advance()
	}
	p.c.Advance()

	if len(fields) == 0 {
		return nil, diag.ExpectedFieldNames(open.Pos, diag.DescribeNothing)
	}

	extra := 0
	for !p.c.Is(lexer.RPAREN) {
		if p.c.Is(lexer.EOF) {
			return nil, diag.UnexpectedEOF(p.c.Cur().Pos)
		}
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
		extra++
	}
	if extra > 0 {
		return nil, diag.PostFieldNames(open.Pos, extra)
	}
	p.c.Advance()

	return &ast.StructAssign{Base: ast.Base{Position: open.Pos}, Name: nameTok.Text, Fields: fields}, nil
}

// parseCheckExpect implements `check-expect := "(" "check-expect" expr expr
// ")"`, grounded on parsing.py's check_expect, with the exactly-two-
// expressions rule enforced immediately for the same reason as above.
func (p *Parser) parseCheckExpect() (ast.Node, *diag.Error) {
	open := p.c.Cur()
	p.c.Advance()
	p.c.Advance() // "check-expect"

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

	if len(exprs) != 2 {
		return nil, diag.CheckExpectIncorrectArgumentCount(open.Pos, len(exprs))
	}

	return &ast.CheckExpect{Base: ast.Base{Position: open.Pos}, Actual: exprs[0], Expected: exprs[1]}, nil
}
