package parser

import (
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/lexer"
)

// keywords are the five reserved names that route to a special form instead
// of an ordinary ProcCall, transcribed from classes/tokens.py's Keyword enum.
var keywords = map[string]bool{
	"cond":          true,
	"define":        true,
	"define-struct": true,
	"else":          true,
	"check-expect":  true,
}

// IsKeyword reports whether name is one of the dialect's reserved words.
// internal/semantic uses this too, when a bare identifier turns out to name
// a keyword in a position that requires an ordinary name.
func IsKeyword(name string) bool { return keywords[name] }

func unexpectedTokenErr(tok lexer.Token) *diag.Error {
	if tok.Type == lexer.EOF {
		return diag.UnexpectedEOF(tok.Pos)
	}
	return diag.UnexpectedToken(tok.Pos, tok.Text)
}

// describeToken renders the "found ..." fragment many of the define/cond/
// define-struct diagnostics need, following errors.py's D_EXPECTED_A_NAME
// branch (RPAREN/EOF -> nothing's there, DECIMAL/INTEGER/RATIONAL -> number,
// BOOLEAN -> boolean, STRING -> string, keyword name -> keyword) and
// extending it to the remaining token kinds that branch never has to
// describe because they can't reach it there.
func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF, lexer.RPAREN:
		return diag.DescribeNothing
	case lexer.BOOLEAN:
		return diag.DescribeBoolean
	case lexer.INTEGER, lexer.RATIONAL, lexer.DECIMAL:
		return diag.DescribeNumber
	case lexer.STRING:
		return diag.DescribeString
	case lexer.SYMBOL, lexer.LISTABBREV:
		return diag.DescribePart
	case lexer.NAME:
		if IsKeyword(tok.Text) {
			return diag.DescribeKeyword
		}
		return diag.DescribePart
	default:
		return diag.DescribeSomeElse
	}
}
