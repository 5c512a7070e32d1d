// Package lexer turns Lisp source text into a token stream, verifying as it
// goes that every bracket pair is balanced and correctly nested.
package lexer

import (
	"fmt"
	"math/big"

	"github.com/mekolab/lisp-interp/internal/diag"
)

// Position identifies a location in source text. It is a direct alias of
// diag.Position so every stage reports positions in the same currency
// without internal/diag depending back on internal/lexer.
type Position = diag.Position

// TokenType classifies a Token.
type TokenType int

const (
	// ILLEGAL marks a token the lexer could not classify.
	ILLEGAL TokenType = iota
	EOF

	LPAREN
	RPAREN

	BOOLEAN
	INTEGER
	RATIONAL
	DECIMAL
	STRING
	SYMBOL
	LISTABBREV
	NAME
	INVALID
)

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	BOOLEAN:    "BOOLEAN",
	INTEGER:    "INTEGER",
	RATIONAL:   "RATIONAL",
	DECIMAL:    "DECIMAL",
	STRING:     "STRING",
	SYMBOL:     "SYMBOL",
	LISTABBREV: "LIST_ABBREV",
	NAME:       "NAME",
	INVALID:    "INVALID",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Rational is the unreduced numerator/denominator pair a RATIONAL token
// carries; the lexer never reduces it — reduction is the numeric tower's job.
type Rational struct {
	Num *big.Int
	Den *big.Int
}

// Token is a single lexical unit. Payload fields are populated according to
// Type: Bool for BOOLEAN, Int for INTEGER, Rat for RATIONAL, Dec for DECIMAL,
// Text for STRING/SYMBOL/NAME, Children for LIST_ABBREV (the tokens between
// the abbreviation's opening and closing bracket, inclusive).
type Token struct {
	Type     TokenType
	Text     string
	Bool     bool
	Int      *big.Int
	Rat      Rational
	Dec      float64
	Children []Token
	Pos      Position
	// Glyph preserves the original bracket character for LPAREN/RPAREN
	// tokens ("(", "[", or "{"); the parser only cares about Type, but
	// diagnostics want the glyph the user actually typed.
	Glyph string
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q %s>", t.Type, t.Text, t.Pos)
}
