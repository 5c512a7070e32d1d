package lexer

import (
	"testing"

	"github.com/mekolab/lisp-interp/internal/diag"
)

func tokenize(t *testing.T, input string) []Token {
	t.Helper()
	toks, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", input, err)
	}
	return toks
}

func TestNextToken(t *testing.T) {
	input := `(+ 1 2)`

	tests := []struct {
		expectedType TokenType
		expectedText string
	}{
		{LPAREN, "("},
		{NAME, "+"},
		{INTEGER, "1"},
		{INTEGER, "2"},
		{RPAREN, ")"},
		{EOF, ""},
	}

	toks := tokenize(t, input)
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		if toks[i].Type != tt.expectedType {
			t.Fatalf("tokens[%d] - type wrong. expected=%s, got=%s", i, tt.expectedType, toks[i].Type)
		}
		if toks[i].Text != tt.expectedText {
			t.Fatalf("tokens[%d] - text wrong. expected=%q, got=%q", i, tt.expectedText, toks[i].Text)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"42", INTEGER},
		{"-7", INTEGER},
		{"3.14", DECIMAL},
		{"-0.5", DECIMAL},
		{"1/2", RATIONAL},
		{"-1/2", RATIONAL},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != tt.typ {
			t.Errorf("Tokenize(%q)[0].Type = %s, want %s", tt.input, toks[0].Type, tt.typ)
		}
	}
}

func TestNegativeDenominatorRationalIsBadSyntax(t *testing.T) {
	_, err := New("1/-2").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"1/-2\") returned no error, want RSBadSyntax")
	}
	if err.Code != diag.RSBadSyntax {
		t.Fatalf("Tokenize(\"1/-2\") error code = %v, want RSBadSyntax", err.Code)
	}
}

func TestZeroDenominatorRationalIsDivisionByZero(t *testing.T) {
	_, err := New("3/0").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"3/0\") returned no error, want DivisionByZero")
	}
	if err.Code != diag.DivisionByZero {
		t.Fatalf("Tokenize(\"3/0\") error code = %v, want DivisionByZero", err.Code)
	}
}

func TestBooleans(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#t", true}, {"#T", true}, {"#true", true},
		{"#f", false}, {"#F", false}, {"#false", false},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != BOOLEAN {
			t.Fatalf("Tokenize(%q)[0].Type = %s, want BOOLEAN", tt.input, toks[0].Type)
		}
		if toks[0].Bool != tt.want {
			t.Errorf("Tokenize(%q)[0].Bool = %v, want %v", tt.input, toks[0].Bool, tt.want)
		}
	}
}

func TestBadBooleanSpelling(t *testing.T) {
	_, err := New("#tr").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"#tr\") returned no error")
	}
}

func TestStringLiteral(t *testing.T) {
	toks := tokenize(t, `"hello world"`)
	if toks[0].Type != STRING || toks[0].Text != "hello world" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	_, err := New(`"hello`).Tokenize()
	if err == nil {
		t.Fatal("Tokenize of unterminated string returned no error")
	}
}

func TestQuotedSymbol(t *testing.T) {
	toks := tokenize(t, "'foo")
	if toks[0].Type != SYMBOL || toks[0].Text != "'foo" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestQuotedListAbbrev(t *testing.T) {
	toks := tokenize(t, "'(1 2 3)")
	if toks[0].Type != LISTABBREV {
		t.Fatalf("Tokenize(\"'(1 2 3)\")[0].Type = %s, want LIST_ABBREV", toks[0].Type)
	}
	if len(toks[0].Children) != 5 { // ( 1 2 3 )
		t.Fatalf("Children = %d tokens, want 5: %v", len(toks[0].Children), toks[0].Children)
	}
}

func TestNestedQuoteNotImplemented(t *testing.T) {
	_, err := New("''x").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"''x\") returned no error, want FeatureNotImplemented")
	}
}

func TestLineComment(t *testing.T) {
	toks := tokenize(t, "1 ; a comment\n2")
	if len(toks) != 3 { // 1, 2, EOF
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
}

func TestBlockComment(t *testing.T) {
	toks := tokenize(t, "1 #| skip this |# 2")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	_, err := New("#| never closes").Tokenize()
	if err == nil {
		t.Fatal("Tokenize of unterminated block comment returned no error")
	}
}

func TestDatumComment(t *testing.T) {
	toks := tokenize(t, "(+ 1 #;2 3)")
	want := []TokenType{LPAREN, NAME, INTEGER, INTEGER, RPAREN, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("tokens[%d].Type = %s, want %s", i, toks[i].Type, w)
		}
	}
	if toks[2].Text != "1" || toks[3].Text != "3" {
		t.Errorf("datum comment did not skip the right token: %v", toks)
	}
}

func TestDatumCommentOverParenthesizedForm(t *testing.T) {
	toks := tokenize(t, "(+ 1 #;(foo bar) 3)")
	want := []TokenType{LPAREN, NAME, INTEGER, INTEGER, RPAREN, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
}

func TestIdentifiersStartingWithMinusOrDot(t *testing.T) {
	toks := tokenize(t, "-foo .bar")
	if toks[0].Type != NAME || toks[0].Text != "-foo" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Type != NAME || toks[1].Text != ".bar" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestBracketGlyphsPreserved(t *testing.T) {
	toks := tokenize(t, "[a] {b}")
	if toks[0].Glyph != "[" || toks[2].Glyph != "]" {
		t.Fatalf("glyphs not preserved: %+v %+v", toks[0], toks[2])
	}
	if toks[3].Glyph != "{" || toks[5].Glyph != "}" {
		t.Fatalf("glyphs not preserved: %+v %+v", toks[3], toks[5])
	}
}

func TestUnbalancedBracketsReported(t *testing.T) {
	_, err := New("(+ 1 2]").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"(+ 1 2]\") returned no error, want incorrect closing bracket")
	}
}

func TestUnclosedBracketAtEOF(t *testing.T) {
	_, err := New("(+ 1 2").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"(+ 1 2\") returned no error, want expected closing bracket")
	}
}

func TestUnexpectedClosingBracket(t *testing.T) {
	_, err := New(")").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\")\") returned no error, want unexpected closing bracket")
	}
}

func TestVerticalBarNotImplemented(t *testing.T) {
	_, err := New("|foo|").Tokenize()
	if err == nil {
		t.Fatal("Tokenize(\"|foo|\") returned no error, want feature-not-implemented")
	}
}

func TestBOMIsStripped(t *testing.T) {
	toks := tokenize(t, "\xEF\xBB\xBF(+ 1 2)")
	if toks[0].Type != LPAREN {
		t.Fatalf("leading BOM not stripped: %+v", toks[0])
	}
}
