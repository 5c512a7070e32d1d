package semantic

import (
	"testing"

	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/parser"
)

func analyzeSource(t *testing.T, src string) *diag.Error {
	t.Helper()
	toks, lerr := lexer.New(src).Tokenize()
	if lerr != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", src, lerr)
	}
	prog, perr := parser.Parse(toks)
	if perr != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, perr)
	}
	_, err := Analyze(prog)
	return err
}

func TestAnalyzeValidProgram(t *testing.T) {
	if err := analyzeSource(t, "(define x 5) (+ x 1)"); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
}

func TestAnalyzeUndefinedNameIsError(t *testing.T) {
	if err := analyzeSource(t, "(+ y 1)"); err == nil {
		t.Fatal("Analyze of an undefined reference returned no error")
	}
}

func TestAnalyzeRedefinitionIsError(t *testing.T) {
	if err := analyzeSource(t, "(define x 1) (define x 2)"); err == nil {
		t.Fatal("Analyze of a duplicate top-level name returned no error")
	}
}

func TestAnalyzeShadowingBuiltinIsError(t *testing.T) {
	if err := analyzeSource(t, "(define + 1)"); err == nil {
		t.Fatal("Analyze of a built-in-shadowing name returned no error")
	}
}

func TestAnalyzeExpressionForwardReferencingConstantResolves(t *testing.T) {
	// The constant is declared after the expression that uses it -- valid,
	// since interp.Run evaluates every definition before any expression or
	// check-expect regardless of source order (spec.md §5/§8).
	if err := analyzeSource(t, "tax (define tax 1/10)"); err != nil {
		t.Fatalf("Analyze of an expression forward-referencing a later constant returned error: %v", err)
	}
}

func TestAnalyzeCheckExpectForwardReferencingConstantResolves(t *testing.T) {
	if err := analyzeSource(t, "(check-expect tax 1/10) (define tax 1/10)"); err != nil {
		t.Fatalf("Analyze of a check-expect forward-referencing a later constant returned error: %v", err)
	}
}

func TestAnalyzeConstantForwardReferencingLaterConstantIsStillError(t *testing.T) {
	// Unlike an expression/test, one constant's *value* referencing another
	// constant declared later in the program is still rejected: constants
	// are registered in declaration order as each IdAssign is analyzed.
	if err := analyzeSource(t, "(define a b) (define b 1)"); err == nil {
		t.Fatal("Analyze of a constant referencing a later constant's value returned no error")
	}
}

func TestAnalyzeMutualRecursionResolves(t *testing.T) {
	src := `
		(define (my-even? n) (if (= n 0) #t (my-odd? (- n 1))))
		(define (my-odd? n) (if (= n 0) #f (my-even? (- n 1))))
		(my-even? 10)
	`
	if err := analyzeSource(t, src); err != nil {
		t.Fatalf("Analyze of mutually recursive procedures returned error: %v", err)
	}
}

func TestDuplicateFormalParameterIsError(t *testing.T) {
	// Caught by the parser itself (ast.ProcAssign has no raw-params list to
	// defer the check into), not by the analyzer.
	toks, _ := lexer.New("(define (f x x) x)").Tokenize()
	if _, err := parser.Parse(toks); err == nil {
		t.Fatal("Parse of a duplicate formal parameter returned no error")
	}
}

func TestAnalyzeCondRequiresBooleanAtRuntimeOnlyNotStatically(t *testing.T) {
	// (cond [1 2]) is statically fine (the predicate's type is a runtime
	// concern, per spec.md §4.4); it just must have a well-formed clause.
	if err := analyzeSource(t, "(cond [1 2] [else 3])"); err != nil {
		t.Fatalf("Analyze returned error for a structurally valid cond: %v", err)
	}
}

func TestAnalyzeCondElseNotLastIsError(t *testing.T) {
	if err := analyzeSource(t, "(cond [else 1] [#t 2])"); err == nil {
		t.Fatal("Analyze of an else-not-last cond returned no error")
	}
}

func TestAnalyzeCondMalformedClauseIsError(t *testing.T) {
	if err := analyzeSource(t, "(cond [1 2 3])"); err == nil {
		t.Fatal("Analyze of a three-expression cond clause returned no error")
	}
}

func TestAnalyzeCondEmptyIsError(t *testing.T) {
	if err := analyzeSource(t, "(cond)"); err == nil {
		t.Fatal("Analyze of an empty cond returned no error")
	}
}

func TestAnalyzeStructSynthesizesFiveBindings(t *testing.T) {
	src := "(define-struct p [x y]) (p? (make-p 1 2)) (p-x (make-p 1 2)) (p-y (make-p 1 2))"
	if err := analyzeSource(t, src); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
}

func TestAnalyzeUsingStructTypeAsValueIsError(t *testing.T) {
	if err := analyzeSource(t, "(define-struct p [x]) p"); err == nil {
		t.Fatal("Analyze of a bare struct-type reference returned no error")
	}
}

func TestAnalyzeStructFieldCollisionIsError(t *testing.T) {
	if err := analyzeSource(t, "(define-struct p [x]) (define-struct p [y])"); err == nil {
		t.Fatal("Analyze of a duplicate struct name returned no error")
	}
}

func TestAnalyzeCheckExpectWrongArityIsError(t *testing.T) {
	// The parser itself rejects a non-two-argument check-expect before the
	// analyzer ever sees it; confirm that surfaces as an error through the
	// same Analyze entry point used by the rest of this file.
	_, lerr := lexer.New("(check-expect 1)").Tokenize()
	if lerr != nil {
		t.Fatalf("unexpected lex error: %v", lerr)
	}
	toks, _ := lexer.New("(check-expect 1)").Tokenize()
	if _, err := parser.Parse(toks); err == nil {
		t.Fatal("Parse of a one-argument check-expect returned no error")
	}
}

func TestAnalyzeElseOutsideCondIsError(t *testing.T) {
	// `else` used as an operator outside of cond parses fine as an ordinary
	// ProcCall (the parser only special-cases `else` inside a cond clause),
	// so this is caught by the semantic analyzer's analyzeProcCall, not the
	// parser.
	if err := analyzeSource(t, "(else 1)"); err == nil {
		t.Fatal("Analyze of else used outside cond returned no error")
	}
}
