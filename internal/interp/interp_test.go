package interp_test

import (
	"testing"

	"github.com/mekolab/lisp-interp/internal/interp"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/parser"
	"github.com/mekolab/lisp-interp/internal/semantic"
)

// run parses, analyzes, and executes src, failing the test on any pipeline
// error.
func run(t *testing.T, src string) *interp.Result {
	t.Helper()
	toks, lerr := lexer.New(src).Tokenize()
	if lerr != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", src, lerr)
	}
	prog, perr := parser.Parse(toks)
	if perr != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, perr)
	}
	procs, aerr := semantic.Analyze(prog)
	if aerr != nil {
		t.Fatalf("Analyze(%q) returned error: %v", src, aerr)
	}
	it := interp.New(procs)
	res, rerr := it.Run(prog)
	if rerr != nil {
		t.Fatalf("Run(%q) returned error: %v", src, rerr)
	}
	return res
}

func runErr(t *testing.T, src string) {
	t.Helper()
	toks, lerr := lexer.New(src).Tokenize()
	if lerr != nil {
		return
	}
	prog, perr := parser.Parse(toks)
	if perr != nil {
		return
	}
	procs, aerr := semantic.Analyze(prog)
	if aerr != nil {
		return
	}
	it := interp.New(procs)
	if _, rerr := it.Run(prog); rerr != nil {
		return
	}
	t.Fatalf("expected an error somewhere in the pipeline for %q, got none", src)
}

func TestBoolPrintedShortForm(t *testing.T) {
	res := run(t, "#t #f")
	if res.Values[0].String() != "#t" {
		t.Errorf("#t printed as %q, want #t", res.Values[0].String())
	}
	if res.Values[1].String() != "#f" {
		t.Errorf("#f printed as %q, want #f", res.Values[1].String())
	}
}

func TestArithmeticAndComparison(t *testing.T) {
	res := run(t, "(+ 1 2 3) (* 2 0 5) (< 1 2 3) (<= 1 1 2) (> 3 2 1)")
	want := []string{"6", "0", "#t", "#t", "#t"}
	for i, w := range want {
		if got := res.Values[i].String(); got != w {
			t.Errorf("Values[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestIfShortCircuit(t *testing.T) {
	// The unchosen branch must never be evaluated: were it, this would raise
	// a division-by-zero instead of returning 1.
	res := run(t, "(if #t 1 (/ 1 0))")
	if res.Values[0].String() != "1" {
		t.Errorf("Values[0] = %q, want 1", res.Values[0].String())
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	res := run(t, "(and #f (/ 1 0)) (or #t (/ 1 0))")
	if res.Values[0].String() != "#f" {
		t.Errorf("(and #f ...) = %q, want #f", res.Values[0].String())
	}
	if res.Values[1].String() != "#t" {
		t.Errorf("(or #t ...) = %q, want #t", res.Values[1].String())
	}
}

func TestConsAndListOperations(t *testing.T) {
	res := run(t, "(cons 1 (cons 2 empty)) (first (cons 1 empty)) (length (cons 1 (cons 2 empty)))")
	if res.Values[0].String() != "'(1 2)" {
		t.Errorf("cons chain = %q, want '(1 2)", res.Values[0].String())
	}
	if res.Values[1].String() != "1" {
		t.Errorf("first = %q, want 1", res.Values[1].String())
	}
	if res.Values[2].String() != "2" {
		t.Errorf("length = %q, want 2", res.Values[2].String())
	}
}

func TestQuotedListPrinting(t *testing.T) {
	res := run(t, "'(1 2 3) '()")
	if res.Values[0].String() != "'(1 2 3)" {
		t.Errorf("'(1 2 3) = %q", res.Values[0].String())
	}
	if res.Values[1].String() != "'()" {
		t.Errorf("'() = %q, want '()", res.Values[1].String())
	}
}

func TestStructConstructorPredicateAccessor(t *testing.T) {
	res := run(t, `
		(define-struct posn [x y])
		(posn? (make-posn 3 4))
		(posn? 5)
		(posn-x (make-posn 3 4))
		(posn-y (make-posn 3 4))
	`)
	want := []string{"#t", "#f", "3", "4"}
	for i, w := range want {
		if got := res.Values[i].String(); got != w {
			t.Errorf("Values[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestStructInstancePrintsFieldless(t *testing.T) {
	res := run(t, "(define-struct posn [x y]) (make-posn 3 4)")
	if res.Values[0].String() != "#<posn>" {
		t.Errorf("struct instance printed as %q, want #<posn>", res.Values[0].String())
	}
}

func TestProcedureAliasing(t *testing.T) {
	res := run(t, "(define f +) (f 1 2 3)")
	if res.Values[0].String() != "6" {
		t.Errorf("(define f +) (f 1 2 3) = %q, want 6", res.Values[0].String())
	}
}

func TestCallingNonProcedureIsError(t *testing.T) {
	runErr(t, "(define x 5) (x 1 2)")
}

func TestTailRecursionDoesNotGrowGoStack(t *testing.T) {
	// A large enough n that an O(stack-depth) implementation would blow the
	// Go stack/recursion budget long before finishing; the trampoline should
	// complete in O(1) frames.
	res := run(t, "(define (sum n a) (if (= n 0) a (sum (- n 1) (+ a n)))) (sum 100000 0)")
	if res.Values[0].String() != "5000050000" {
		t.Errorf("tail-recursive sum = %q, want 5000050000", res.Values[0].String())
	}
}

func TestMutualRecursionStillWorks(t *testing.T) {
	// Mutual recursion is not tail-call eliminated (spec.md Non-goals), but
	// it must still evaluate correctly for an input that doesn't overflow
	// the real Go stack.
	res := run(t, `
		(define (my-even? n) (if (= n 0) #t (my-odd? (- n 1))))
		(define (my-odd? n) (if (= n 0) #f (my-even? (- n 1))))
		(my-even? 200)
	`)
	if res.Values[0].String() != "#t" {
		t.Errorf("my-even? 200 = %q, want #t", res.Values[0].String())
	}
}

func TestCheckExpectPassAndFail(t *testing.T) {
	res := run(t, "(check-expect (+ 1 1) 2) (check-expect (+ 1 1) 3)")
	if !res.Checks[0].Pass {
		t.Error("Checks[0].Pass = false, want true")
	}
	if res.Checks[1].Pass {
		t.Error("Checks[1].Pass = true, want false")
	}
}

func TestCondQuestionResultNotBooleanIsError(t *testing.T) {
	runErr(t, "(cond [1 2])")
}

func TestDivisionByZeroIsError(t *testing.T) {
	runErr(t, "(/ 1 0)")
}

func TestDefinitionsVisibleRegardlessOfSourceOrder(t *testing.T) {
	// spec.md §5's ordering invariant: definitions run before expressions
	// and tests, so a forward reference among top-level statements resolves.
	res := run(t, "(f 1) (define (f n) (+ n 1))")
	if res.Values[0].String() != "2" {
		t.Errorf("Values[0] = %q, want 2", res.Values[0].String())
	}
}

func TestOutputsPreserveSourceOrderOfExpressionsOnly(t *testing.T) {
	res := run(t, "(define x 1) 10 (check-expect 1 1) 20 (define y 2) 30")
	want := []string{"10", "20", "30"}
	if len(res.Values) != len(want) {
		t.Fatalf("Values = %v, want %v", res.Values, want)
	}
	for i, w := range want {
		if res.Values[i].String() != w {
			t.Errorf("Values[%d] = %q, want %q", i, res.Values[i].String(), w)
		}
	}
}
