package lisp_test

import (
	"testing"

	"github.com/mekolab/lisp-interp/pkg/lisp"
)

// Scenarios transcribed from spec.md's §8 "Concrete end-to-end scenarios".
func TestInterpret_scenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"arithmetic", "(+ 1 2 3)", []string{"6"}},
		{
			"factorial via tail if",
			"(define (f n) (if (= n 0) 1 (* n (f (- n 1))))) (f 10)",
			[]string{"3628800"},
		},
		{
			"struct accessor",
			"(define-struct p [x y]) (p-x (make-p 3 4))",
			[]string{"3"},
		},
		{"cond with else", "(cond [#f 1] [else 2])", []string{"2"}},
		{"rational addition", "(+ 1/2 1/2)", []string{"1"}},
		{"rational multiplication", "(* 1/2 1/2)", []string{"1/4"}},
		{"exact to inexact", "(exact->inexact 1/2)", []string{"0.5"}},
		{"cross-exactness equality", "(= 1 1.0)", []string{"#t"}},
		{
			"tail-recursive accumulator",
			"(define (sum n a) (if (= n 0) a (sum (- n 1) (+ a n)))) (sum 100000 0)",
			[]string{"5000050000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lisp.Interpret(tt.source)
			if err != nil {
				t.Fatalf("Interpret(%q) returned error: %v", tt.source, err)
			}
			if len(got.Outputs) != len(tt.want) {
				t.Fatalf("Outputs = %v, want %v", got.Outputs, tt.want)
			}
			for i, v := range tt.want {
				if got.Outputs[i] != v {
					t.Errorf("Outputs[%d] = %q, want %q", i, got.Outputs[i], v)
				}
			}
		})
	}
}

func TestInterpret_checkExpect(t *testing.T) {
	got, err := lisp.Interpret("(check-expect (+ 1 1) 2) (check-expect (+ 1 1) 3)")
	if err != nil {
		t.Fatalf("Interpret returned error: %v", err)
	}
	if len(got.Tests) != 2 {
		t.Fatalf("Tests = %v, want 2 entries", got.Tests)
	}
	if !got.Tests[0].Passed {
		t.Errorf("Tests[0].Passed = false, want true")
	}
	if got.Tests[1].Passed {
		t.Errorf("Tests[1].Passed = true, want false")
	}
}

func TestInterpret_errorPropagation(t *testing.T) {
	_, err := lisp.Interpret("(cond [#f 1])")
	if err == nil {
		t.Fatal("Interpret returned nil error for an all-false cond")
	}
}

func TestInterpretWithTrace_stackDepth(t *testing.T) {
	source := "(define (f n) (if (= n 0) 0 (+ 1 (f (- n 1))))) (f 5)"
	got, it, err := lisp.InterpretWithTrace(source, true)
	if err != nil {
		t.Fatalf("InterpretWithTrace returned error: %v", err)
	}
	if got.Outputs[0] != "5" {
		t.Fatalf("Outputs[0] = %q, want %q", got.Outputs[0], "5")
	}
	// f is not in tail position here (wrapped in (+ 1 ...)), so by the time
	// Run returns, every frame has already been popped.
	if it.Stack.Depth() != 0 {
		t.Errorf("Stack.Depth() = %d, want 0 after completion", it.Stack.Depth())
	}
}
