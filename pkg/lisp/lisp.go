// Package lisp is the public facade over the pipeline: lex, parse, analyze,
// interpret, in that order, each stage short-circuiting the first diagnostic
// the one before it raised. Grounded on pkg/dwscript's (value, error)
// facade shape -- its own source files weren't retrievable from the pack, so
// this is authored fresh from the New()/Compile() idiom its test files show,
// collapsed to a single function since this dialect has no separate
// compile/run split.
package lisp

import (
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/interp"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/parser"
	"github.com/mekolab/lisp-interp/internal/semantic"
)

// TestResult is the outcome of one check-expect statement, rendered for
// display.
type TestResult struct {
	Line     int
	Column   int
	Passed   bool
	Actual   string
	Expected string
}

// Result is everything a source program produces: the printed value of
// every top-level expression, in source order, and the outcome of every
// check-expect, in source order.
type Result struct {
	Outputs []string
	Tests   []TestResult
}

// Interpret runs source through the full pipeline. A failure at any stage
// (bracket pre-analysis, lexing, parsing, semantic analysis, or evaluation)
// is returned as error -- always a *diag.Error, whose Error() renders the
// required "[line:column] message" single line -- and Result is nil.
func Interpret(source string) (*Result, error) {
	l := lexer.New(source)
	tokens, err := l.Tokenize()
	if err != nil {
		return nil, err
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	procs, err := semantic.Analyze(prog)
	if err != nil {
		return nil, err
	}

	it := interp.New(procs)
	runResult, err := it.Run(prog)
	if err != nil {
		return nil, err
	}

	return renderResult(runResult), nil
}

// InterpretWithTrace behaves like Interpret but returns the Interp used to
// run the program, so a caller (cmd/lisp's `run --log-stack` flag) can
// inspect its Stack after the fact.
func InterpretWithTrace(source string, logStack bool) (*Result, *interp.Interp, error) {
	l := lexer.New(source)
	tokens, err := l.Tokenize()
	if err != nil {
		return nil, nil, err
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return nil, nil, err
	}

	procs, err := semantic.Analyze(prog)
	if err != nil {
		return nil, nil, err
	}

	it := interp.New(procs)
	it.LogStack = logStack
	runResult, err := it.Run(prog)
	if err != nil {
		return nil, it, err
	}

	return renderResult(runResult), it, nil
}

func renderResult(r *interp.Result) *Result {
	out := &Result{
		Outputs: make([]string, len(r.Values)),
		Tests:   make([]TestResult, len(r.Checks)),
	}
	for i, v := range r.Values {
		out.Outputs[i] = v.String()
	}
	for i, c := range r.Checks {
		out.Tests[i] = TestResult{
			Line:     c.Pos.Line,
			Column:   c.Pos.Column,
			Passed:   c.Pass,
			Actual:   c.Actual.String(),
			Expected: c.Expected.String(),
		}
	}
	return out
}

// compile-time assurance that diag.Error satisfies error, matching how the
// pipeline stages actually hand failures back.
var _ error = (*diag.Error)(nil)
