package semantic

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// analyzeIdAssign visits a constant definition's value expression before
// registering the constant itself, so a self-reference such as
// (define x x) fails with USED_BEFORE_DEFINITION the same way any other
// unresolved name would, rather than silently resolving to itself. The
// constant is registered as an AmbiguousSymbol per spec.md §4.4, since a
// plain value may later be used as a procedure, e.g. (define f +).
// Grounded on semantics.py's visit_IdAssign; the shape/arity checks that
// method also performs (name is a plain non-keyword identifier, exactly
// one value expression, no misplaced keyword in value position) were moved
// to internal/parser (see DESIGN.md), and duplicate/built-in-shadowing
// detection already ran during Analyze's preprocessing sweep.
func (a *Analyzer) analyzeIdAssign(n *ast.IdAssign) *diag.Error {
	if err := a.analyze(n.Value); err != nil {
		return err
	}
	a.scope.Define(&Symbol{Name: n.Name, Kind: SymAmbiguous})
	return nil
}

// analyzeProcAssign visits a procedure's body in a fresh scope holding its
// formal parameters, each an AmbiguousSymbol since a parameter may itself
// be called, e.g. (define (twice f x) (f (f x))). The procedure symbol
// itself was already registered by Analyze's registerProcsAndStructs pass,
// so mutually recursive top-level procedures resolve regardless of which
// one's body is visited first. Grounded on semantics.py's visit_ProcAssign.
func (a *Analyzer) analyzeProcAssign(n *ast.ProcAssign) *diag.Error {
	procScope := NewScope(n.Name, a.scope.Level+1, a.scope)
	for _, p := range n.Params {
		procScope.Define(&Symbol{Name: p, Kind: SymAmbiguous})
	}

	enclosing := a.scope
	a.scope = procScope
	err := a.analyze(n.Body)
	a.scope = enclosing
	return err
}
