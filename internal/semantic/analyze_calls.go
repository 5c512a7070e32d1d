package semantic

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// analyzeProcCall implements spec.md §4.4's ProcCall rule. A definition
// keyword reaching here as an operator means internal/parser saw it in
// expression position rather than at the top of a statement (parseExpr
// never special-cases define/define-struct/else the way it special-cases
// cond, so they fall through to an ordinary ProcCall) -- this is the one
// place that can report "found a definition that is not at the top level".
// Grounded on semantics.py's visit_ProcCall.
func (a *Analyzer) analyzeProcCall(n *ast.ProcCall) *diag.Error {
	opID, ok := n.Operator.(*ast.Id)
	if !ok {
		return diag.ExpectedAFunction(n.Pos(), diag.DescribeSomeElse)
	}

	switch opID.Name {
	case "define":
		return diag.DefineNotTopLevel(opID.Pos())
	case "define-struct":
		return diag.StructNotTopLevel(opID.Pos())
	case "else":
		return diag.NotAllowed(opID.Pos())
	}

	if _, ok := a.scope.Lookup(opID.Name); !ok {
		return diag.UsedBeforeDefinitionErr(n.Pos(), opID.Name)
	}

	for _, arg := range n.Args {
		if err := a.analyze(arg); err != nil {
			return err
		}
	}
	return nil
}
