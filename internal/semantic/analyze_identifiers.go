package semantic

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// analyzeID implements spec.md §4.4's Id rule: the name must resolve
// somewhere on the scope chain; a struct type name used in value position
// is its own diagnostic rather than a generic unresolved-name one.
// Grounded on semantics.py's visit_Id.
func (a *Analyzer) analyzeID(n *ast.Id) *diag.Error {
	sym, ok := a.scope.Lookup(n.Name)
	if !ok {
		return diag.UsedBeforeDefinitionErr(n.Pos(), n.Name)
	}
	if sym.Kind == SymStructType {
		return diag.UsingStructureTypeErr(n.Pos(), n.Name)
	}
	return nil
}
