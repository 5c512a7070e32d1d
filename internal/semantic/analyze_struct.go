package semantic

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/interp"
)

// structSynthesizedNames lists the names define-struct binds for a struct
// named n.Name with the given fields: the struct type itself, make-S, S?,
// and one S-field accessor per field (three names plus one per field).
func structSynthesizedNames(n *ast.StructAssign) []string {
	names := make([]string, 0, len(n.Fields)+2)
	names = append(names, n.Name, "make-"+n.Name, n.Name+"?")
	for _, f := range n.Fields {
		names = append(names, n.Name+"-"+f)
	}
	return names
}

// registerStruct synthesizes define-struct's bindings: make-S (builds an
// instance), S? (type-tag predicate), one S-field accessor per field, and
// S itself as an uncallable structure type. Collision checking against
// built-ins and every other top-level name already ran in
// checkDuplicateTopLevelNames, covering all of these names at once, so this
// only has to define them. Grounded on semantics.py's visit_StructAssign.
func (a *Analyzer) registerStruct(n *ast.StructAssign) {
	a.scope.Define(&Symbol{Name: n.Name, Kind: SymStructType})

	makeOp := &ast.StructOp{Base: ast.Base{Position: n.Pos()}, Kind: ast.StructMake, StructName: n.Name}
	a.defineStructProc("make-"+n.Name, n.Fields, makeOp)

	huhOp := &ast.StructOp{Base: ast.Base{Position: n.Pos()}, Kind: ast.StructHuh, StructName: n.Name}
	a.defineStructProc(n.Name+"?", []string{"x"}, huhOp)

	for i, f := range n.Fields {
		getOp := &ast.StructOp{Base: ast.Base{Position: n.Pos()}, Kind: ast.StructGet, StructName: n.Name, FieldIndex: i}
		a.defineStructProc(n.Name+"-"+f, []string{"x"}, getOp)
	}
}

func (a *Analyzer) defineStructProc(name string, params []string, body ast.Node) {
	a.scope.Define(&Symbol{Name: name, Kind: SymProc, Params: params, Body: body})
	a.procs[name] = &interp.ProcInfo{Name: name, Params: params, Body: body}
}
