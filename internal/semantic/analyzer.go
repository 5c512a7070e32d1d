// Package semantic enforces spec.md §4.4's static rules over a parsed
// *ast.Program and annotates each node as it goes (ast.MarkChecked),
// producing the internal/interp.ProcTable the interpreter needs to run the
// program. Grounded on processes/semantics.py's SemanticAnalyzer, with one
// analyze_*.go file per syntax-node family instead of one visit_* method.
package semantic

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/interp"
)

// Analyzer walks a Program once the two preparatory sweeps below have run.
type Analyzer struct {
	scope *Scope
	procs interp.ProcTable
}

// Analyze is internal/semantic's entry point. It runs three passes over
// prog, in order:
//
//  1. checkDuplicateTopLevelNames: a whole-program sweep catching two
//     definitions of the same name anywhere in the program, in either
//     order, and any definition that shadows a built-in. This
//     supplements processes/semantics.py, whose own _Preprocessor only
//     ever preprocesses ProcAssign, so an IdAssign
//     or StructAssign duplicate is otherwise only caught if the sequential
//     walk happens to reach the second one first.
//  2. registerProcsAndStructs: registers every ProcAssign and
//     define-struct pseudo-procedure in the global scope (and in the
//     ProcTable) before any body is analyzed, so mutually referencing
//     top-level procedures resolve regardless of declaration order --
//     matching processes/semantics.py's _Preprocessor for ProcAssign,
//     extended here to struct bindings too since they carry no body to
//     analyze in the first place.
//  3. The sequential walk: definitions first, then expressions, then
//     check-expects, each group in its own source order -- matching
//     interp.Run's own definitions/expressions/tests split (spec.md §4.5,
//     §5's "all definitions are visible to every expression and test
//     regardless of their relative position"). A constant's value
//     expression is still analyzed in declaration order against the other
//     definitions, so a forward reference among constant *values* (one
//     constant's value expression naming a constant defined later) is
//     still rejected by analyzeIdAssign; only expressions and tests get to
//     see every definition regardless of where they appear in the source.
func Analyze(prog *ast.Program) (interp.ProcTable, *diag.Error) {
	builtins := NewScope("builtins", 0, nil)
	for name := range interp.Builtins {
		builtins.Define(&Symbol{Name: name, Kind: SymProc})
	}
	// empty is a built-in value, not a procedure; interp.New binds it in
	// globals, and quoted lists expand to cons chains ending in it.
	builtins.Define(&Symbol{Name: "empty", Kind: SymAmbiguous})

	a := &Analyzer{
		scope: NewScope("global", 1, builtins),
		procs: interp.ProcTable{},
	}

	if err := a.checkDuplicateTopLevelNames(prog); err != nil {
		return nil, err
	}
	if err := a.registerProcsAndStructs(prog); err != nil {
		return nil, err
	}

	defs, exprs, tests := partitionStatements(prog)
	for _, group := range [][]ast.Node{defs, exprs, tests} {
		for _, stmt := range group {
			if err := a.analyze(stmt); err != nil {
				return nil, err
			}
		}
	}

	return a.procs, nil
}

// partitionStatements splits prog's top-level statements into definitions,
// expressions, and check-expects, each retaining its own source order --
// the same split interp.Run performs at evaluation time.
func partitionStatements(prog *ast.Program) (defs, exprs, tests []ast.Node) {
	for _, stmt := range prog.Statements {
		switch stmt.(type) {
		case *ast.IdAssign, *ast.ProcAssign, *ast.StructAssign:
			defs = append(defs, stmt)
		case *ast.CheckExpect:
			tests = append(tests, stmt)
		default:
			exprs = append(exprs, stmt)
		}
	}
	return defs, exprs, tests
}

// checkDuplicateTopLevelNames collects every name a top-level statement
// would define, in source order, and rejects the first collision against
// either a built-in or an earlier top-level definition -- before any of
// those names are actually registered, so the check is independent of
// declaration order.
func (a *Analyzer) checkDuplicateTopLevelNames(prog *ast.Program) *diag.Error {
	seen := map[string]bool{}
	for _, stmt := range prog.Statements {
		for _, name := range definedNames(stmt) {
			if _, ok := a.scope.Enclosing.Lookup(name); ok {
				return diag.BuiltinOrImportedNameErr(stmt.Pos(), name)
			}
			if seen[name] {
				return diag.PreviouslyDefinedNameErr(stmt.Pos(), name)
			}
			seen[name] = true
		}
	}
	return nil
}

// definedNames returns the top-level name(s) stmt would bind, or nil for a
// statement that defines nothing (an expression or a check-expect).
func definedNames(stmt ast.Node) []string {
	switch n := stmt.(type) {
	case *ast.IdAssign:
		return []string{n.Name}
	case *ast.ProcAssign:
		return []string{n.Name}
	case *ast.StructAssign:
		return structSynthesizedNames(n)
	default:
		return nil
	}
}

func (a *Analyzer) registerProcsAndStructs(prog *ast.Program) *diag.Error {
	for _, stmt := range prog.Statements {
		switch n := stmt.(type) {
		case *ast.ProcAssign:
			a.scope.Define(&Symbol{Name: n.Name, Kind: SymProc, Params: n.Params, Body: n.Body})
			a.procs[n.Name] = &interp.ProcInfo{Name: n.Name, Params: n.Params, Body: n.Body}
		case *ast.StructAssign:
			a.registerStruct(n)
		}
	}
	return nil
}

// analyze dispatches on node's concrete type. A node already marked
// checked is skipped, guarding against revisiting a node reachable from
// more than one path.
func (a *Analyzer) analyze(node ast.Node) *diag.Error {
	if node.Checked() {
		return nil
	}

	var err *diag.Error
	switch n := node.(type) {
	case *ast.Bool, *ast.Num, *ast.Str, *ast.Sym:
		err = analyzeLiteral(n)
	case *ast.Id:
		err = a.analyzeID(n)
	case *ast.Cond:
		err = a.analyzeCond(n)
	case *ast.IdAssign:
		err = a.analyzeIdAssign(n)
	case *ast.ProcAssign:
		err = a.analyzeProcAssign(n)
	case *ast.StructAssign:
		// Fully registered by registerProcsAndStructs; nothing left to check.
	case *ast.ProcCall:
		err = a.analyzeProcCall(n)
	case *ast.CheckExpect:
		err = a.analyzeCheckExpect(n)
	default:
		err = diag.Unexpected(node.Pos(), "")
	}

	if err != nil {
		return err
	}
	ast.MarkChecked(node)
	return nil
}
