package semantic

import "github.com/mekolab/lisp-interp/internal/ast"

// SymbolKind distinguishes what a name bound in a Scope actually denotes.
// Grounded on classes/symbols.py's Symbol subclass hierarchy (plain Symbol,
// AmbiguousSymbol, ProcSymbol, StructTypeSymbol), collapsed here into one
// tagged struct instead of four Go types since nothing in this analyzer
// needs virtual dispatch on a symbol.
type SymbolKind int

const (
	// SymAmbiguous is "either a procedure or data" (classes/symbols.py's own
	// phrase): a plain value binding, including a formal parameter, that
	// might later be called as a procedure, e.g. (define f +).
	SymAmbiguous SymbolKind = iota
	// SymProc is a procedure: a user ProcAssign, a define-struct
	// pseudo-procedure, or a built-in.
	SymProc
	// SymStructType is a structure type name; uncallable, and using it
	// where a value is expected is its own diagnostic (USING_STRUCTURE_TYPE).
	SymStructType
)

// Symbol is one entry in a Scope.
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Params []string // SymProc only
	Body   ast.Node // SymProc only: the body expression, or an *ast.StructOp
}
