// Package ast defines the syntax tree produced by internal/parser,
// annotated in place by internal/semantic, and walked by internal/interp.
package ast

import (
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Position is shared across every compiler stage; see internal/diag.
type Position = diag.Position

// Node is any syntax tree element. Every concrete node embeds Base, which
// carries the origin token's position and the "passed semantic analysis"
// flag the analyzer sets once it has finished validating the node, so a
// node reachable from more than one path is never re-checked.
type Node interface {
	Pos() Position
	Checked() bool
	markChecked()
}

// Base is embedded by every node and implements the bookkeeping half of
// Node.
type Base struct {
	Position Position
	checked  bool
}

func (b *Base) Pos() Position    { return b.Position }
func (b *Base) Checked() bool    { return b.checked }
func (b *Base) markChecked()     { b.checked = true }

// MarkChecked flags n as having passed semantic analysis. Exported as a
// function (rather than requiring every node to expose its own setter)
// since only the analyzer package ever calls it.
func MarkChecked(n Node) { n.markChecked() }

// --- literals ---

type Bool struct {
	Base
	Value bool
}

type Num struct {
	Base
	Value numeric.Number
}

type Str struct {
	Base
	Value string
}

// Sym is a quoted symbol literal, e.g. 'foo. Value excludes the leading
// apostrophe.
type Sym struct {
	Base
	Value string
}

// Id is a bare name reference, resolved against the scope chain during
// semantic analysis and looked up in the activation-record chain at
// runtime.
type Id struct {
	Base
	Name string
}

// --- cond ---

type CondBranch struct {
	Base
	// Exprs holds the clause's raw expression list as parsed; Predicate and
	// Body are populated by the semantic analyzer once it has confirmed the
	// clause has exactly two expressions.
	Exprs     []Node
	Predicate Node
	Body      Node
}

type CondElse struct {
	Base
	Exprs []Node
	Body  Node
}

type Cond struct {
	Base
	Branches []*CondBranch
	Else     *CondElse // nil if the cond has no else clause
}

// --- definitions ---

type IdAssign struct {
	Base
	Name  string
	Value Node
}

type ProcAssign struct {
	Base
	Name   string
	Params []string
	Body   Node
}

type ProcCall struct {
	Base
	Operator Node
	Args     []Node
}

type StructAssign struct {
	Base
	Name   string
	Fields []string
}

// StructOpKind distinguishes the three pseudo-procedures define-struct
// synthesizes.
type StructOpKind int

const (
	StructMake StructOpKind = iota
	StructHuh
	StructGet
)

// StructOp is the synthesized body of a struct pseudo-procedure: make-S,
// S?, or S-field. FieldIndex is only meaningful when Kind is StructGet.
type StructOp struct {
	Base
	Kind       StructOpKind
	StructName string
	FieldIndex int
}

// --- check-expect ---

type CheckExpect struct {
	Base
	Actual   Node
	Expected Node
}

// --- program ---

type Program struct {
	Base
	Statements []Node
}
