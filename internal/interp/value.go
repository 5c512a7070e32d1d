// Package interp evaluates a semantically analyzed Program, walking the
// tree the way processes/interpreting.py's Interpreter does: literals
// produce themselves, definitions bind into the current activation record,
// and procedure calls dispatch to either a builtin or a user-defined body.
package interp

import (
	"fmt"
	"strings"

	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Value is anything the interpreter can produce or pass around. Every
// concrete value type below is comparable with == except List (compared
// with Equal, since a Go slice can't be a map key or appear on either side
// of ==).
type Value interface {
	fmt.Stringer
	isValue()
}

// Bool is a boolean value, printed per spec.md §6 as #t / #f.
type Bool bool

func (Bool) isValue() {}
func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Num wraps the numeric tower.
type Num struct{ N numeric.Number }

func (Num) isValue()         {}
func (n Num) String() string { return n.N.String() }

// Str is a string value. Printed representation quotes and escapes the
// content, matching how the dialect's REPL echoes a string result; the
// unquoted text is available for builtins that operate on string contents.
type Str string

func (Str) isValue() {}
func (s Str) String() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range string(s) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Sym is a quoted symbol value. The leading apostrophe is part of the
// dialect's printed form but not of the name itself.
type Sym string

func (Sym) isValue()         {}
func (s Sym) String() string { return "'" + string(s) }

// Proc is a procedure value: `(define f +)` binds f to Proc{"+"}, and
// calling f re-resolves through Name, exactly like define-struct's
// synthesized accessors and the language's built-ins. Identity, not body,
// is what a Proc carries — its behavior is looked up by Name each time it's
// invoked, mirroring classes/data.py's Procedure class.
type Proc struct{ Name string }

func (Proc) isValue()         {}
func (p Proc) String() string { return "#<procedure:" + p.Name + ">" }

// List is a fixed-size sequence of values (Racket's mutable Python-list
// based List class in this dialect, not a cons-pair chain).
type List []Value

func (List) isValue() {}
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "'(" + strings.Join(parts, " ") + ")"
}

// Equal reports structural equality, used by member and by check-expect's
// pass/fail test (`=` compares numbers through numeric.Equal instead).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Num:
		bv, ok := b.(Num)
		return ok && numeric.Equal(av.N, bv.N)
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Sym:
		bv, ok := b.(Sym)
		return ok && av == bv
	case Proc:
		bv, ok := b.(Proc)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Struct:
		bv, ok := b.(*Struct)
		if !ok || av.Type != bv.Type || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if !Equal(av.Fields[i], bv.Fields[i]) {
				return false
			}
		}
		return true
	case StructType:
		bv, ok := b.(StructType)
		return ok && av == bv
	default:
		return false
	}
}

// Struct is an instance produced by a define-struct's make-S constructor.
type Struct struct {
	Type   string
	Fields []Value
}

func (*Struct) isValue() {}

// String renders the fieldless form spec.md §6 requires
// (`#<STRUCTNAME>`); the original's StructDataFactory.create attaches the
// same `__str__` to every synthesized struct type, independent of arity.
func (s *Struct) String() string {
	return "#<" + s.Type + ">"
}

// StructType is what a bare reference to a define-struct's type name
// evaluates to; a Program that tries to use it as a value (rather than
// calling make-S/S?/S-field) gets the USING_STRUCTURE_TYPE diagnostic.
type StructType struct{ Name string }

func (StructType) isValue()         {}
func (s StructType) String() string { return "#<struct-type:" + s.Name + ">" }
