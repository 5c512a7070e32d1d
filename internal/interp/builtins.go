package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// BuiltinFunc is the shape every entry in Builtins has. It receives the
// call's unevaluated actual-parameter expressions and the environment they
// should be evaluated in, not pre-computed Values — this is what lets `if`,
// `and`, and `or` short-circuit rather than evaluating every argument before
// deciding anything, mirroring predefined/_base.py's BuiltInProc._interpret
// taking actual_params (AST nodes) rather than already-visited data.
type BuiltinFunc func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error)

// Builtin pairs an arity contract with its evaluator. Max of nil means
// unbounded, matching BuiltInProc.UPPER = None.
type Builtin struct {
	Min int
	Max *int
	Eval BuiltinFunc
}

// Builtins is the static name -> descriptor registry every builtins_*.go
// file populates via register() in its init(), one concern per file.
var Builtins = map[string]Builtin{}

func register(name string, min int, max *int, fn BuiltinFunc) {
	if _, exists := Builtins[name]; exists {
		panic("interp: duplicate builtin registration for " + name)
	}
	Builtins[name] = Builtin{Min: min, Max: max, Eval: fn}
}

// intp is a convenience for building a *int arity bound inline.
func intp(n int) *int { return &n }

// checkArity turns an out-of-range argument count into the dialect's
// standard diagnostic. Used identically for builtin calls and user/struct
// procedure calls (see interp.go's evalProcCall).
func checkArity(pos diag.Position, name string, min int, max *int, received int) *diag.Error {
	if received < min || (max != nil && received > *max) {
		return diag.IncorrectArgumentCountErr(pos, name, min, max, received)
	}
	return nil
}

// describeValue renders the "found a ..." fragment IncorrectArgumentTypeErr
// and ExpectedAFunction splice into their templates. The original's
// equivalent logic (errors.py's FC_EXPECTED_A_FUNCTION branch and
// predefined/_base.py's ArgumentTypeError translation) is inconsistent
// about value-kind wording across call sites, so this is a single,
// consistent rendering rather than a transcription of either.
func describeValue(v Value) string {
	switch v.(type) {
	case Bool:
		return diag.DescribeBoolean
	case Num:
		return diag.DescribeNumber
	case Str:
		return diag.DescribeString
	case Sym:
		return "found a symbol"
	case Proc:
		return "found a procedure"
	case List:
		return "found a list"
	case *Struct:
		return "found " + v.String()
	case StructType:
		return "found a structure type"
	default:
		return diag.DescribeSomeElse
	}
}

// evalArgs evaluates every actual-parameter expression left to right,
// stopping at the first error. Builtins that don't need short-circuit
// behavior (everything but if/and/or) use this instead of looping by hand.
func evalArgs(it *Interp, env *Env, args []ast.Node) ([]Value, *diag.Error) {
	vals := make([]Value, len(args))
	for i, a := range args {
		v, err := it.eval(a, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// asNum/asBool/asStr/asSym/asList type-assert an already-evaluated Value,
// producing the dialect's standard INCORRECT_ARGUMENT_TYPE diagnostic on
// mismatch. expectedType is the word the message shows ("number", "real",
// "integer", ...); multi/idx control whether "as Nth argument" is appended,
// matching IncorrectArgumentTypeErr's contract.
func asNum(pos diag.Position, name string, v Value, expectedType string, multi bool, idx int) (numeric.Number, *diag.Error) {
	n, ok := v.(Num)
	if !ok {
		return numeric.Number{}, diag.IncorrectArgumentTypeErr(pos, name, expectedType, describeValue(v), multi, idx)
	}
	return n.N, nil
}

func asBool(pos diag.Position, name string, v Value, multi bool, idx int) (bool, *diag.Error) {
	b, ok := v.(Bool)
	if !ok {
		return false, diag.IncorrectArgumentTypeErr(pos, name, "boolean", describeValue(v), multi, idx)
	}
	return bool(b), nil
}

func asStr(pos diag.Position, name string, v Value, multi bool, idx int) (string, *diag.Error) {
	s, ok := v.(Str)
	if !ok {
		return "", diag.IncorrectArgumentTypeErr(pos, name, "string", describeValue(v), multi, idx)
	}
	return string(s), nil
}

func asSym(pos diag.Position, name string, v Value, multi bool, idx int) (string, *diag.Error) {
	s, ok := v.(Sym)
	if !ok {
		return "", diag.IncorrectArgumentTypeErr(pos, name, "symbol", describeValue(v), multi, idx)
	}
	return string(s), nil
}

func asList(pos diag.Position, name string, v Value, multi bool, idx int) (List, *diag.Error) {
	l, ok := v.(List)
	if !ok {
		return nil, diag.IncorrectArgumentTypeErr(pos, name, "list", describeValue(v), multi, idx)
	}
	return l, nil
}

func asProc(pos diag.Position, name string, v Value, multi bool, idx int) (Proc, *diag.Error) {
	p, ok := v.(Proc)
	if !ok {
		return Proc{}, diag.IncorrectArgumentTypeErr(pos, name, "procedure", describeValue(v), multi, idx)
	}
	return p, nil
}

// valueNode wraps an already-computed Value as an ast.Node, so that
// applyProc (used by the higher-order list builtins) can hand a procedure's
// evaluator already-evaluated arguments through the same BuiltinFunc /
// callUserProc machinery that every ordinary call site uses, without a
// second code path for "call this name with these Values".
type valueNode struct {
	ast.Base
	v Value
}

func litNode(v Value) ast.Node { return &valueNode{v: v} }

// applyProc calls the procedure named name — builtin, user-defined, or a
// define-struct pseudo-procedure — with already-evaluated argument values.
// This is how map/filter/foldl/foldr/andmap/ormap (see DESIGN.md) invoke
// the Procedure value their first argument resolves to.
func (it *Interp) applyProc(pos diag.Position, name string, args []Value) (Value, *diag.Error) {
	resolved, err := it.resolveProc(pos, name, it.globals)
	if err != nil {
		return nil, err
	}

	nodes := make([]ast.Node, len(args))
	for i, a := range args {
		nodes[i] = litNode(a)
	}

	if b, ok := Builtins[resolved]; ok {
		if err := checkArity(pos, resolved, b.Min, b.Max, len(args)); err != nil {
			return nil, err
		}
		return b.Eval(it, it.globals, nodes, pos)
	}

	info, ok := it.Procs[resolved]
	if !ok {
		return nil, diag.UsedBeforeDefinitionErr(pos, resolved)
	}

	if op, ok := info.Body.(*ast.StructOp); ok {
		return it.evalStructOpValues(op, info, args, pos)
	}

	upper := len(info.Params)
	if err := checkArity(pos, resolved, len(info.Params), &upper, len(args)); err != nil {
		return nil, err
	}

	return it.callUserProc(resolved, info, args)
}
