package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/errors"
)

// ProcInfo is everything the interpreter needs to invoke a procedure once
// internal/semantic has resolved it: its formal parameter names and its
// body. Body is an *ast.StructOp for one of define-struct's synthesized
// pseudo-procedures (make-S, S?, S-field); for every other procedure it is
// the parsed body expression.
type ProcInfo struct {
	Name   string
	Params []string
	Body   ast.Node
}

// ProcTable maps every non-builtin procedure name (user-defined or
// define-struct synthesized) to its ProcInfo. internal/semantic builds this
// while analyzing a Program; Run consumes it.
type ProcTable map[string]*ProcInfo

// CheckResult is the outcome of one check-expect statement.
type CheckResult struct {
	Pos      diag.Position
	Pass     bool
	Actual   Value
	Expected Value
}

// Result is everything a Program run produces: one Value per top-level
// expression statement (in source order), and one CheckResult per
// check-expect statement.
type Result struct {
	Values []Value
	Checks []CheckResult
}

// tailCtx identifies the procedure whose body is currently being evaluated
// in tail position, so a direct self-call through `if`'s chosen branch can
// be trampolined instead of growing the Go call stack. Only `if` ever
// preserves tail position into its branches — cond and every other form
// evaluates its sub-expressions as ordinary (non-tail) calls, matching the
// dialect's narrow "self-recursion through if" guarantee.
type tailCtx struct {
	Name   string
	Params []string
}

// tailCall is the trampoline sentinel: instead of recursing, a tail-position
// self-call returns the new argument values for callUserProc's loop to
// rebind and continue with.
type tailCall struct {
	args []Value
}

// Interp walks an analyzed Program. Procs and globals are both populated
// before any statement runs: every builtin and every user/struct procedure
// name is bound in globals to Proc{Name: itself}, so a name used as an
// operator resolves the same way whether it's a builtin, a user procedure,
// or a local parameter that happens to hold a procedure value.
type Interp struct {
	Procs   ProcTable
	globals *Env

	// LogStack, when true, makes callUserProc maintain Stack across nested
	// and trampolined calls, for cmd/lisp's --log-stack flag. Left false
	// (the default), no frame bookkeeping happens at all.
	LogStack bool
	Stack    errors.StackTrace
}

// New returns an Interp with every builtin and every entry in procs already
// bound in the global frame.
func New(procs ProcTable) *Interp {
	it := &Interp{Procs: procs, globals: NewGlobalEnv(), Stack: errors.NewStackTrace()}
	for name := range Builtins {
		it.globals.Define(name, Proc{Name: name})
	}
	for name := range procs {
		it.globals.Define(name, Proc{Name: name})
	}
	// empty is a value (the empty List), not a callable procedure —
	// original_source never registers a builtin for it either.
	it.globals.Define("empty", List{})
	return it
}

// Run executes every statement of prog in source order, definitions first
// (as parsed — internal/semantic has already verified every definition
// precedes its first use within this ordering), then expressions, then
// check-expect tests, matching processes/interpreting.py's
// _sort_program_statements split.
func (it *Interp) Run(prog *ast.Program) (*Result, *diag.Error) {
	var defs, exprs, tests []ast.Node
	for _, s := range prog.Statements {
		switch s.(type) {
		case *ast.IdAssign, *ast.ProcAssign, *ast.StructAssign:
			defs = append(defs, s)
		case *ast.CheckExpect:
			tests = append(tests, s)
		default:
			exprs = append(exprs, s)
		}
	}

	for _, d := range defs {
		if err := it.execDefinition(d); err != nil {
			return nil, err
		}
	}

	result := &Result{}
	for _, e := range exprs {
		v, err := it.eval(e, it.globals)
		if err != nil {
			return nil, err
		}
		result.Values = append(result.Values, v)
	}

	for _, c := range tests {
		ce := c.(*ast.CheckExpect)
		actual, err := it.eval(ce.Actual, it.globals)
		if err != nil {
			return nil, err
		}
		expected, err := it.eval(ce.Expected, it.globals)
		if err != nil {
			return nil, err
		}
		result.Checks = append(result.Checks, CheckResult{
			Pos:      ce.Pos(),
			Pass:     Equal(actual, expected),
			Actual:   actual,
			Expected: expected,
		})
	}

	return result, nil
}

func (it *Interp) execDefinition(node ast.Node) *diag.Error {
	switch n := node.(type) {
	case *ast.IdAssign:
		v, err := it.eval(n.Value, it.globals)
		if err != nil {
			return err
		}
		it.globals.Define(n.Name, v)
		return nil
	case *ast.ProcAssign:
		// Already bound to Proc{Name} by New; nothing evaluates eagerly —
		// the body only ever runs when the procedure is called.
		return nil
	case *ast.StructAssign:
		it.globals.Define(n.Name, StructType{Name: n.Name})
		return nil
	default:
		return nil
	}
}

// eval evaluates an expression-position node to a Value: literals, an
// identifier reference, a cond, or a procedure call. Definition forms never
// appear here — the grammar only allows them at the top level, handled by
// execDefinition above.
func (it *Interp) eval(node ast.Node, env *Env) (Value, *diag.Error) {
	switch n := node.(type) {
	case *ast.Bool:
		return Bool(n.Value), nil
	case *ast.Num:
		return Num{N: n.Value}, nil
	case *ast.Str:
		return Str(n.Value), nil
	case *ast.Sym:
		return Sym(n.Value), nil
	case *ast.Id:
		return it.evalID(n, env)
	case *ast.Cond:
		return it.evalCond(n, env)
	case *ast.ProcCall:
		return it.evalProcCall(n, env)
	case *valueNode:
		return n.v, nil
	default:
		return nil, diag.Unexpected(node.Pos(), "")
	}
}

func (it *Interp) evalID(n *ast.Id, env *Env) (Value, *diag.Error) {
	v, ok := env.Lookup(n.Name)
	if !ok {
		return nil, diag.UsedBeforeDefinitionErr(n.Pos(), n.Name)
	}
	if st, ok := v.(StructType); ok {
		return nil, diag.UsingStructureTypeErr(n.Pos(), st.Name)
	}
	return v, nil
}

func (it *Interp) evalCond(n *ast.Cond, env *Env) (Value, *diag.Error) {
	for _, branch := range n.Branches {
		pv, err := it.eval(branch.Predicate, env)
		if err != nil {
			return nil, err
		}
		b, ok := pv.(Bool)
		if !ok {
			return nil, diag.QuestionResultNotBoolean(branch.Pos(), pv.String())
		}
		if bool(b) {
			return it.eval(branch.Body, env)
		}
	}
	if n.Else != nil {
		return it.eval(n.Else.Body, env)
	}
	return nil, diag.AllQuestionResultsFalse(n.Pos())
}

// resolveProc chases the alias chain starting at name until it reaches a
// binding whose Proc value names itself — the terminal case every builtin
// and every user/struct procedure is given at definition time. A name bound
// to a non-Proc value, or not bound at all, is an error.
func (it *Interp) resolveProc(pos diag.Position, name string, env *Env) (string, *diag.Error) {
	visited := map[string]bool{}
	for {
		v, ok := env.Lookup(name)
		if !ok {
			return "", diag.UsedBeforeDefinitionErr(pos, name)
		}
		pv, ok := v.(Proc)
		if !ok {
			return "", diag.ExpectedAFunction(pos, describeValue(v))
		}
		if pv.Name == name {
			return name, nil
		}
		if visited[name] {
			return "", diag.ExpectedAFunction(pos, diag.DescribeSomeElse)
		}
		visited[name] = true
		name = pv.Name
	}
}

func (it *Interp) evalProcCall(n *ast.ProcCall, env *Env) (Value, *diag.Error) {
	opID, ok := n.Operator.(*ast.Id)
	if !ok {
		return nil, diag.ExpectedAFunction(n.Pos(), diag.DescribeSomeElse)
	}

	resolved, err := it.resolveProc(n.Pos(), opID.Name, env)
	if err != nil {
		return nil, err
	}

	if b, ok := Builtins[resolved]; ok {
		if err := checkArity(n.Pos(), resolved, b.Min, b.Max, len(n.Args)); err != nil {
			return nil, err
		}
		return b.Eval(it, env, n.Args, n.Pos())
	}

	info, ok := it.Procs[resolved]
	if !ok {
		return nil, diag.UsedBeforeDefinitionErr(n.Pos(), resolved)
	}

	if op, ok := info.Body.(*ast.StructOp); ok {
		args, err := evalArgs(it, env, n.Args)
		if err != nil {
			return nil, err
		}
		return it.evalStructOpValues(op, info, args, n.Pos())
	}

	upper := len(info.Params)
	if err := checkArity(n.Pos(), resolved, len(info.Params), &upper, len(n.Args)); err != nil {
		return nil, err
	}

	args, err := evalArgs(it, env, n.Args)
	if err != nil {
		return nil, err
	}

	return it.callUserProc(resolved, info, args)
}

// evalStructOpValues runs a define-struct pseudo-procedure (make-S, S?, or
// S-field) against already-evaluated arguments, shared by ordinary calls
// (evalProcCall) and by applyProc's higher-order-builtin call path.
func (it *Interp) evalStructOpValues(op *ast.StructOp, info *ProcInfo, args []Value, pos diag.Position) (Value, *diag.Error) {
	upper := len(info.Params)
	if err := checkArity(pos, info.Name, len(info.Params), &upper, len(args)); err != nil {
		return nil, err
	}
	switch op.Kind {
	case ast.StructMake:
		return &Struct{Type: op.StructName, Fields: args}, nil
	case ast.StructHuh:
		s, ok := args[0].(*Struct)
		return Bool(ok && s.Type == op.StructName), nil
	default: // ast.StructGet
		s, ok := args[0].(*Struct)
		if !ok || s.Type != op.StructName {
			return nil, diag.IncorrectArgumentTypeErr(pos, info.Name, op.StructName, describeValue(args[0]), false, 0)
		}
		return s.Fields[op.FieldIndex], nil
	}
}

// callUserProc runs a user-defined procedure to completion, trampolining
// through any number of tail-position self-calls without growing the Go
// call stack.
func (it *Interp) callUserProc(name string, info *ProcInfo, args []Value) (Value, *diag.Error) {
	callEnv := it.globals.child()
	for i, p := range info.Params {
		callEnv.Define(p, args[i])
	}

	if it.LogStack {
		pos := info.Body.Pos()
		it.Stack = append(it.Stack, errors.NewStackFrame(name, "", &pos))
	}

	ctx := &tailCtx{Name: name, Params: info.Params}
	for {
		v, tc, err := it.evalTail(info.Body, callEnv, ctx)
		if err != nil {
			// The frame stays on Stack so a failure leaves its call chain behind.
			return nil, err
		}
		if tc == nil {
			if it.LogStack {
				it.Stack = it.Stack[:len(it.Stack)-1]
			}
			return v, nil
		}
		for i, p := range info.Params {
			callEnv.Define(p, tc.args[i])
		}
	}
}

// evalTail evaluates node as the tail of ctx's procedure: through any chain
// of `if` calls, a self-call to ctx.Name yields a tailCall instead of
// recursing. Anything else falls back to an ordinary (non-tail) eval.
func (it *Interp) evalTail(node ast.Node, env *Env, ctx *tailCtx) (Value, *tailCall, *diag.Error) {
	pc, ok := node.(*ast.ProcCall)
	if !ok {
		v, err := it.eval(node, env)
		return v, nil, err
	}
	opID, ok := pc.Operator.(*ast.Id)
	if !ok {
		v, err := it.eval(node, env)
		return v, nil, err
	}

	resolved, err := it.resolveProc(pc.Pos(), opID.Name, env)
	if err != nil {
		return nil, nil, err
	}

	if resolved == "if" && len(pc.Args) == 3 {
		testVal, err := it.eval(pc.Args[0], env)
		if err != nil {
			return nil, nil, err
		}
		b, ok := testVal.(Bool)
		if !ok {
			return nil, nil, diag.IncorrectArgumentTypeErr(pc.Pos(), "if", "boolean", describeValue(testVal), true, 0)
		}
		branch := pc.Args[2]
		if bool(b) {
			branch = pc.Args[1]
		}
		return it.evalTail(branch, env, ctx)
	}

	if ctx != nil && resolved == ctx.Name {
		upper := len(ctx.Params)
		if err := checkArity(pc.Pos(), resolved, len(ctx.Params), &upper, len(pc.Args)); err != nil {
			return nil, nil, err
		}
		args := make([]Value, len(pc.Args))
		for i, a := range pc.Args {
			v, err := it.eval(a, env)
			if err != nil {
				return nil, nil, err
			}
			args[i] = v
		}
		return nil, &tailCall{args: args}, nil
	}

	v, err := it.eval(node, env)
	return v, nil, err
}
