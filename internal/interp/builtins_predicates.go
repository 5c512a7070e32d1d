package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Grounded on predefined/_numeric.py (ZeroHuh, PositiveHuh, NegativeHuh,
// OddHuh, EvenHuh, IntegerHuh, RationalHuh, RealHuh, NumberHuh, ExactHuh)
// and predefined/_boolean.py (BooleanHuh). The type-testing predicates
// (number?, boolean?, integer?, rational?, real?) never raise a type error
// themselves — they answer #false for the wrong type, exactly like the
// originals' `issubclass` checks. zero?, positive?, negative?, exact?, odd?
// and even? instead raise INCORRECT_ARGUMENT_TYPE for an argument of the
// wrong type (see numPredicate and intPredicate).
func init() {
	register("number?", 1, intp(1), typePredicate(func(v Value) bool {
		_, ok := v.(Num)
		return ok
	}))
	register("boolean?", 1, intp(1), typePredicate(func(v Value) bool {
		_, ok := v.(Bool)
		return ok
	}))

	register("zero?", 1, intp(1), numPredicate("zero?", func(n numeric.Number) bool { return numeric.IsZero(n) }))
	register("positive?", 1, intp(1), numPredicate("positive?", numeric.IsPositive))
	register("negative?", 1, intp(1), numPredicate("negative?", numeric.IsNegative))
	register("exact?", 1, intp(1), numPredicate("exact?", numeric.Number.IsExact))

	register("odd?", 1, intp(1), intPredicate("odd?", numeric.IsOdd))
	register("even?", 1, intp(1), intPredicate("even?", numeric.IsEven))

	register("integer?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		n, ok := v.(Num)
		return Bool(ok && n.N.IsIntegerValued()), nil
	})

	register("rational?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		n, ok := v.(Num)
		return Bool(ok && n.N.Kind() != numeric.KindInexact), nil
	})

	register("real?", 1, intp(1), typePredicate(func(v Value) bool {
		_, ok := v.(Num)
		return ok
	}))
}

// typePredicate builds a zero-cost "is this value this Go type" builtin
// (real?/number? currently coincide since the dialect has no complex
// numbers, matching the original's RealNum/Number distinction existing
// only for documentation purposes at this subset's level).
func typePredicate(test func(Value) bool) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		return Bool(test(v)), nil
	}
}

// numPredicate requires a Number argument (INCORRECT_ARGUMENT_TYPE on
// mismatch, matching zero?/positive?/negative?/exact? all raising
// ArgumentTypeError for a non-Number/non-RealNum argument).
func numPredicate(name string, test func(numeric.Number) bool) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		n, err := asNum(pos, name, vals[0], "real", false, 0)
		if err != nil {
			return nil, err
		}
		return Bool(test(n)), nil
	}
}

// intPredicate requires an Integer (odd?/even? raise ArgumentTypeError for
// any non-Integer Number, including Rational and Inexact).
func intPredicate(name string, test func(numeric.Number) bool) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		n, err := asNum(pos, name, vals[0], "integer", false, 0)
		if err != nil {
			return nil, err
		}
		if _, ok := n.Integer(); !ok {
			return nil, diag.IncorrectArgumentTypeErr(pos, name, "integer", describeValue(vals[0]), false, 0)
		}
		return Bool(test(n)), nil
	}
}
