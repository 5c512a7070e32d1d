package interp

import (
	"math/big"

	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Grounded on predefined/_numeric.py: SymPlus, SymMinus, SymMultiply,
// SymDivide, SymEqual, SymLessThan/SymLessEqualThan/SymGreaterThan/
// SymGreaterEqualThan, Abs, Add1, Sub1, Ceiling, Floor, Round, Sgn, Sqr,
// Sqrt, Exp, Log, Gcd, Lcm, Modulo, Max, Min, NumberToString,
// CurrentSeconds. string->number is an added counterpart to
// NumberToString, needed for any program round-tripping a computed number
// through a String.
func init() {
	register("+", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		result := numeric.NewIntegerFromInt64(0)
		multi := len(vals) > 1
		for i, v := range vals {
			n, err := asNum(pos, "+", v, "number", multi, i)
			if err != nil {
				return nil, err
			}
			result = numeric.Add(result, n)
		}
		return Num{N: result}, nil
	})

	register("*", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		result := numeric.NewIntegerFromInt64(1)
		multi := len(vals) > 1
		zero := numeric.NewIntegerFromInt64(0)
		sawZero := false
		for i, v := range vals {
			n, err := asNum(pos, "*", v, "number", multi, i)
			if err != nil {
				return nil, err
			}
			if numeric.Equal(n, zero) && n.Kind() == numeric.KindInteger {
				sawZero = true
				continue
			}
			result = numeric.Mul(result, n)
		}
		if sawZero {
			return Num{N: zero}, nil
		}
		return Num{N: result}, nil
	})

	register("-", 1, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		first, err := asNum(pos, "-", vals[0], "number", multi, 0)
		if err != nil {
			return nil, err
		}
		if len(vals) == 1 {
			return Num{N: numeric.Neg(first)}, nil
		}
		result := first
		for i, v := range vals[1:] {
			n, err := asNum(pos, "-", v, "number", multi, i+1)
			if err != nil {
				return nil, err
			}
			result = numeric.Sub(result, n)
		}
		return Num{N: result}, nil
	})

	register("/", 1, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		first, err := asNum(pos, "/", vals[0], "number", multi, 0)
		if err != nil {
			return nil, err
		}
		if len(vals) == 1 {
			result, ok := numeric.Div(numeric.NewIntegerFromInt64(1), first)
			if !ok {
				return nil, diag.DivisionByZeroErr(pos)
			}
			return Num{N: result}, nil
		}
		result := first
		for i, v := range vals[1:] {
			n, err := asNum(pos, "/", v, "number", multi, i+1)
			if err != nil {
				return nil, err
			}
			quot, ok := numeric.Div(result, n)
			if !ok {
				return nil, diag.DivisionByZeroErr(pos)
			}
			result = quot
		}
		return Num{N: result}, nil
	})

	register("=", 1, nil, chainedCompare("=", func(a, b numeric.Number) bool { return numeric.Equal(a, b) }, "number"))
	register("<", 1, nil, chainedCompare("<", func(a, b numeric.Number) bool { return numeric.Cmp(a, b) < 0 }, "real"))
	register(">", 1, nil, chainedCompare(">", func(a, b numeric.Number) bool { return numeric.Cmp(a, b) > 0 }, "real"))
	register("<=", 1, nil, chainedCompare("<=", func(a, b numeric.Number) bool { return numeric.Cmp(a, b) <= 0 }, "real"))
	register(">=", 1, nil, chainedCompare(">=", func(a, b numeric.Number) bool { return numeric.Cmp(a, b) >= 0 }, "real"))

	register("abs", 1, intp(1), unaryNum("abs", "real", func(n numeric.Number) numeric.Number { return numeric.Abs(n) }))
	register("add1", 1, intp(1), unaryNum("add1", "number", func(n numeric.Number) numeric.Number {
		return numeric.Add(n, numeric.NewIntegerFromInt64(1))
	}))
	register("sub1", 1, intp(1), unaryNum("sub1", "number", func(n numeric.Number) numeric.Number {
		return numeric.Sub(n, numeric.NewIntegerFromInt64(1))
	}))
	register("ceiling", 1, intp(1), unaryNum("ceiling", "real", numeric.Ceiling))
	register("floor", 1, intp(1), unaryNum("floor", "real", numeric.Floor))
	register("round", 1, intp(1), unaryNum("round", "real", numeric.Round))
	register("sqr", 1, intp(1), unaryNum("sqr", "number", numeric.Sqr))
	register("exp", 1, intp(1), unaryNum("exp", "number", numeric.Exp))
	register("log", 1, intp(1), unaryNum("log", "number", numeric.Log))
	register("exact->inexact", 1, intp(1), unaryNum("exact->inexact", "number", numeric.ToInexact))
	register("inexact->exact", 1, intp(1), unaryNum("inexact->exact", "number", numeric.ToExact))

	register("sgn", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		n, err := asNum(pos, "sgn", vals[0], "real", false, 0)
		if err != nil {
			return nil, err
		}
		return Num{N: numeric.NewIntegerFromInt64(int64(numeric.Sign(n)))}, nil
	})

	register("sqrt", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		n, err := asNum(pos, "sqrt", vals[0], "number", false, 0)
		if err != nil {
			return nil, err
		}
		result, ok := numeric.Sqrt(n)
		if !ok {
			return nil, diag.NotImplemented(pos)
		}
		return Num{N: result}, nil
	})

	register("gcd", 0, nil, integerFold("gcd", numeric.Gcd))
	register("lcm", 0, nil, integerFold("lcm", numeric.Lcm))

	register("modulo", 2, intp(2), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		number, err := asNum(pos, "modulo", vals[0], "integer", true, 0)
		if err != nil {
			return nil, err
		}
		if _, ok := number.Integer(); !ok {
			return nil, diag.IncorrectArgumentTypeErr(pos, "modulo", "integer", describeValue(vals[0]), true, 0)
		}
		modulus, err := asNum(pos, "modulo", vals[1], "integer", true, 1)
		if err != nil {
			return nil, err
		}
		if _, ok := modulus.Integer(); !ok {
			return nil, diag.IncorrectArgumentTypeErr(pos, "modulo", "integer", describeValue(vals[1]), true, 1)
		}
		return Num{N: numeric.Modulo(number, modulus)}, nil
	})

	register("max", 1, nil, realFold("max", numeric.Max))
	register("min", 1, nil, realFold("min", numeric.Min))

	register("number->string", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		n, err := asNum(pos, "number->string", vals[0], "number", false, 0)
		if err != nil {
			return nil, err
		}
		return Str(n.String()), nil
	})

	register("string->number", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		s, err := asStr(pos, "string->number", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		n, ok := new(big.Int).SetString(s, 10)
		if ok {
			return Num{N: numeric.NewInteger(n)}, nil
		}
		if f, ferr := parseFloat(s); ferr {
			return Num{N: numeric.NewInexact(f)}, nil
		}
		return Bool(false), nil
	})

	register("current-seconds", 0, intp(0), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		return Num{N: numeric.NewIntegerFromInt64(currentSeconds())}, nil
	})
}

func unaryNum(name, expectedType string, f func(numeric.Number) numeric.Number) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		n, err := asNum(pos, name, vals[0], expectedType, false, 0)
		if err != nil {
			return nil, err
		}
		return Num{N: f(n)}, nil
	}
}

func chainedCompare(name string, ok func(a, b numeric.Number) bool, expectedType string) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		nums := make([]numeric.Number, len(vals))
		for i, v := range vals {
			n, err := asNum(pos, name, v, expectedType, multi, i)
			if err != nil {
				return nil, err
			}
			nums[i] = n
		}
		for i := 1; i < len(nums); i++ {
			if !ok(nums[i-1], nums[i]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	}
}

func integerFold(name string, fold func([]numeric.Number) numeric.Number) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		nums := make([]numeric.Number, len(vals))
		for i, v := range vals {
			n, err := asNum(pos, name, v, "integer", multi, i)
			if err != nil {
				return nil, err
			}
			if _, ok := n.Integer(); !ok {
				return nil, diag.IncorrectArgumentTypeErr(pos, name, "integer", describeValue(v), multi, i)
			}
			nums[i] = n
		}
		return Num{N: fold(nums)}, nil
	}
}

func realFold(name string, fold func([]numeric.Number) numeric.Number) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		nums := make([]numeric.Number, len(vals))
		for i, v := range vals {
			n, err := asNum(pos, name, v, "real", multi, i)
			if err != nil {
				return nil, err
			}
			nums[i] = n
		}
		return Num{N: fold(nums)}, nil
	}
}
