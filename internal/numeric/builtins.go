package numeric

import (
	"math"
	"math/big"
)

// These functions implement the value-level semantics behind the dialect's
// numeric builtins (predefined/numeric.py). Argument-count and type
// checking, and turning a bad call into a diag.Error, are the job of the
// interp package's builtin wrappers; everything here assumes its inputs
// already satisfy the documented preconditions.

// IsNegative, IsPositive mirror negative?/positive?.
func IsNegative(n Number) bool { return Sign(n) < 0 }
func IsPositive(n Number) bool { return Sign(n) > 0 }

// IsEven, IsOdd mirror even?/odd? — only meaningful for Integer, per the
// original's Integer-only type check.
func IsEven(n Number) bool { return new(big.Int).Mod(n.i, big.NewInt(2)).Sign() == 0 }
func IsOdd(n Number) bool { return !IsEven(n) }

// Ceiling, Floor, Round each return an exact Integer, regardless of whether
// the input was exact or inexact, matching `d.Integer(math.ceil(...))`.
func Ceiling(n Number) Number {
	switch n.kind {
	case KindInteger:
		return n
	case KindRational:
		q, r := new(big.Int).QuoRem(n.numer, n.denom, new(big.Int))
		if r.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		}
		return NewInteger(q)
	default:
		return NewInteger(floatToBigInt(math.Ceil(n.inexct)))
	}
}

func Floor(n Number) Number {
	switch n.kind {
	case KindInteger:
		return n
	case KindRational:
		q, r := new(big.Int).QuoRem(n.numer, n.denom, new(big.Int))
		if r.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		}
		return NewInteger(q)
	default:
		return NewInteger(floatToBigInt(math.Floor(n.inexct)))
	}
}

// Round implements banker's rounding (round-half-to-even), matching
// Python's builtin round() that the original calls.
func Round(n Number) Number {
	return NewInteger(floatToBigInt(roundHalfToEven(n.Float())))
}

func roundHalfToEven(f float64) float64 {
	floor := math.Floor(f)
	diff := f - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

func floatToBigInt(f float64) *big.Int {
	bf := new(big.Float).SetFloat64(f)
	i, _ := bf.Int(nil)
	return i
}

// Gcd, Lcm fold across zero-or-more Integer arguments the way the original's
// reduction does (empty Gcd is 0, empty Lcm is 1).
func Gcd(ns []Number) Number {
	acc := big.NewInt(0)
	for _, n := range ns {
		acc = new(big.Int).GCD(nil, nil, acc, new(big.Int).Abs(n.i))
	}
	return NewInteger(acc)
}

func Lcm(ns []Number) Number {
	acc := big.NewInt(1)
	for _, n := range ns {
		v := new(big.Int).Abs(n.i)
		if v.Sign() == 0 {
			return NewIntegerFromInt64(0)
		}
		g := new(big.Int).GCD(nil, nil, acc, v)
		acc = new(big.Int).Mul(acc, v)
		acc.Quo(acc, g)
	}
	return NewInteger(acc)
}

// Modulo mirrors Python's `%` (result takes the sign of the modulus), which
// differs from Go's `%` (result takes the sign of the dividend) — the
// explicit floored-division adjustment below is required to match.
func Modulo(number, modulus Number) Number {
	r := new(big.Int).Mod(number.i, new(big.Int).Abs(modulus.i))
	if modulus.i.Sign() < 0 && r.Sign() != 0 {
		r.Add(r, modulus.i)
	}
	return NewInteger(r)
}

// Sqr returns n * n.
func Sqr(n Number) Number { return Mul(n, n) }

// Sqrt returns an Inexact square root. ok is false for negative n (complex
// numbers are out of scope, matching the original's NotImplementedError).
func Sqrt(n Number) (Number, bool) {
	if Sign(n) < 0 {
		return Number{}, false
	}
	return NewInexact(math.Sqrt(n.Float())), true
}

// Exp, Log are always Inexact.
func Exp(n Number) Number { return NewInexact(math.Exp(n.Float())) }
func Log(n Number) Number { return NewInexact(math.Log(n.Float())) }

// Max, Min fold across one-or-more RealNumbers; exactness of the result
// follows whichever operand is chosen (no coercion across the whole set).
func Max(ns []Number) Number {
	result := ns[0]
	for _, n := range ns[1:] {
		if Cmp(n, result) > 0 {
			result = n
		}
	}
	return result
}

func Min(ns []Number) Number {
	result := ns[0]
	for _, n := range ns[1:] {
		if Cmp(n, result) < 0 {
			result = n
		}
	}
	return result
}
