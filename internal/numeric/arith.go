package numeric

import "math/big"

// promote returns a and b unchanged together with the common Kind the
// operation is carried out in: whichever of the two has the higher
// Precedence wins, mirroring classes/data.py's rule "if other's
// precedence exceeds mine, let other's operator handle the combination."
// Integer/Rational never need coercion against each other beyond routing
// through NewRational (which collapses back to Integer when possible);
// Inexact always wins against either exact kind.
func promote(a, b Number) (Number, Number, Kind) {
	ka, kb := a.kind, b.kind
	if ka.Precedence() >= kb.Precedence() {
		return a, b, ka
	}
	return a, b, kb
}

// Add returns a + b.
func Add(a, b Number) Number {
	_, _, k := promote(a, b)
	switch k {
	case KindInteger:
		return NewInteger(new(big.Int).Add(a.i, b.i))
	case KindRational:
		an, ad := rationalParts(a)
		bn, bd := rationalParts(b)
		num := new(big.Int).Add(new(big.Int).Mul(an, bd), new(big.Int).Mul(bn, ad))
		den := new(big.Int).Mul(ad, bd)
		return NewRational(num, den)
	default:
		return NewInexact(a.Float() + b.Float())
	}
}

// Sub returns a - b.
func Sub(a, b Number) Number {
	return Add(a, Neg(b))
}

// Mul returns a * b.
func Mul(a, b Number) Number {
	_, _, k := promote(a, b)
	switch k {
	case KindInteger:
		return NewInteger(new(big.Int).Mul(a.i, b.i))
	case KindRational:
		an, ad := rationalParts(a)
		bn, bd := rationalParts(b)
		return NewRational(new(big.Int).Mul(an, bn), new(big.Int).Mul(ad, bd))
	default:
		return NewInexact(a.Float() * b.Float())
	}
}

// Div returns a / b. ok is false when b is an exact zero (DIVISION_BY_ZERO
// territory — the caller, typically a builtin in internal/interp, is
// responsible for turning that into a diag.Error at the call's position).
// Division by an inexact zero follows IEEE 754 (producing +inf.0, -inf.0, or
// +nan.0), matching the original's InexactNumber.__truediv__.
func Div(a, b Number) (Number, bool) {
	_, _, k := promote(a, b)
	if b.IsExact() && IsZero(b) {
		return Number{}, false
	}
	switch k {
	case KindInteger:
		return NewRational(a.i, b.i), true
	case KindRational:
		an, ad := rationalParts(a)
		bn, bd := rationalParts(b)
		return NewRational(new(big.Int).Mul(an, bd), new(big.Int).Mul(ad, bn)), true
	default:
		return NewInexact(a.Float() / b.Float()), true
	}
}

// Neg returns -n.
func Neg(n Number) Number {
	switch n.kind {
	case KindInteger:
		return NewInteger(new(big.Int).Neg(n.i))
	case KindRational:
		return NewRational(new(big.Int).Neg(n.numer), new(big.Int).Set(n.denom))
	default:
		return NewInexact(-n.inexct)
	}
}

// Abs returns the absolute value of n.
func Abs(n Number) Number {
	switch n.kind {
	case KindInteger:
		return NewInteger(new(big.Int).Abs(n.i))
	case KindRational:
		return NewRational(new(big.Int).Abs(n.numer), new(big.Int).Set(n.denom))
	default:
		v := n.inexct
		if v < 0 {
			v = -v
		}
		return NewInexact(v)
	}
}

// IsZero reports whether n's mathematical value is zero.
func IsZero(n Number) bool {
	switch n.kind {
	case KindInteger:
		return n.i.Sign() == 0
	case KindRational:
		return n.numer.Sign() == 0
	default:
		return n.inexct == 0
	}
}

// Sign returns -1, 0, or 1.
func Sign(n Number) int {
	switch n.kind {
	case KindInteger:
		return n.i.Sign()
	case KindRational:
		return n.numer.Sign()
	default:
		switch {
		case n.inexct < 0:
			return -1
		case n.inexct > 0:
			return 1
		default:
			return 0
		}
	}
}

// Cmp returns -1, 0, or 1 comparing a and b by mathematical value, coercing
// across exactness via Float when either operand is inexact, and via exact
// cross-multiplication otherwise (so large integers/rationals are compared
// without precision loss).
func Cmp(a, b Number) int {
	_, _, k := promote(a, b)
	if k == KindInexact {
		af, bf := a.Float(), b.Float()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	an, ad := rationalParts(a)
	bn, bd := rationalParts(b)
	lhs := new(big.Int).Mul(an, bd)
	rhs := new(big.Int).Mul(bn, ad)
	return lhs.Cmp(rhs)
}

// Equal reports whether a and b denote the same number, used by `=`.
func Equal(a, b Number) bool { return Cmp(a, b) == 0 }

// rationalParts returns n's numerator/denominator whether n is an Integer
// (denominator 1) or a Rational.
func rationalParts(n Number) (*big.Int, *big.Int) {
	if n.kind == KindInteger {
		return n.i, big.NewInt(1)
	}
	return n.numer, n.denom
}

// ToInexact coerces n to an Inexact, used by `exact->inexact`.
func ToInexact(n Number) Number {
	if n.kind == KindInexact {
		return n
	}
	return NewInexact(n.Float())
}

// ToExact coerces an Inexact n to the exact Rational (or Integer) nearest
// its float64 value, used by `inexact->exact`. Exact inputs are returned
// unchanged.
func ToExact(n Number) Number {
	if n.kind != KindInexact {
		return n
	}
	f := new(big.Rat).SetFloat64(n.inexct)
	if f == nil {
		// NaN/Inf have no exact representation; the original raises before
		// ever reaching here for these, so this is unreachable in practice.
		return NewIntegerFromInt64(0)
	}
	return NewRational(f.Num(), f.Denom())
}
