// Package numeric implements the dialect's numeric tower: arbitrary
// precision Integer and Rational (the Exact numbers), and a float64-backed
// Inexact. Dispatch between representations follows the precedence lattice
// from spec.md §3 (Integer=1, Rational=2, Inexact=4; the abstract
// ExactNumber=3, RealNumber=5, and Number=6 tiers never have a concrete
// Go type — they exist only as the classification predicates IsExact and
// IsIntegerValued below) rather than a class hierarchy with method overrides, per the
// DESIGN NOTES in spec.md §9.
package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Kind tags which concrete representation a Number holds.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindInexact
)

// Precedence returns the lattice position used to decide which
// representation a binary operation is carried out in: the operand with the
// higher Precedence number wins (Integer is the most specific, Inexact the
// most general).
func (k Kind) Precedence() int {
	switch k {
	case KindInteger:
		return 1
	case KindRational:
		return 2
	default:
		return 4
	}
}

// Number is a value in the numeric tower. The zero value is not meaningful;
// construct with NewInteger/NewRational/NewInexact.
type Number struct {
	kind   Kind
	i      *big.Int // KindInteger
	numer  *big.Int // KindRational, numerator
	denom  *big.Int // KindRational, denominator (always > 1, gcd(numer,denom)==1)
	inexct float64  // KindInexact
}

// Kind reports the number's concrete representation.
func (n Number) Kind() Kind { return n.kind }

// NewInteger wraps a *big.Int as an exact Integer.
func NewInteger(v *big.Int) Number {
	return Number{kind: KindInteger, i: new(big.Int).Set(v)}
}

// NewIntegerFromInt64 is a convenience wrapper for small integer constants.
func NewIntegerFromInt64(v int64) Number {
	return NewInteger(big.NewInt(v))
}

// NewRational builds a normalized Rational from a numerator/denominator
// pair. The denominator must be non-zero; a zero denominator panics, since
// every caller constructing a Rational already knows it can't be zero (the
// DIVISION_BY_ZERO diagnostic is raised before ever reaching here). If the
// reduced fraction has denominator 1, an Integer is returned instead,
// preserving the invariant that a Rational's denominator (the second result
// of Number.Rational) is always > 1.
func NewRational(numer, denom *big.Int) Number {
	if denom.Sign() == 0 {
		panic("numeric: rational with zero denominator")
	}
	n := new(big.Int).Set(numer)
	d := new(big.Int).Set(denom)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), new(big.Int).Abs(d))
	if g.Sign() != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if d.Cmp(big.NewInt(1)) == 0 {
		return NewInteger(n)
	}
	return Number{kind: KindRational, numer: n, denom: d}
}

// NewInexact wraps a float64.
func NewInexact(v float64) Number {
	return Number{kind: KindInexact, inexct: v}
}

// IsExact reports whether n is an Integer or Rational.
func (n Number) IsExact() bool { return n.kind != KindInexact }

// Integer returns the underlying *big.Int and true if n is a KindInteger.
func (n Number) Integer() (*big.Int, bool) {
	if n.kind != KindInteger {
		return nil, false
	}
	return n.i, true
}

// Rational returns the normalized numerator/denominator and true if n is a
// KindRational.
func (n Number) Rational() (numer, denom *big.Int, ok bool) {
	if n.kind != KindRational {
		return nil, nil, false
	}
	return n.numer, n.denom, true
}

// Inexact returns the float64 value and true if n is a KindInexact.
func (n Number) Inexact() (float64, bool) {
	if n.kind != KindInexact {
		return 0, false
	}
	return n.inexct, true
}

// Float returns n's mathematical value as a float64 regardless of kind,
// used for coercion into Inexact and for comparisons across exactness.
func (n Number) Float() float64 {
	switch n.kind {
	case KindInteger:
		f := new(big.Float).SetInt(n.i)
		v, _ := f.Float64()
		return v
	case KindRational:
		num := new(big.Float).SetInt(n.numer)
		den := new(big.Float).SetInt(n.denom)
		f := new(big.Float).Quo(num, den)
		v, _ := f.Float64()
		return v
	default:
		return n.inexct
	}
}

// IsIntegerValued reports whether n's mathematical value is a whole number.
// This is the value-based test spec.md §9 mandates for `integer?`: true for
// any Integer, and for any Inexact whose fractional part is zero (so `2.0`
// counts), but not for a non-integral Rational.
func (n Number) IsIntegerValued() bool {
	switch n.kind {
	case KindInteger:
		return true
	case KindRational:
		return false
	default:
		return !math.IsInf(n.inexct, 0) && !math.IsNaN(n.inexct) && math.Trunc(n.inexct) == n.inexct
	}
}

// String renders n per spec.md §6's printing rules.
func (n Number) String() string {
	switch n.kind {
	case KindInteger:
		return n.i.String()
	case KindRational:
		return fmt.Sprintf("%s/%s", n.numer.String(), n.denom.String())
	default:
		return formatInexact(n.inexct)
	}
}

func formatInexact(v float64) string {
	if math.IsInf(v, 1) {
		return "+inf.0"
	}
	if math.IsInf(v, -1) {
		return "-inf.0"
	}
	if math.IsNaN(v) {
		return "+nan.0"
	}
	s := fmt.Sprintf("%g", v)
	// Racket prints inexact integers with a trailing ".0" (e.g. "3.0", not "3").
	hasDotOrExp := false
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			hasDotOrExp = true
			break
		}
	}
	if !hasDotOrExp {
		s += ".0"
	}
	return s
}
