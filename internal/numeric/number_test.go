package numeric

import (
	"math/big"
	"testing"
)

func intN(v int64) Number   { return NewIntegerFromInt64(v) }
func rat(n, d int64) Number { return NewRational(big.NewInt(n), big.NewInt(d)) }

func TestRationalNormalization(t *testing.T) {
	tests := []struct {
		num, den int64
		want     string
		wantKind Kind
	}{
		{2, 4, "1/2", KindRational},
		{6, 3, "2", KindInteger},
		{-1, 2, "-1/2", KindRational},
		{1, -2, "-1/2", KindRational},
		{-4, -8, "1/2", KindRational},
	}
	for _, tt := range tests {
		n := rat(tt.num, tt.den)
		if n.Kind() != tt.wantKind {
			t.Errorf("rat(%d,%d).Kind() = %v, want %v", tt.num, tt.den, n.Kind(), tt.wantKind)
		}
		if n.String() != tt.want {
			t.Errorf("rat(%d,%d).String() = %q, want %q", tt.num, tt.den, n.String(), tt.want)
		}
	}
}

func TestRationalNormalizationPanicsOnZeroDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewRational with zero denominator did not panic")
		}
	}()
	NewRational(big.NewInt(1), big.NewInt(0))
}

func TestAddExactnessContagion(t *testing.T) {
	if got := Add(intN(1), intN(2)); got.Kind() != KindInteger || got.String() != "3" {
		t.Errorf("Add(1,2) = %v, want Integer 3", got)
	}
	if got := Add(rat(1, 2), rat(1, 2)); got.Kind() != KindInteger || got.String() != "1" {
		t.Errorf("Add(1/2,1/2) = %v, want Integer 1", got)
	}
	if got := Add(intN(1), NewInexact(0.5)); got.Kind() != KindInexact {
		t.Errorf("Add(1, 0.5) = %v, want Inexact", got)
	}
	if got := Add(rat(1, 2), rat(1, 4)); got.String() != "3/4" {
		t.Errorf("Add(1/2,1/4) = %v, want 3/4", got)
	}
}

func TestMulRationals(t *testing.T) {
	got := Mul(rat(1, 2), rat(1, 2))
	if got.String() != "1/4" {
		t.Errorf("Mul(1/2,1/2) = %v, want 1/4", got)
	}
}

func TestDivByExactZero(t *testing.T) {
	_, ok := Div(intN(1), intN(0))
	if ok {
		t.Fatal("Div(1,0) reported ok, want division-by-zero signal")
	}
}

func TestDivByInexactZeroFollowsIEEE754(t *testing.T) {
	got, ok := Div(intN(1), NewInexact(0))
	if !ok {
		t.Fatal("Div(1, 0.0) reported !ok, want +inf.0 per IEEE 754")
	}
	f, _ := got.Inexact()
	if f <= 0 {
		t.Errorf("Div(1, 0.0) = %v, want +Inf", f)
	}
}

func TestDivProducesRational(t *testing.T) {
	got, ok := Div(intN(1), intN(3))
	if !ok || got.String() != "1/3" {
		t.Errorf("Div(1,3) = %v, ok=%v, want 1/3", got, ok)
	}
}

func TestNumericEqualityAcrossExactness(t *testing.T) {
	if !Equal(intN(1), NewInexact(1.0)) {
		t.Error("Equal(1, 1.0) = false, want true")
	}
	if !Equal(rat(1, 2), NewInexact(0.5)) {
		t.Error("Equal(1/2, 0.5) = false, want true")
	}
	if Equal(intN(1), intN(2)) {
		t.Error("Equal(1, 2) = true, want false")
	}
}

func TestIsExact(t *testing.T) {
	if NewInexact(0.5).IsExact() {
		t.Error("IsExact(0.5) = true, want false")
	}
	if !rat(1, 2).IsExact() {
		t.Error("IsExact(1/2) = false, want true")
	}
	if !intN(1).IsExact() {
		t.Error("IsExact(1) = false, want true")
	}
}

func TestIsIntegerValued(t *testing.T) {
	tests := []struct {
		n    Number
		want bool
	}{
		{intN(2), true},
		{NewInexact(2.0), true},
		{NewInexact(2.5), false},
		{rat(1, 2), false},
	}
	for _, tt := range tests {
		if got := tt.n.IsIntegerValued(); got != tt.want {
			t.Errorf("%v.IsIntegerValued() = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNegAndAbs(t *testing.T) {
	if Neg(intN(3)).String() != "-3" {
		t.Errorf("Neg(3) = %v, want -3", Neg(intN(3)))
	}
	if Abs(intN(-3)).String() != "3" {
		t.Errorf("Abs(-3) = %v, want 3", Abs(intN(-3)))
	}
	if Abs(rat(-1, 2)).String() != "1/2" {
		t.Errorf("Abs(-1/2) = %v, want 1/2", Abs(rat(-1, 2)))
	}
}

func TestCmpOrdersAcrossKinds(t *testing.T) {
	if Cmp(intN(1), rat(3, 2)) >= 0 {
		t.Error("Cmp(1, 3/2) should be negative")
	}
	if Cmp(NewInexact(2.0), intN(1)) <= 0 {
		t.Error("Cmp(2.0, 1) should be positive")
	}
}

func TestToInexactAndToExact(t *testing.T) {
	if got := ToInexact(rat(1, 2)); got.Kind() != KindInexact || got.String() != "0.5" {
		t.Errorf("ToInexact(1/2) = %v, want Inexact 0.5", got)
	}
	if got := ToExact(NewInexact(0.5)); !got.IsExact() || got.String() != "1/2" {
		t.Errorf("ToExact(0.5) = %v, want Exact 1/2", got)
	}
	// ToExact/ToInexact are identity on values already in that family.
	if got := ToExact(intN(4)); got.String() != "4" {
		t.Errorf("ToExact(4) = %v, want 4", got)
	}
}

func TestInexactPrintingAppendsDotZero(t *testing.T) {
	if got := NewInexact(3.0).String(); got != "3.0" {
		t.Errorf("NewInexact(3.0).String() = %q, want %q", got, "3.0")
	}
}
