package apf

import (
	"math/big"
	"testing"
)

func TestAddExact(t *testing.T) {
	// 1.5 (0b11 × 2^-1, precision 2) + 0.25 (0b1 × 2^-2, precision 1)
	// is exactly 1.75 = 0b111 × 2^-2 at precision 3.
	x := exactly(t, "3/2", 2)
	y := exactly(t, "1/4", 1)
	got, acc := Add(x, y, 3, ToNearestEven)
	if acc != Exact || got.Rat().Cmp(rat(t, "7/4")) != 0 {
		t.Errorf("1.5 + 0.25 = %v (%v), want 7/4 (Exact)", got.Rat(), acc)
	}
	if got.Prec() != 3 {
		t.Errorf("result precision = %d, want 3", got.Prec())
	}
}

func TestAddSub(t *testing.T) {
	for _, c := range []struct {
		a, b string
		prec uint
		mode RoundingMode
		sub  bool
		out  string
		acc  Accuracy
	}{
		{"3/2", "1/4", 3, ToNearestEven, false, "7/4", Exact},
		{"3/2", "1/4", 3, ToNearestEven, true, "5/4", Exact},
		{"1", "1/8", 2, ToNearestEven, false, "1", Below},  // 1.001 -> 1.0, tie to even
		{"1", "3/8", 2, ToNearestEven, false, "3/2", Above}, // 1.011 -> 1.1
		{"1", "1/8", 2, AwayFromZero, false, "3/2", Above},
		{"7", "1", 3, ToNearestEven, false, "8", Exact},
		{"-3/2", "-1/4", 3, ToNearestEven, false, "-7/4", Exact},
		{"5", "5", 1, ToNearestEven, true, "0", Exact},
		{"255", "-254", 8, ToNearestEven, false, "1", Exact}, // big cancellation
	} {
		a := exactly(t, c.a, 20)
		b := exactly(t, c.b, 20)
		op, name := Add, "+"
		if c.sub {
			op, name = Sub, "-"
		}
		got, acc := op(a, b, c.prec, c.mode)
		exact := new(big.Rat).Set(rat(t, c.a))
		if c.sub {
			exact.Sub(exact, rat(t, c.b))
		} else {
			exact.Add(exact, rat(t, c.b))
		}
		if c.out != "" {
			if got.Rat().Cmp(rat(t, c.out)) != 0 || acc != c.acc {
				t.Errorf("%s %s %s at prec %d = %v (%v), want %v (%v)",
					c.a, name, c.b, c.prec, got.Rat(), acc, c.out, c.acc)
			}
		}
		if !got.IsZero() {
			checkRounded(t, got, acc, exact, c.prec, c.mode)
		}
	}
}

func TestAddSweep(t *testing.T) {
	// Grind a grid of operands through every mode and hold each sum and
	// difference to the correct-rounding contract. The operands are
	// whatever 10-bit nearest rounding made of the fractions; the exact
	// reference is the rational sum of those operands, not of the
	// original fractions.
	var ops []*Float
	for num := int64(-9); num <= 9; num++ {
		for _, den := range []int64{1, 3, 8} {
			f, _ := FromRat(big.NewRat(num, den), 10, ToNearestEven)
			ops = append(ops, f)
		}
	}
	for _, mode := range []RoundingMode{ToNearestEven, ToZero, AwayFromZero, ToNegativeInf, ToPositiveInf} {
		for _, a := range ops {
			for _, b := range ops {
				sum, acc := Add(a, b, 4, mode)
				exact := new(big.Rat).Add(a.Rat(), b.Rat())
				if sum.IsZero() {
					if exact.Sign() != 0 {
						t.Fatalf("%v + %v = zero, exact %v", a, b, exact)
					}
					continue
				}
				checkRounded(t, sum, acc, exact, 4, mode)
				diff, acc := Sub(a, b, 4, mode)
				exact.Sub(a.Rat(), b.Rat())
				if diff.IsZero() {
					if exact.Sign() != 0 {
						t.Fatalf("%v - %v = zero, exact %v", a, b, exact)
					}
					continue
				}
				checkRounded(t, diff, acc, exact, 4, mode)
			}
		}
	}
}

func TestAddFarApart(t *testing.T) {
	// When the operands' exponents are too far apart to overlap, the
	// small one only shows up as a sticky bit, but the rounding must
	// still be correct.
	big1 := exactly(t, "1024", 1)
	tiny := exactly(t, "1/1099511627776", 1) // 2^-40
	for _, c := range []struct {
		mode RoundingMode
		sub  bool
		out  string
		acc  Accuracy
	}{
		{ToNearestEven, false, "1024", Below},
		{AwayFromZero, false, "1536", Above}, // 1024+ulp at precision 2 is 1.1×2^10
		{ToZero, false, "1024", Below},
		{ToNearestEven, true, "1024", Above},
		{ToZero, true, "768", Below}, // truncating 1024-ε drops to 1.1×2^9
		{ToNegativeInf, true, "768", Below},
	} {
		op := Add
		exact := new(big.Rat).Add(big1.Rat(), tiny.Rat())
		if c.sub {
			op = Sub
			exact.Sub(big1.Rat(), tiny.Rat())
		}
		got, acc := op(big1, tiny, 2, c.mode)
		if got.Rat().Cmp(rat(t, c.out)) != 0 || acc != c.acc {
			t.Errorf("far apart %v (sub=%v) = %v (%v), want %v (%v)",
				c.mode, c.sub, got.Rat(), acc, c.out, c.acc)
		}
		checkRounded(t, got, acc, exact, 2, c.mode)
	}
}

func TestAddSpecials(t *testing.T) {
	one := exactly(t, "1", 1)
	for _, c := range []struct {
		a, b *Float
		sub  bool
		want *Float
	}{
		{NaN(), one, false, NaN()},
		{one, NaN(), false, NaN()},
		{NaN(), NaN(), true, NaN()},
		{Inf(false), Inf(false), false, Inf(false)},
		{Inf(true), Inf(true), false, Inf(true)},
		{Inf(false), Inf(true), false, NaN()},
		{Inf(false), Inf(false), true, NaN()},
		{Inf(true), Inf(false), true, Inf(true)},
		{Inf(false), one, false, Inf(false)},
		{one, Inf(true), false, Inf(true)},
		{one, Inf(false), true, Inf(true)},
		{Zero(false), one, false, one},
		{one, Zero(true), true, one},
	} {
		op, name := Add, "+"
		if c.sub {
			op, name = Sub, "-"
		}
		got, acc := op(c.a, c.b, 1, ToNearestEven)
		if acc != Exact {
			t.Errorf("%v %s %v: accuracy %v, want Exact", c.a, name, c.b, acc)
		}
		if c.want.IsNaN() {
			if !got.IsNaN() {
				t.Errorf("%v %s %v = %v, want NaN", c.a, name, c.b, got)
			}
			continue
		}
		if TotalCmp(got, c.want) != 0 {
			t.Errorf("%v %s %v = %v, want %v", c.a, name, c.b, got, c.want)
		}
	}
}

func TestZeroSigns(t *testing.T) {
	// The sign of an exact zero sum is positive in all modes except
	// ToNegativeInf, unless both operands agree on a sign.
	for _, c := range []struct {
		a, b   bool // operand signs
		mode   RoundingMode
		negOut bool
	}{
		{false, true, ToNearestEven, false}, // (+0) + (-0) = +0
		{true, false, ToNearestEven, false},
		{true, true, ToNearestEven, true}, // (-0) + (-0) = -0
		{false, false, ToNearestEven, false},
		{false, true, ToNegativeInf, true}, // the one directional exception
		{true, true, ToPositiveInf, true},
		{false, true, ToZero, false},
		{false, true, AwayFromZero, false},
	} {
		got, acc := Add(Zero(c.a), Zero(c.b), 1, c.mode)
		if !got.IsZero() || got.Signbit() != c.negOut || acc != Exact {
			t.Errorf("Zero(%v) + Zero(%v) in %v = %v (%v), want zero with neg=%v",
				c.a, c.b, c.mode, got, acc, c.negOut)
		}
	}
	// Exact cancellation of equal finite values follows the same rule.
	x := exactly(t, "5/4", 3)
	got, _ := Sub(x, x, 3, ToNearestEven)
	if !got.IsZero() || got.Signbit() {
		t.Errorf("x - x = %v, want +0", got)
	}
	got, _ = Sub(x, x, 3, ToNegativeInf)
	if !got.IsZero() || !got.Signbit() {
		t.Errorf("x - x under ToNegativeInf = %v, want -0", got)
	}
}
