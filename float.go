package apf

import (
	"fmt"
	"math/big"
)

// form tags the four kinds of Float. Keeping the kind an explicit tag,
// rather than hiding special cases in sentinel significand values, lets
// every operator switch over the combinations exhaustively.
type form uint8

const (
	formNaN form = iota
	formInf
	formZero
	formFinite
)

// Float is an arbitrary-precision binary floating point number: NaN, a
// signed infinity, a signed zero, or a finite nonzero value
//
//	±mant × 2^exp
//
// where mant is an integer exactly prec bits wide with its top bit set.
// The precision is a property of the value, not of the type: two Floats can
// hold the same number at different precisions.
//
// Floats are immutable. Operators allocate their results and never modify
// their operands, so values can be shared freely, including between
// goroutines.
type Float struct {
	form form
	neg  bool
	prec uint
	// exp is the exponent of the significand's lowest bit, so the value
	// is mant × 2^exp and the magnitude lies in
	// [2^(exp+prec-1), 2^(exp+prec)). Only set for formFinite.
	exp  int
	mant *big.Int
}

// NaN returns the not-a-number value. There is exactly one; it carries no
// sign or payload.
func NaN() *Float { return &Float{form: formNaN} }

// Inf returns positive infinity, or negative infinity if neg is set.
func Inf(neg bool) *Float { return &Float{form: formInf, neg: neg} }

// Zero returns positive zero, or negative zero if neg is set. The two
// zeros compare numerically equal, but the sign is still meaningful: it
// records the direction a rounded-away value came from, and it decides the
// sign of results like 1/(-0).
func Zero(neg bool) *Float { return &Float{form: formZero, neg: neg} }

// New constructs the finite nonzero Float ±mant × 2^exp at precision prec,
// using the default Context's exponent range. mant must be exactly prec
// bits wide; anything else, or an out-of-range exponent, is a contract
// violation and panics. mant is copied.
func New(neg bool, mant *big.Int, exp int, prec uint) *Float {
	return defaultContext.New(neg, mant, exp, prec)
}

// New is like the package-level New but checks the exponent against c's
// range.
func (c Context) New(neg bool, mant *big.Int, exp int, prec uint) *Float {
	c = c.norm()
	checkPrec(prec)
	if mant == nil || mant.Sign() <= 0 {
		panic("apf: New requires a positive significand")
	}
	if uint(mant.BitLen()) != prec {
		panic(fmt.Sprintf("apf: significand is %d bits, precision is %d", mant.BitLen(), prec))
	}
	if e := exp + int(prec); e < c.MinExp || e > c.MaxExp {
		panic(fmt.Sprintf("apf: exponent %d outside [%d, %d]", e, c.MinExp, c.MaxExp))
	}
	return &Float{form: formFinite, neg: neg, prec: prec, exp: exp, mant: new(big.Int).Set(mant)}
}

// IsNaN reports whether x is NaN.
func (x *Float) IsNaN() bool { return x.form == formNaN }

// IsInf reports whether x is an infinity of either sign.
func (x *Float) IsInf() bool { return x.form == formInf }

// IsZero reports whether x is a zero of either sign.
func (x *Float) IsZero() bool { return x.form == formZero }

// IsFinite reports whether x is a finite value, which includes the zeros.
func (x *Float) IsFinite() bool { return x.form == formZero || x.form == formFinite }

// Signbit reports whether x carries a negative sign. It is false for NaN
// and true for both -0 and negative values.
func (x *Float) Signbit() bool { return x.form != formNaN && x.neg }

// Sign returns -1 if x is negative, +1 if x is positive, and 0 if x is a
// zero of either sign or NaN.
func (x *Float) Sign() int {
	switch x.form {
	case formNaN, formZero:
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Prec returns x's precision in bits. NaN, infinities and zeros carry no
// precision; for those Prec returns 0.
func (x *Float) Prec() uint {
	if x.form != formFinite {
		return 0
	}
	return x.prec
}

// Exp returns the magnitude exponent of x: the unique e with
// 2^(e-1) <= |x| < 2^e, so Exp of 1.0 is 1. The second result is false for
// NaN, infinities and zeros, which have no exponent.
func (x *Float) Exp() (int, bool) {
	if x.form != formFinite {
		return 0, false
	}
	return x.exp + int(x.prec), true
}

// MantExp returns the written form of a finite nonzero x: a copy of the
// significand and the exponent such that x = ±mant × 2^exp, with mant
// exactly Prec bits wide. ok is false for NaN, infinities and zeros.
func (x *Float) MantExp() (mant *big.Int, exp int, ok bool) {
	if x.form != formFinite {
		return nil, 0, false
	}
	return new(big.Int).Set(x.mant), x.exp, true
}

// Significand returns a copy of x's significand, or nil if x is NaN,
// infinite or zero.
func (x *Float) Significand() *big.Int {
	if x.form != formFinite {
		return nil
	}
	return new(big.Int).Set(x.mant)
}

// Neg returns x with the sign flipped. It is always exact: NaN stays NaN,
// infinities and zeros swap sign, and finite values keep their precision.
func (x *Float) Neg() *Float {
	if x.form == formNaN {
		return x
	}
	y := *x
	y.neg = !x.neg
	return &y
}

// Abs returns x with a positive sign. Like Neg it is always exact.
func (x *Float) Abs() *Float {
	if x.form == formNaN || !x.neg {
		return x
	}
	y := *x
	y.neg = false
	return &y
}

// String formats x for debugging: the special values print as NaN,
// ±Infinity and ±0.0, finite values as a hexadecimal significand and a
// binary exponent, e.g. 1.5 at precision 2 is "0x3p-1". This is not a
// decimal formatter; for exact output go through Rat.
func (x *Float) String() string {
	switch x.form {
	case formNaN:
		return "NaN"
	case formInf:
		if x.neg {
			return "-Infinity"
		}
		return "Infinity"
	case formZero:
		if x.neg {
			return "-0.0"
		}
		return "0.0"
	}
	sign := ""
	if x.neg {
		sign = "-"
	}
	return fmt.Sprintf("%s0x%xp%+d", sign, x.mant, x.exp)
}
