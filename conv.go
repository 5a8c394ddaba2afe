package apf

import (
	"fmt"
	"math/big"

	"github.com/pfcm/apf/internal/arith"
)

// conv.go holds the exact bridges between Float and the big.Int/big.Rat
// collaborators, plus the precision-change operation. Construction from an
// exact value is always the same move: express it as a sign, magnitude and
// exponent and hand it to the rounding engine.

// NewFromInt returns a Float holding n exactly, at the smallest precision
// that fits: the bit length of n. Zero becomes +0.
func NewFromInt(n *big.Int) *Float {
	if n.Sign() == 0 {
		return Zero(false)
	}
	m := new(big.Int).Abs(n)
	prec := uint(m.BitLen())
	checkPrec(prec)
	return &Float{form: formFinite, neg: n.Sign() < 0, prec: prec, exp: 0, mant: m}
}

// FromInt rounds n to prec bits in the given mode.
func FromInt(n *big.Int, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.fromInt(n, prec, mode)
}

// FromInt rounds n at the Context's precision and mode.
func (c Context) FromInt(n *big.Int) (*Float, Accuracy) {
	c = c.norm()
	return c.fromInt(n, c.Prec, c.Mode)
}

func (c Context) fromInt(n *big.Int, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	if n.Sign() == 0 {
		return Zero(false), Exact
	}
	m := new(big.Int).Abs(n)
	return c.round(n.Sign() < 0, m, 0, false, prec, mode)
}

// FromRat rounds r to prec bits in the given mode. This is the uniform way
// to build a Float from any exact value: integers, halves, thirds, all go
// through the same quotient-with-guard-bits path and the same engine.
func FromRat(r *big.Rat, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.fromRat(r, prec, mode)
}

// FromRat rounds r at the Context's precision and mode.
func (c Context) FromRat(r *big.Rat) (*Float, Accuracy) {
	c = c.norm()
	return c.fromRat(r, c.Prec, c.Mode)
}

func (c Context) fromRat(r *big.Rat, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	if r.Sign() == 0 {
		return Zero(false), Exact
	}
	num := new(big.Int).Abs(r.Num())
	return c.quo(r.Sign() < 0, num, 0, r.Denom(), 0, prec, mode)
}

// Rat returns the exact value of x as a big.Rat, or nil when x is NaN or
// infinite: those have no rational value, and nil is the established way
// to say so. Both zeros become the plain rational zero, since big.Rat has
// no signed zero. The conversion is always lossless for finite x.
func (x *Float) Rat() *big.Rat {
	switch x.form {
	case formNaN, formInf:
		return nil
	case formZero:
		return new(big.Rat)
	}
	num := new(big.Int).Set(x.mant)
	if x.neg {
		num.Neg(num)
	}
	if x.exp >= 0 {
		num.Lsh(num, uint(x.exp))
		return new(big.Rat).SetInt(num)
	}
	return new(big.Rat).SetFrac(num, arith.Pow2(uint(-x.exp)))
}

// Int rounds x to an arbitrary-precision integer in the given mode,
// returning it with the Accuracy against the exact value. Zeros give 0
// exactly. NaN and the infinities have no integer to round to, so they are
// a contract violation and panic; in Exactly mode a fractional x panics
// too.
func (x *Float) Int(mode RoundingMode) (*big.Int, Accuracy) {
	switch x.form {
	case formNaN, formInf:
		panic(fmt.Sprintf("apf: cannot convert %v to an integer", x))
	case formZero:
		return new(big.Int), Exact
	}
	if x.exp >= 0 {
		q := new(big.Int).Lsh(x.mant, uint(x.exp))
		if x.neg {
			q.Neg(q)
		}
		return q, Exact
	}
	drop := uint(-x.exp)
	q, rbit, rest := arith.Split(x.mant, drop)
	if rbit == 0 && !rest {
		if x.neg {
			q.Neg(q)
		}
		return q, Exact
	}
	if mode == Exactly {
		panic(fmt.Sprintf("apf: %v is not an integer", x))
	}
	acc := Below
	if incRound(mode, x.neg, rbit, rest, q.Bit(0) != 0) {
		q.Add(q, oneInt)
		acc = Above
	}
	if x.neg {
		q.Neg(q)
		acc = -acc
	}
	return q, acc
}

// WithPrec re-rounds x to a new precision: the one code path for both
// reducing precision, which may round, and extending it, which is always
// exact. NaN, infinities and zeros pass through unchanged.
func (x *Float) WithPrec(prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.withPrec(x, prec, mode)
}

// Round re-rounds x to the Context's precision and mode.
func (c Context) Round(x *Float) (*Float, Accuracy) {
	c = c.norm()
	return c.withPrec(x, c.Prec, c.Mode)
}

func (c Context) withPrec(x *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	checkPrec(prec)
	if x.form != formFinite {
		return x, Exact
	}
	return c.round(x.neg, x.mant, x.exp, false, prec, mode)
}
