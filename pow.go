package apf

import (
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/pfcm/apf/internal/arith"
)

// PowInt returns x raised to the integer power n, rounded to prec bits in
// the given mode. For n ≥ 0 the power of a finite x is expanded exactly
// with big.Int arithmetic before rounding; for n < 0 the reciprocal of the
// exact expansion is taken with guard bits, so the result is still
// correctly rounded. The cost grows with n × Prec(x), which is the price
// of exactness; powers that are certain to land outside the exponent range
// clamp without expanding anything.
func PowInt[T constraints.Signed](x *Float, n T, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.powInt(x, int64(n), prec, mode)
}

// PowInt returns x^n at the Context's precision and mode.
func (c Context) PowInt(x *Float, n int64) (*Float, Accuracy) {
	c = c.norm()
	return c.powInt(x, n, c.Prec, c.Mode)
}

func (c Context) powInt(x *Float, n int64, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	checkPrec(prec)

	if n == 0 {
		// x^0 is 1 for every x, NaN included.
		return &Float{form: formFinite, prec: prec, exp: 1 - int(prec), mant: arith.Pow2(prec - 1)}, Exact
	}
	odd := n&1 != 0
	recip := n < 0

	switch x.form {
	case formNaN:
		return NaN(), Exact
	case formInf:
		neg := x.neg && odd
		if recip {
			return Zero(neg), Exact
		}
		return Inf(neg), Exact
	case formZero:
		neg := x.neg && odd
		if recip {
			// 1/0^k: the signed infinity, as for division by zero.
			return Inf(neg), Exact
		}
		return Zero(neg), Exact
	}

	k := n
	if recip {
		k = -k
	}
	if n == -1<<63 {
		// -k overflowed. The estimates below only need a magnitude of
		// the right order; the exact k matters solely to expansions,
		// and no expansion of that size is representable anyway.
		k = 1 << 62
	}
	neg := x.neg && odd
	magX := x.exp + int(x.prec)

	// Powers of two stay one bit wide however large k gets; the rounding
	// engine's range clamps take care of the extremes.
	if arith.IsPow2(x.mant) {
		e := satMul64(k, int64(magX-1))
		if recip {
			e = -e
		}
		return c.round(neg, oneInt, int(e), false, prec, mode)
	}

	// Exponent estimate: |x| lies in [2^(magX-1), 2^magX), so |x|^k lies
	// in [2^(k(magX-1)), 2^(k magX)), reciprocated for negative n.
	// A power certain to be out of range clamps here, before any
	// expansion.
	lo, hi := satMul64(k, int64(magX-1)), satMul64(k, int64(magX))
	if recip {
		lo, hi = -hi, -lo
	}
	if lo > int64(c.MaxExp)+1 {
		return c.overflow(neg, prec, mode)
	}
	if hi < int64(c.MinExp)-1 {
		// Certainly below half the smallest representable value.
		return c.underflow(neg, oneInt, false, c.MinExp-2, prec, mode)
	}
	// The estimate is blind when |x| is just off 1 (magX of 0 or 1), but
	// even then |log2 x| is at least 2^-Prec(x), so a large enough k is
	// still certain to leave the range long before an exact expansion
	// would be affordable.
	if (magX == 0 || magX == 1) && bits.Len64(uint64(k)) > int(x.prec)+32 {
		over := magX == 1 // |x| > 1 drifts up, |x| < 1 drifts down
		if recip {
			over = !over
		}
		if over {
			return c.overflow(neg, prec, mode)
		}
		return c.underflow(neg, oneInt, false, c.MinExp-2, prec, mode)
	}

	p := new(big.Int).Exp(x.mant, big.NewInt(k), nil)
	e := satMul64(int64(x.exp), k)
	if !recip {
		return c.round(neg, p, int(e), false, prec, mode)
	}
	// 1 / (p × 2^e) with guard bits, exactly like division.
	return c.quo(neg, oneInt, 0, p, int(e), prec, mode)
}

// satMul64 multiplies with saturation at ±2^62, wide enough that exponent
// estimates stay ordered without ever overflowing an int64.
func satMul64(a, b int64) int64 {
	const lim = 1 << 62
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a || p >= lim || p <= -lim {
		if (a > 0) == (b > 0) {
			return lim
		}
		return -lim
	}
	return p
}
