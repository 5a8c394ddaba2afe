package apf

import "math/big"

// Sqrt returns the square root of x rounded to prec bits in the given
// mode. The significand is scaled to an even exponent with enough guard
// bits, the integer square root is exact, and a nonzero remainder becomes
// the sticky bit. The root of a negative value is NaN, and the root of a
// signed zero keeps its sign.
func Sqrt(x *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.sqrt(x, prec, mode)
}

// Sqrt returns the square root of x at the Context's precision and mode.
func (c Context) Sqrt(x *Float) (*Float, Accuracy) {
	c = c.norm()
	return c.sqrt(x, c.Prec, c.Mode)
}

func (c Context) sqrt(x *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	checkPrec(prec)

	switch x.form {
	case formNaN:
		return NaN(), Exact
	case formInf:
		if x.neg {
			return NaN(), Exact
		}
		return Inf(false), Exact
	case formZero:
		return Zero(x.neg), Exact
	}
	if x.neg {
		// Negative finite: a domain error, which is a defined result.
		return NaN(), Exact
	}

	// Scale x's significand so its exponent is even and the integer root
	// comes out at least two bits beyond prec.
	s := 2*(int(prec)+2) - x.mant.BitLen()
	if s < 0 {
		s = 0
	}
	if (x.exp-s)%2 != 0 {
		s++
	}
	m := new(big.Int).Lsh(x.mant, uint(s))
	q := new(big.Int).Sqrt(m)
	r := new(big.Int).Mul(q, q)
	r.Sub(m, r)
	return c.round(false, q, (x.exp-s)/2, r.Sign() != 0, prec, mode)
}
