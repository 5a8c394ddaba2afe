package apf

import "math/big"

// add.go implements addition and subtraction. Subtraction is addition with
// the second operand's sign flipped, so both share one implementation: the
// special-value table first, then exact big.Int arithmetic on aligned
// significands, then the rounding engine. When the operands' exponents are
// too far apart to overlap, the smaller operand collapses into the sticky
// bit instead of being shifted into place, which keeps the cost bounded by
// the precisions involved rather than by the exponent gap.

// Add returns x + y rounded to prec bits in the given mode, along with the
// Accuracy of the result against the exact sum.
func Add(x, y *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.add(x, y, prec, mode, false)
}

// Sub returns x - y rounded to prec bits in the given mode.
func Sub(x, y *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.add(x, y, prec, mode, true)
}

// Add returns x + y at the Context's precision and mode.
func (c Context) Add(x, y *Float) (*Float, Accuracy) {
	c = c.norm()
	return c.add(x, y, c.Prec, c.Mode, false)
}

// Sub returns x - y at the Context's precision and mode.
func (c Context) Sub(x, y *Float) (*Float, Accuracy) {
	c = c.norm()
	return c.add(x, y, c.Prec, c.Mode, true)
}

func (c Context) add(x, y *Float, prec uint, mode RoundingMode, sub bool) (*Float, Accuracy) {
	c = c.norm()
	checkPrec(prec)
	yneg := y.neg != sub // effective sign of the second operand

	switch {
	case x.form == formNaN || y.form == formNaN:
		return NaN(), Exact
	case x.form == formInf && y.form == formInf:
		if x.neg != yneg {
			// ∞ − ∞ is indeterminate.
			return NaN(), Exact
		}
		return Inf(x.neg), Exact
	case x.form == formInf:
		return Inf(x.neg), Exact
	case y.form == formInf:
		return Inf(yneg), Exact
	case x.form == formZero && y.form == formZero:
		// The sign of an exact zero sum: equal signs keep the sign,
		// opposite signs cancel to +0 in every mode except
		// ToNegativeInf, which prefers -0.
		if x.neg == yneg {
			return Zero(x.neg), Exact
		}
		return Zero(mode == ToNegativeInf), Exact
	case x.form == formZero:
		return c.round(yneg, y.mant, y.exp, false, prec, mode)
	case y.form == formZero:
		return c.round(x.neg, x.mant, x.exp, false, prec, mode)
	}

	// Both finite and nonzero. Arrange for x to hold the higher lsb
	// exponent so alignment only ever shifts x's significand left.
	xm, xe, xneg := x.mant, x.exp, x.neg
	ym, ye := y.mant, y.exp
	if xe < ye {
		xm, ym = ym, xm
		xe, ye = ye, xe
		xneg, yneg = yneg, xneg
	}

	// If y sits entirely below x's guard region it cannot influence
	// anything but the sticky bit.
	guard := int(prec) + 2
	if ye+ym.BitLen() <= xe-guard {
		w := new(big.Int).Lsh(xm, uint(guard))
		if xneg != yneg {
			// The exact value is w×2^(xe-guard) minus something
			// strictly smaller than one ulp of w, i.e. w-1 plus a
			// nonzero tail.
			w.Sub(w, oneInt)
		}
		return c.round(xneg, w, xe-guard, true, prec, mode)
	}

	s := new(big.Int).Lsh(xm, uint(xe-ye))
	neg := xneg
	if xneg == yneg {
		s.Add(s, ym)
	} else {
		s.Sub(s, ym)
		switch s.Sign() {
		case 0:
			// Exact cancellation: same sign rule as (+0) + (-0).
			return Zero(mode == ToNegativeInf), Exact
		case -1:
			s.Neg(s)
			neg = yneg
		}
	}
	return c.round(neg, s, ye, false, prec, mode)
}
