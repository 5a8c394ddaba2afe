package apf

import "math/big"

// Div returns x ÷ y rounded to prec bits in the given mode. Binary
// quotients generally don't terminate, so the quotient is computed with a
// few guard bits beyond prec and the remainder becomes the sticky bit;
// the rounding engine does the rest.
func Div(x, y *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.div(x, y, prec, mode)
}

// Div returns x ÷ y at the Context's precision and mode.
func (c Context) Div(x, y *Float) (*Float, Accuracy) {
	c = c.norm()
	return c.div(x, y, c.Prec, c.Mode)
}

func (c Context) div(x, y *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	checkPrec(prec)
	neg := x.neg != y.neg

	switch {
	case x.form == formNaN || y.form == formNaN:
		return NaN(), Exact
	case x.form == formInf && y.form == formInf:
		// ∞ ÷ ∞ is indeterminate.
		return NaN(), Exact
	case x.form == formInf:
		return Inf(neg), Exact
	case y.form == formInf:
		return Zero(neg), Exact
	case x.form == formZero && y.form == formZero:
		// 0 ÷ 0 is indeterminate.
		return NaN(), Exact
	case x.form == formZero:
		return Zero(neg), Exact
	case y.form == formZero:
		// A finite value over an exact zero: the signed infinity,
		// not a failure.
		return Inf(neg), Exact
	}

	return c.quo(neg, x.mant, x.exp, y.mant, y.exp, prec, mode)
}

// quo rounds (xm × 2^xe) / (ym × 2^ye) for positive significands. It scales
// the numerator so the integer quotient carries at least two bits beyond
// prec, satisfying the rounding engine's sticky contract.
func (c Context) quo(neg bool, xm *big.Int, xe int, ym *big.Int, ye int, prec uint, mode RoundingMode) (*Float, Accuracy) {
	s := int(prec) + 3 + ym.BitLen() - xm.BitLen()
	if s < 0 {
		s = 0
	}
	n := new(big.Int).Lsh(xm, uint(s))
	q, r := new(big.Int).QuoRem(n, ym, new(big.Int))
	return c.round(neg, q, xe-s-ye, r.Sign() != 0, prec, mode)
}
