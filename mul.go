package apf

import "math/big"

// Mul returns x × y rounded to prec bits in the given mode. The product of
// two finite significands is exactly computable, so the only rounding
// happens in the engine.
func Mul(x, y *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	return defaultContext.mul(x, y, prec, mode)
}

// Mul returns x × y at the Context's precision and mode.
func (c Context) Mul(x, y *Float) (*Float, Accuracy) {
	c = c.norm()
	return c.mul(x, y, c.Prec, c.Mode)
}

func (c Context) mul(x, y *Float, prec uint, mode RoundingMode) (*Float, Accuracy) {
	c = c.norm()
	checkPrec(prec)
	neg := x.neg != y.neg

	switch {
	case x.form == formNaN || y.form == formNaN:
		return NaN(), Exact
	case x.form == formInf || y.form == formInf:
		if x.form == formZero || y.form == formZero {
			// 0 × ∞ is indeterminate.
			return NaN(), Exact
		}
		return Inf(neg), Exact
	case x.form == formZero || y.form == formZero:
		return Zero(neg), Exact
	}

	m := new(big.Int).Mul(x.mant, y.mant)
	return c.round(neg, m, x.exp+y.exp, false, prec, mode)
}
