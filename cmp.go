package apf

import "math/big"

// cmp.go implements the two orderings: the numeric one, which follows the
// extended reals and leaves NaN unordered, and the total one, which sorts
// anything and is what deduplication wants.

// Cmp compares x and y numerically, returning -1, 0 or +1. If either
// operand is NaN there is no answer: the comparison returns 0 with ok
// false. The two zeros compare equal regardless of sign, and values held
// at different precisions compare by value alone.
func Cmp(x, y *Float) (r int, ok bool) {
	if x.form == formNaN || y.form == formNaN {
		return 0, false
	}
	xs, ys := x.ordSign(), y.ordSign()
	if xs != ys {
		return cmpInt(xs, ys), true
	}
	switch {
	case x.form == formInf && y.form == formInf:
		return 0, true
	case x.form == formInf:
		return cmpInt(xs, 0), true
	case y.form == formInf:
		return cmpInt(0, ys), true
	case x.form == formZero || y.form == formZero:
		// Same ordSign and at least one zero means both are zero.
		return 0, true
	}
	r = cmpAbs(x, y)
	if x.neg {
		r = -r
	}
	return r, true
}

// Equal reports whether x and y compare numerically equal. It is false
// whenever either operand is NaN, including Equal(NaN, NaN).
func Equal(x, y *Float) bool {
	r, ok := Cmp(x, y)
	return ok && r == 0
}

// TotalCmp orders every pair of Floats, for sorting: NaN first as a single
// class, then -Infinity, negative values, -0, +0, positive values, and
// +Infinity. Unlike Cmp it separates the zero signs; finite values still
// compare by value, so the same number at two precisions ties.
func TotalCmp(x, y *Float) int {
	xr, yr := x.totalRank(), y.totalRank()
	if xr != yr {
		return cmpInt(xr, yr)
	}
	if x.form != formFinite {
		return 0
	}
	r := cmpAbs(x, y)
	if x.neg {
		r = -r
	}
	return r
}

// ordSign collapses a non-NaN Float to the sign used for numeric ordering:
// both zeros count as 0.
func (x *Float) ordSign() int {
	if x.form == formZero {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// totalRank buckets values for TotalCmp. Finite negatives and positives
// each share a bucket and are ordered by cmpAbs afterwards.
func (x *Float) totalRank() int {
	switch x.form {
	case formNaN:
		return 0
	case formInf:
		if x.neg {
			return 1
		}
		return 6
	case formZero:
		if x.neg {
			return 3
		}
		return 4
	}
	if x.neg {
		return 2
	}
	return 5
}

// cmpAbs compares the magnitudes of two finite nonzero Floats. The
// magnitude exponents decide unless they agree, in which case the
// significands are aligned to a common exponent and compared exactly.
func cmpAbs(x, y *Float) int {
	xe, ye := x.exp+int(x.prec), y.exp+int(y.prec)
	if xe != ye {
		return cmpInt(xe, ye)
	}
	// Same magnitude exponent: align the lower lsb exponent up.
	switch d := x.exp - y.exp; {
	case d > 0:
		a := new(big.Int).Lsh(x.mant, uint(d))
		return a.Cmp(y.mant)
	case d < 0:
		b := new(big.Int).Lsh(y.mant, uint(-d))
		return x.mant.Cmp(b)
	}
	return x.mant.Cmp(y.mant)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
