package apf

import (
	"fmt"
	"math/big"

	"github.com/pfcm/apf/internal/arith"
)

// RoundingMode selects which representable value stands in for a result
// that isn't exactly representable at the target precision.
type RoundingMode uint8

const (
	// ToNearestEven rounds to the closest representable value. A value
	// exactly halfway between two representable values goes to the one
	// whose lowest stored bit is zero.
	ToNearestEven RoundingMode = iota
	// ToZero truncates, discarding any bits beyond the target precision.
	ToZero
	// AwayFromZero steps to the next representable value away from zero
	// whenever any discarded bit is set.
	AwayFromZero
	// ToNegativeInf rounds towards negative infinity.
	ToNegativeInf
	// ToPositiveInf rounds towards positive infinity.
	ToPositiveInf
	// Exactly demands that no rounding happen at all: an inexact result
	// is a contract violation and panics. It's how callers assert that
	// a conversion or precision change loses nothing.
	Exactly
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToZero:
		return "ToZero"
	case AwayFromZero:
		return "AwayFromZero"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	case Exactly:
		return "Exactly"
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// Accuracy says how a rounded result compares to the exact value it stands
// for, using the convention of math/big: Below means the result is less
// than the exact value. Exact means no information was lost.
type Accuracy int8

const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return fmt.Sprintf("Accuracy(%d)", int8(a))
}

var oneInt = big.NewInt(1)

// incRound reports whether a truncated magnitude has to be bumped away from
// zero, given the sign of the value, the round bit, whether anything below
// the round bit is set, and the parity of the lowest kept bit. Callers deal
// with exact results and the Exactly mode before asking.
func incRound(mode RoundingMode, neg bool, rbit uint, rest, odd bool) bool {
	switch mode {
	case ToNearestEven:
		return rbit != 0 && (rest || odd)
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToNegativeInf:
		return neg
	case ToPositiveInf:
		return !neg
	}
	panic(fmt.Sprintf("apf: unknown rounding mode %d", uint8(mode)))
}

// round is the one rounding engine everything funnels through. The exact
// magnitude being rounded is mant × 2^exp plus, when sticky is set, an
// unknown nonzero tail strictly below 2^exp; neg gives the sign. round
// returns the value the mode selects at prec bits, and the Accuracy of that
// value relative to the exact signed input.
//
// When sticky is set mant must be wider than prec bits, so that the first
// discarded bit is a real bit of mant and the tail only ever feeds the
// sticky side of the decision. Callers that compute with guard bits
// (division, square root, rational conversion) arrange exactly that.
//
// round never modifies mant and never aliases it into the result.
func (c Context) round(neg bool, mant *big.Int, exp int, sticky bool, prec uint, mode RoundingMode) (*Float, Accuracy) {
	checkPrec(prec)
	bl := uint(mant.BitLen())
	if bl == 0 {
		if sticky {
			panic("apf: internal: sticky tail below a zero significand")
		}
		return Zero(neg), Exact
	}

	// Underflow is decided against the unrounded magnitude, which lies
	// in [2^(magExp-1), 2^magExp).
	if magExp := exp + int(bl); magExp < c.MinExp {
		return c.underflow(neg, mant, sticky, magExp, prec, mode)
	}

	var (
		q       *big.Int
		inc     bool
		inexact bool
	)
	if bl <= prec {
		if sticky {
			panic("apf: internal: sticky tail with too few significand bits")
		}
		q = new(big.Int).Lsh(mant, prec-bl)
		exp -= int(prec - bl)
	} else {
		drop := bl - prec
		var rbit uint
		var rest bool
		q, rbit, rest = arith.Split(mant, drop)
		rest = rest || sticky
		exp += int(drop)
		inexact = rbit != 0 || rest
		if inexact {
			if mode == Exactly {
				panic(fmt.Sprintf("apf: inexact result at precision %d with rounding mode Exactly", prec))
			}
			inc = incRound(mode, neg, rbit, rest, q.Bit(0) != 0)
		}
	}
	if inc {
		q.Add(q, oneInt)
		if uint(q.BitLen()) > prec {
			// Carried out of the top: q is now 2^prec.
			q.Rsh(q, 1)
			exp++
		}
	}
	if magExp := exp + int(prec); magExp > c.MaxExp {
		return c.overflow(neg, prec, mode)
	}
	acc := Exact
	if inexact {
		if inc {
			acc = Above
		} else {
			acc = Below
		}
		if neg {
			acc = -acc
		}
	}
	return &Float{form: formFinite, neg: neg, prec: prec, exp: exp, mant: q}, acc
}

// underflow clamps a magnitude known to be strictly below the smallest
// representable value 2^(MinExp-1). Depending on the mode's direction the
// result is a signed zero or the smallest finite value of that sign.
func (c Context) underflow(neg bool, mant *big.Int, sticky bool, magExp int, prec uint, mode RoundingMode) (*Float, Accuracy) {
	away := false
	switch mode {
	case ToNearestEven:
		// Halfway between zero and the smallest value is
		// 2^(MinExp-2); the tie goes to zero, the candidate with the
		// even significand.
		away = magExp == c.MinExp-1 && !(arith.IsPow2(mant) && !sticky)
	case ToZero:
	case AwayFromZero:
		away = true
	case ToNegativeInf:
		away = neg
	case ToPositiveInf:
		away = !neg
	case Exactly:
		panic(fmt.Sprintf("apf: result below exponent %d with rounding mode Exactly", c.MinExp))
	default:
		panic(fmt.Sprintf("apf: unknown rounding mode %d", uint8(mode)))
	}
	if away {
		acc := Above
		if neg {
			acc = Below
		}
		return &Float{
			form: formFinite,
			neg:  neg,
			prec: prec,
			exp:  c.MinExp - int(prec),
			mant: arith.Pow2(prec - 1),
		}, acc
	}
	acc := Below
	if neg {
		acc = Above
	}
	return Zero(neg), acc
}

// overflow clamps a magnitude whose exponent passed MaxExp. Modes pointing
// away from zero give the signed infinity; modes pointing towards zero give
// the largest finite value.
func (c Context) overflow(neg bool, prec uint, mode RoundingMode) (*Float, Accuracy) {
	away := false
	switch mode {
	case ToNearestEven, AwayFromZero:
		away = true
	case ToZero:
	case ToNegativeInf:
		away = neg
	case ToPositiveInf:
		away = !neg
	case Exactly:
		panic(fmt.Sprintf("apf: result above exponent %d with rounding mode Exactly", c.MaxExp))
	default:
		panic(fmt.Sprintf("apf: unknown rounding mode %d", uint8(mode)))
	}
	if away {
		acc := Above
		if neg {
			acc = Below
		}
		return Inf(neg), acc
	}
	acc := Below
	if neg {
		acc = Above
	}
	return &Float{
		form: formFinite,
		neg:  neg,
		prec: prec,
		exp:  c.MaxExp - int(prec),
		mant: new(big.Int).Sub(arith.Pow2(prec), oneInt),
	}, acc
}
