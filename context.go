package apf

import "fmt"

const (
	// DefaultPrec is the precision used when a Context doesn't name one.
	// 53 bits matches a float64 significand, which makes interoperating
	// with code that thinks in doubles unsurprising.
	DefaultPrec = 53
	// MinPrec and MaxPrec bound the precisions callers may request.
	// Asking for anything outside this range is a contract violation.
	MinPrec = 1
	MaxPrec = 1 << 30
	// DefaultMinExp and DefaultMaxExp bound the magnitude exponent (see
	// Float.Exp) of finite values under the default Context. The range
	// is generous, but small enough that every internal exponent
	// calculation stays comfortably inside an int.
	DefaultMinExp = -(1 << 30)
	DefaultMaxExp = 1 << 30
)

// Context fixes the parameters of a computation: the target precision and
// rounding mode for its operations and the exponent range finite results
// must fit in. A Context is a plain immutable value; to change a parameter,
// copy it. Passing the Context explicitly, rather than mutating package
// state, keeps concurrent computations independent of each other.
//
// The zero Context is usable and means: DefaultPrec bits, ToNearestEven,
// the default exponent range.
type Context struct {
	// Prec is the precision in bits for results of the Context's
	// operations. Zero means DefaultPrec.
	Prec uint
	// Mode is the rounding mode applied to inexact results.
	Mode RoundingMode
	// MinExp and MaxExp bound the magnitude exponent of finite results.
	// A result whose exponent would pass MaxExp clamps to infinity or
	// to the largest finite value, and one below MinExp clamps to zero
	// or to the smallest finite value, depending on which way the mode
	// points. Zero values mean DefaultMinExp and DefaultMaxExp.
	MinExp int
	MaxExp int
}

var defaultContext = Context{Prec: DefaultPrec, MinExp: DefaultMinExp, MaxExp: DefaultMaxExp}

// norm fills in defaults for zero fields.
func (c Context) norm() Context {
	if c.Prec == 0 {
		c.Prec = DefaultPrec
	}
	if c.MinExp == 0 {
		c.MinExp = DefaultMinExp
	}
	if c.MaxExp == 0 {
		c.MaxExp = DefaultMaxExp
	}
	return c
}

// checkPrec panics unless prec is a precision callers are allowed to ask
// for.
func checkPrec(prec uint) {
	if prec < MinPrec || prec > MaxPrec {
		panic(fmt.Sprintf("apf: precision %d outside [%d, %d]", prec, MinPrec, MaxPrec))
	}
}
