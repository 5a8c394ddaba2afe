// package arith provides the low-level big.Int bit plumbing shared by the
// rounding engine: splitting a magnitude at a precision boundary into a
// truncated part, a round bit and a sticky bit, without materialising the
// discarded tail as its own number.
package arith

import "math/big"

var one = big.NewInt(1)

// Split truncates the bottom n bits from m, returning the (freshly
// allocated) quotient m >> n, the round bit (bit n-1 of m), and whether any
// of the bits below the round bit are set. m must be non-negative and n at
// least 1. m is not modified.
func Split(m *big.Int, n uint) (q *big.Int, rbit uint, rest bool) {
	q = new(big.Int).Rsh(m, n)
	rbit = m.Bit(int(n - 1))
	rest = AnyBelow(m, n-1)
	return q, rbit, rest
}

// AnyBelow reports whether any of the lowest n bits of m are set. m must be
// non-negative.
func AnyBelow(m *big.Int, n uint) bool {
	if n == 0 || m.Sign() == 0 {
		return false
	}
	return m.TrailingZeroBits() < n
}

// Pow2 returns 2^n as a new big.Int.
func Pow2(n uint) *big.Int {
	return new(big.Int).Lsh(one, n)
}

// IsPow2 reports whether m is an exact power of two (including 2^0 = 1).
func IsPow2(m *big.Int) bool {
	return m.Sign() > 0 && m.TrailingZeroBits() == uint(m.BitLen()-1)
}
