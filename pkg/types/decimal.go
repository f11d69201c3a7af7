package types

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// maxPlainExponent bounds the exponents FormatValue renders in plain notation.
const maxPlainExponent = 64

// CompareDecimal orders a and b like a.Cmp(b). decimal rescales both
// operands to a common exponent before comparing, which never finishes for
// input such as 1e2000000000, so operands of different magnitude are
// ordered by sign and magnitude alone.
func CompareDecimal(a, b decimal.Decimal) int {
	sa, sb := a.Sign(), b.Sign()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	case sa == 0:
		return 0
	}
	ma, mb := magnitude(a), magnitude(b)
	switch {
	case ma < mb:
		return -sa
	case ma > mb:
		return sa
	}
	// Equal magnitudes keep the exponent gap within the digit counts.
	return a.Cmp(b)
}

// magnitude returns k with 10^(k-1) <= |d| < 10^k. d must be non-zero.
func magnitude(d decimal.Decimal) int64 {
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return int64(digits) + int64(d.Exponent())
}

// FormatValue renders d in plain notation, or as <coefficient>e<exponent>
// when the exponent is too large to expand.
func FormatValue(d decimal.Decimal) string {
	if exp := d.Exponent(); exp > maxPlainExponent || exp < -maxPlainExponent {
		return d.Coefficient().String() + "e" + strconv.FormatInt(int64(exp), 10)
	}
	return d.String()
}
