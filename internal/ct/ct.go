// Package ct provides branch-free byte comparisons.
//
// Each comparison returns an all-ones (0xff) or all-zero (0x00)
// byte mask instead of a bool so that callers can blend results
// with AND/OR rather than branching on them.
package ct

// Nonzero returns 0xff if x != 0 and 0x00 otherwise.
//
// If x != 0, the subtraction wraps and sets every bit in [15:8];
// shifting by 8 leaves 0xff. If x == 0 the result is zero.
func Nonzero(x byte) byte {
	return byte((0 - uint16(x)) >> 8)
}

// Eq returns 0xff if x == y and 0x00 otherwise.
func Eq(x, y byte) byte {
	return ^Nonzero(x ^ y)
}

// Gt returns 0xff if x > y and 0x00 otherwise.
//
// If x > y, the subtraction wraps and bits [15:8] are all set, so
// the shift leaves 0xff. Otherwise bits [15:8] are all zero.
func Gt(x, y byte) byte {
	return byte((uint16(y) - uint16(x)) >> 8)
}

// Ge returns 0xff if x >= y and 0x00 otherwise.
func Ge(x, y byte) byte {
	return ^Gt(y, x)
}

// Lt returns 0xff if x < y and 0x00 otherwise.
func Lt(x, y byte) byte {
	return Gt(y, x)
}

// Le returns 0xff if x <= y and 0x00 otherwise.
func Le(x, y byte) byte {
	return Ge(y, x)
}
