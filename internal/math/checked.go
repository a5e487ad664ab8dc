package math

import (
	"fmt"
	stdmath "math"
)

// Checked signed arithmetic for ledger amounts. Every running total in the
// engine is a plain int64 in base units; an overflow here means a corrupted
// book, so callers treat these errors as fatal to the triggering operation.

// AddInt64 returns a + b, failing on signed overflow
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > stdmath.MaxInt64-b) || (b < 0 && a < stdmath.MinInt64-b) {
		return 0, fmt.Errorf("int64 overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// SubInt64 returns a - b, failing on signed overflow
func SubInt64(a, b int64) (int64, error) {
	if (b < 0 && a > stdmath.MaxInt64+b) || (b > 0 && a < stdmath.MinInt64+b) {
		return 0, fmt.Errorf("int64 overflow: %d - %d", a, b)
	}
	return a - b, nil
}
