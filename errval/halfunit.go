package errval

import "math"

// maxDecimalScan bounds the decimal-place scan of the half-unit heuristic.
// float64 carries at most 17 significant decimal digits; the margin covers
// subnormals without risking an unbounded loop on values whose scaled form
// never becomes integral.
const maxDecimalScan = 64

// halfUnitError computes the half-unit default error of a literal: half of
// one unit in the last meaningful decimal place of its decimal
// representation.
//
// For an integral x the last meaningful place is the lowest non-zero digit:
// the trailing-zero count c gives error 5×10^(c−1), so 100 → 50 and 1 → 0.5.
// For a fractional x the decimal-place count c gives error 5×10^(−c−1), so
// 1.5 → 0.05. Zero has no meaningful digits; it is treated like a one-digit
// integer (c = 0, error 0.5).
func halfUnitError[T Numeric](x T) float64 {
	f := math.Abs(float64(x))
	if f == 0 {
		return 0.5
	}

	if math.Trunc(f) == f {
		c := 0
		for math.Mod(f, 10) == 0 {
			c++
			f /= 10
		}
		return 5 * math.Pow(10, float64(c-1))
	}

	c := 0
	for math.Trunc(f) != f && c < maxDecimalScan {
		c++
		f *= 10
	}
	return 5 * math.Pow(10, float64(-c-1))
}
