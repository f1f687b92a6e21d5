package timeit

import (
	"math"
	"strconv"
)

// Scientific renders a nanosecond count in engineering notation: a mantissa
// with three decimals, then "e" and an exponent constrained to multiples of 3
// (no unit suffix, no "+", no zero padding). Zero renders as "0.0e0" and a
// negative count renders as the positive count with a leading minus sign.
func Scientific(ns int64) string {
	if ns == 0 {
		return "0.0e0"
	}
	if ns < 0 {
		return "-" + Scientific(-ns)
	}

	value := float64(ns)
	exp3 := int(math.Floor(math.Log10(value)/3.0)) * 3
	scaled := value / math.Pow(10, float64(exp3))

	// Log10 lands a hair under exact powers of 1000, which would print a
	// 1000.000 mantissa; keep the mantissa in [1, 1000).
	if scaled >= 1000 {
		scaled /= 1000
		exp3 += 3
	} else if scaled < 1 {
		scaled *= 1000
		exp3 -= 3
	}

	return strconv.FormatFloat(scaled, 'f', 3, 64) + "e" + strconv.Itoa(exp3)
}
