// Package format renders stored float32 values into user-facing text.
//
// The rules are a display contract, not core engine logic, but they are
// bit-exact: magnitude decides between scientific and fixed-point notation.
package format

import (
	"math"
	"strconv"
	"strings"
)

// sciThreshold is the magnitude at which output switches to scientific
// notation.
const sciThreshold = 1e9

// Float renders v per the display contract:
//
//   - |v| >= 1e9: normalized scientific notation with up to 5 fractional
//     digits, trailing zeros and a dangling decimal point stripped, exponent
//     with a two-digit minimum ("1.5e+09").
//   - otherwise fixed-point: 1 decimal place when v equals its integer
//     truncation ("3.0"), else 2 ("3.14").
func Float(v float32) string {
	f := float64(v)

	if math.Abs(f) >= sciThreshold {
		s := strconv.FormatFloat(f, 'e', 5, 32)
		mantissa, exp, _ := strings.Cut(s, "e")
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimRight(mantissa, ".")
		return mantissa + "e" + exp
	}

	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 32)
	}
	return strconv.FormatFloat(f, 'f', 2, 32)
}

// Floats renders a value sequence, one string per value.
func Floats(vals []float32) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = Float(v)
	}
	return out
}
