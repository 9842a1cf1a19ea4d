package calc

import (
	"math"
	"strconv"
)

const (
	infinityText = "Infinity"
	nanText      = "NaN"
)

// Format renders v for the display. Integral values drop the fractional part,
// other finite values use the shortest decimal that round-trips, and
// non-finite values are spelled out.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return nanText
	case math.IsInf(v, 1):
		return infinityText
	case math.IsInf(v, -1):
		return "-" + infinityText
	case v == math.Trunc(v):
		// -0 would otherwise print as "-0".
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
