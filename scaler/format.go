package scaler

import (
	"math"
	"strconv"
	"strings"
)

// FormatQuantity renders a scaled quantity the way a recipe would print it.
// Values close to a common fraction come out as "1/2" or "2 3/4"; anything
// else is rounded by magnitude with trailing zeros removed.
//
// Non-finite values are rendered by strconv as "NaN" or "+Inf" rather than
// being hidden. Negative values skip the fraction rules.
func FormatQuantity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if text, ok := nearestFraction(v); ok {
		return text
	}

	if v > 1 {
		whole := math.Floor(v)
		if text, ok := nearestFraction(v - whole); ok {
			return strconv.FormatFloat(whole, 'f', 0, 64) + " " + text
		}
	}

	switch {
	case v < 0.1:
		return trimZeros(strconv.FormatFloat(v, 'f', 3, 64))
	case v < 1:
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	case v < 10:
		return trimZeros(strconv.FormatFloat(v, 'f', 1, 64))
	default:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
}

func nearestFraction(v float64) (string, bool) {
	for _, f := range fractions {
		if math.Abs(v-f.value) < fractionTolerance {
			return f.text, true
		}
	}
	return "", false
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
