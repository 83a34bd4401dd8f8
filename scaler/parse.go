package scaler

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParsedIngredient is one ingredient line split into an optional quantity, an
// optional unit and the remaining description. It is built by Parse and is
// never modified afterwards.
type ParsedIngredient struct {
	// Original is the trimmed source line.
	Original string
	// Quantity is only meaningful when HasQuantity is set.
	Quantity    float64
	HasQuantity bool
	// RangeEnd is only meaningful when IsRange is set.
	IsRange  bool
	RangeEnd float64
	// Unit is a lowercase vocabulary entry or empty.
	Unit string
	// Ingredient falls back to Original when nothing is left after the
	// quantity and unit are removed.
	Ingredient string
}

// Parse splits a cleaned ingredient line into quantity, unit and description.
// It never fails: a line without a leading quantity comes back with
// HasQuantity unset and Ingredient equal to Original.
func Parse(line string) ParsedIngredient {
	original := strings.TrimSpace(line)
	p := ParsedIngredient{Original: original, Ingredient: original}

	n := scanNumber(original)
	if n == 0 {
		return p
	}
	p.HasQuantity = true
	p.Quantity = ParseFraction(original[:n])
	rest := original[n:]

	if end, m := scanRangeTail(rest); m > 0 {
		p.IsRange = true
		p.RangeEnd = ParseFraction(end)
		rest = rest[m:]
	}

	p.Unit, rest = cutUnit(rest[skipSpace(rest, 0):])
	if residue := strings.TrimSpace(rest); residue != "" {
		p.Ingredient = residue
	}
	return p
}

// ParseFraction converts quantity text to a number. It accepts tabulated
// fractions, mixed numbers ("1 1/2"), bare fractions ("3/4") and decimals.
// Anything else, including a zero denominator, yields 0.
func ParseFraction(text string) float64 {
	text = strings.TrimSpace(text)
	for _, f := range fractions {
		if f.text == text {
			return f.value
		}
	}

	if fields := strings.Fields(text); len(fields) == 2 && isDigits(fields[0]) {
		if frac, ok := parseSimpleFraction(fields[1]); ok {
			whole, _ := strconv.ParseFloat(fields[0], 64)
			return whole + frac
		}
	}

	if v, ok := parseSimpleFraction(text); ok {
		return v
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseSimpleFraction(text string) (float64, bool) {
	num, den, ok := strings.Cut(text, "/")
	if !ok || !isDigits(num) || !isDigits(den) {
		return 0, false
	}
	n, _ := strconv.ParseFloat(num, 64)
	d, _ := strconv.ParseFloat(den, 64)
	if d == 0 {
		return 0, false
	}
	return n / d, true
}

// scanNumber returns the byte length of the quantity token at the start of s,
// or 0 if s does not start with a digit. Mixed numbers are tried before
// decimals and bare fractions.
func scanNumber(s string) int {
	i := digitsEnd(s, 0)
	if i == 0 {
		return 0
	}

	if j := skipSpace(s, i); j > i {
		if k := digitsEnd(s, j); k > j && k < len(s) && s[k] == '/' {
			if l := digitsEnd(s, k+1); l > k+1 {
				return l
			}
		}
	}

	if i < len(s) && (s[i] == '.' || s[i] == '/') {
		if j := digitsEnd(s, i+1); j > i+1 {
			return j
		}
	}
	return i
}

// rangeSeparators join the two bounds of a range quantity.
var rangeSeparators = []string{"-", "–", "—"}

// scanRangeTail looks for a separator and a second quantity after the first
// one. It returns the second quantity's text and the number of bytes of s
// consumed, or 0 when s does not continue a range.
func scanRangeTail(s string) (string, int) {
	j := skipSpace(s, 0)
	matched := false
	for _, sep := range rangeSeparators {
		if strings.HasPrefix(s[j:], sep) {
			j += len(sep)
			matched = true
			break
		}
	}
	if !matched {
		if !hasToSeparator(s[j:]) {
			return "", 0
		}
		j += len("to")
	}

	j = skipSpace(s, j)
	n := scanNumber(s[j:])
	if n == 0 {
		return "", 0
	}
	return s[j : j+n], j + n
}

// hasToSeparator reports whether s starts with the word "to" followed by a
// space or a digit, so "2 tomatoes" is not read as a range.
func hasToSeparator(s string) bool {
	if len(s) < 3 || !strings.EqualFold(s[:2], "to") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[2:])
	return unicode.IsSpace(r) || isDigit(s[2])
}

// unitBoundary lists the punctuation that may directly follow a unit token.
const unitBoundary = ".,;:()/"

// cutUnit strips the first vocabulary entry that s starts with, provided the
// entry ends at a token boundary. An abbreviation dot after the unit is
// dropped along with it.
func cutUnit(s string) (string, string) {
	for _, u := range units {
		if !matchUnitAt(s, u) || !atTokenBoundary(s, len(u)) {
			continue
		}
		return u, strings.TrimPrefix(s[len(u):], ".")
	}
	return "", s
}

func matchUnitAt(s, unit string) bool {
	return len(s) >= len(unit) && strings.EqualFold(s[:len(unit)], unit)
}

func atTokenBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r) || strings.ContainsRune(unitBoundary, r)
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func digitsEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isDigits(s string) bool {
	return s != "" && digitsEnd(s, 0) == len(s)
}
