package geometry

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f the way the textual representations of Point,
// Vector and Ball expect: shortest round-trip digits, a trailing ".0" on
// integral values, exponent notation outside [1e-4, 1e16).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		exp := decimalExponent(f)
		if exp < minPlainExponent || exp >= maxPlainExponent {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// decimalExponent returns the exponent of f's shortest scientific form.
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	idx := strings.IndexByte(s, 'e')
	exp, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		panic(err)
	}
	return exp
}
