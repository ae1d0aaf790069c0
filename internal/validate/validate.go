// Package validate holds the input checks and sanitization applied to raw
// user input before it reaches a search.
package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	identifierPattern  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	countryCodePattern = regexp.MustCompile(`^[A-Z.]{2,4}$`)
)

// Identifier reports whether input looks like a player id: a non-empty
// string or number made only of ASCII letters and digits.
func Identifier(input any) bool {
	if isFalsy(input) {
		return false
	}
	s, ok := stringOrNumber(input)
	if !ok {
		return false
	}
	return identifierPattern.MatchString(s)
}

// CountryCode reports whether input is a 2-4 character code of letters and
// periods, compared case-insensitively ("USA", "usa", "D.R.").
func CountryCode(input any) bool {
	s, ok := input.(string)
	if !ok || s == "" {
		return false
	}
	return countryCodePattern.MatchString(strings.ToUpper(s))
}

func stringOrNumber(input any) (string, bool) {
	switch v := input.(type) {
	case string:
		return v, true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return formatNumber(float64(v), 32), true
	case float64:
		return formatNumber(v, 64), true
	default:
		return "", false
	}
}

// formatNumber writes v the way a number is shown as text in the browser:
// plain decimals, with exponent notation from 1e21 up and below 1e-6.
func formatNumber(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, bitSize)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, bitSize), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// isFalsy mirrors the empty-value checks applied to form input: nil, "",
// false, zero and NaN carry no usable value.
func isFalsy(input any) bool {
	switch v := input.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float32:
		return v == 0 || math.IsNaN(float64(v))
	case float64:
		return v == 0 || math.IsNaN(v)
	case int:
		return v == 0
	case int8:
		return v == 0
	case int16:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case uint:
		return v == 0
	case uint8:
		return v == 0
	case uint16:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	}
	return false
}
