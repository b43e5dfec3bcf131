// File: parse.go
// Title: Number and Boolean Parsing
// Description: Parses trimmed String values into numbers and booleans.
//              Parsing never panics: on failure the caller's fallback is
//              returned together with false.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-19
// Modified: 2026-09-19
//
// Change History:
// - 2026-09-19 v0.2.0: Initial implementation

package conv

import (
	"math"

	"github.com/msto63/textkit/foundation/text/str"
)

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return 16
	}
}

// parseDigits parses an unsigned run of digits with overflow detection.
func parseDigits(s str.String, radix int) (uint64, bool) {
	if s.IsEmpty() || radix < 2 || radix > 16 {
		return 0, false
	}
	r := uint64(radix)
	var v uint64
	for _, c := range s.All() {
		d := digitValue(c)
		if d >= radix {
			return 0, false
		}
		if v > (math.MaxUint64-uint64(d))/r {
			return 0, false
		}
		v = v*r + uint64(d)
	}
	return v, true
}

// splitSign removes a leading '+' or '-'.
func splitSign(s str.String) (str.String, bool) {
	if s.IsEmpty() {
		return s, false
	}
	switch s.At(0) {
	case '-':
		return s.SubString(1, str.ToEnd), true
	case '+':
		return s.SubString(1, str.ToEnd), false
	}
	return s, false
}

// ParseInt parses an optionally signed decimal integer.
func ParseInt(s str.String, fallback int64) (int64, bool) {
	digits, neg := splitSign(s.Trimmed())
	mag, ok := parseDigits(digits, 10)
	if !ok {
		return fallback, false
	}
	if neg {
		if mag > 1<<63 {
			return fallback, false
		}
		return -int64(mag), true
	}
	if mag > math.MaxInt64 {
		return fallback, false
	}
	return int64(mag), true
}

// ParseUint parses an unsigned decimal integer. A leading '+' is accepted.
func ParseUint(s str.String, fallback uint64) (uint64, bool) {
	return ParseUintRadix(s, 10, fallback)
}

// ParseUintRadix parses an unsigned integer in radix 2 to 16. Letter digits
// may be upper or lower case.
func ParseUintRadix(s str.String, radix int, fallback uint64) (uint64, bool) {
	digits, neg := splitSign(s.Trimmed())
	if neg {
		return fallback, false
	}
	v, ok := parseDigits(digits, radix)
	if !ok {
		return fallback, false
	}
	return v, true
}

// ParseFloat parses [sign]digits[.digits]. Either side of the point may be
// empty, not both. "NaN", "Inf", "+Inf" and "-Inf" are accepted.
func ParseFloat(s str.String, fallback float64) (float64, bool) {
	in := s.Trimmed()
	switch {
	case in.EqualString("NaN"):
		return math.NaN(), true
	case in.EqualString("Inf"), in.EqualString("+Inf"):
		return math.Inf(1), true
	case in.EqualString("-Inf"):
		return math.Inf(-1), true
	}

	body, neg := splitSign(in)
	sections := body.Split('.', false)
	var integral, fractional str.String
	switch len(sections) {
	case 1:
		integral = sections[0]
	case 2:
		integral, fractional = sections[0], sections[1]
	default:
		return fallback, false
	}
	if integral.IsEmpty() && fractional.IsEmpty() {
		return fallback, false
	}

	var result float64
	if integral.IsNotEmpty() {
		v, ok := parseDigits(integral, 10)
		if !ok {
			return fallback, false
		}
		result = float64(v)
	}

	var fract float64
	for i := fractional.Len() - 1; i >= 0; i-- {
		c := fractional.At(i)
		if c < '0' || c > '9' {
			return fallback, false
		}
		fract = (fract + float64(c-'0')) / 10
	}
	result += fract

	if neg {
		result = -result
	}
	return result, true
}

// ParseBool parses "true" or "false", ignoring case.
func ParseBool(s str.String, fallback bool) (bool, bool) {
	in := s.Trimmed()
	if in.Len() != 4 && in.Len() != 5 {
		return fallback, false
	}
	var lower [5]byte
	for i, c := range in.All() {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	switch string(lower[:in.Len()]) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return fallback, false
}
