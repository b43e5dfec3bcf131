// File: format.go
// Title: Number and Boolean Formatting
// Description: Formats integers in radix 2 to 16, floats with a truncated
//              fixed precision, booleans and pointers into String values.
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
	"strconv"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/text/str"
)

const digits = "0123456789ABCDEF"

const (
	// DefaultPrecision is the fractional digit count used by Float values
	// without an explicit precision
	DefaultPrecision = 10

	// MaxPrecision is the largest number of fractional digits FormatFloat
	// writes
	MaxPrecision = 31
)

func checkRadix(op string, radix int) {
	if radix < 2 || radix > 16 {
		panic(mdwerrors.InvalidArgument(mdwerrors.ModuleConv, op, "radix", radix, "[2,16]"))
	}
}

// putUint writes v in radix backwards ending at buf[i-1] and returns the
// index of the first digit.
func putUint(buf []byte, i int, v uint64, radix int) int {
	r := uint64(radix)
	if v == 0 {
		i--
		buf[i] = '0'
		return i
	}
	for v > 0 {
		i--
		buf[i] = digits[v%r]
		v /= r
	}
	return i
}

// FormatInt formats v in radix 2 to 16 with upper case digits. An invalid
// radix panics.
func FormatInt(v int64, radix int) str.String {
	checkRadix("FormatInt", radix)
	var buf [65]byte
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	i := putUint(buf[:], len(buf), mag, radix)
	if v < 0 {
		i--
		buf[i] = '-'
	}
	return str.OwnedFrom(buf[i:])
}

// FormatUint formats v in radix 2 to 16 with upper case digits.
func FormatUint(v uint64, radix int) str.String {
	checkRadix("FormatUint", radix)
	var buf [64]byte
	i := putUint(buf[:], len(buf), v, radix)
	return str.OwnedFrom(buf[i:])
}

// FormatPointer formats p as 16 zero padded hex digits.
func FormatPointer(p uintptr) str.String {
	s := str.Repeat('0', 16)
	buf := s.MutableBytes()
	putUint(buf, len(buf), uint64(p), 16)
	return s
}

// FormatFloat formats v as sign, integral digits, '.', and up to precision
// fractional digits. Digits are truncated, not rounded, and stop early when
// the remaining fraction is zero; at least one fractional digit is written.
// Precision is clamped to [0, MaxPrecision]. NaN and infinities are written
// as "NaN", "+Inf" and "-Inf".
func FormatFloat(v float64, precision int) str.String {
	switch {
	case math.IsNaN(v):
		return str.ViewString("NaN")
	case math.IsInf(v, 1):
		return str.ViewString("+Inf")
	case math.IsInf(v, -1):
		return str.ViewString("-Inf")
	}
	precision = max(0, min(precision, MaxPrecision))

	abs := math.Abs(v)
	integral := math.Trunc(abs)
	fract := abs - integral

	var b str.Builder
	if v < 0 {
		b.AppendByte('-')
	}
	if integral < 1<<63 {
		var buf [20]byte
		i := putUint(buf[:], len(buf), uint64(integral), 10)
		b.AppendBytes(buf[i:])
	} else {
		b.AppendText(strconv.FormatFloat(integral, 'f', 0, 64))
	}
	b.AppendByte('.')

	n := 0
	for ; n < precision && fract > 0; n++ {
		fract *= 10
		d := int(fract)
		fract -= float64(d)
		b.AppendByte(digits[d])
	}
	if n == 0 {
		b.AppendByte('0')
	}
	return b.Build()
}

// FormatBool returns "true" or "false".
func FormatBool(v bool) str.String {
	return FormatBoolWith(v, "true", "false")
}

// FormatBoolWith returns t or f as a view.
func FormatBoolWith(v bool, t, f string) str.String {
	if v {
		return str.ViewString(t)
	}
	return str.ViewString(f)
}
