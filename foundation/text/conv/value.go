// File: value.go
// Title: Builder Values
// Description: Number and boolean wrappers that render themselves for
//              str.Builder.AppendValue.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-19
// Modified: 2026-09-19
//
// Change History:
// - 2026-09-19 v0.2.0: Initial implementation

package conv

import "github.com/msto63/textkit/foundation/text/str"

// Int renders as a decimal integer.
type Int int64

// ToString implements str.ToStringer.
func (v Int) ToString() str.String { return FormatInt(int64(v), 10) }

// Uint renders as a decimal unsigned integer.
type Uint uint64

// ToString implements str.ToStringer.
func (v Uint) ToString() str.String { return FormatUint(uint64(v), 10) }

// Hex renders as an upper case hexadecimal integer.
type Hex uint64

// ToString implements str.ToStringer.
func (v Hex) ToString() str.String { return FormatUint(uint64(v), 16) }

// Float renders with Precision fractional digits. A zero Precision uses
// DefaultPrecision.
type Float struct {
	Value     float64
	Precision int
}

// ToString implements str.ToStringer.
func (v Float) ToString() str.String {
	p := v.Precision
	if p == 0 {
		p = DefaultPrecision
	}
	return FormatFloat(v.Value, p)
}

// Bool renders as "true" or "false".
type Bool bool

// ToString implements str.ToStringer.
func (v Bool) ToString() str.String { return FormatBool(bool(v)) }

var (
	_ str.ToStringer = Int(0)
	_ str.ToStringer = Uint(0)
	_ str.ToStringer = Hex(0)
	_ str.ToStringer = Float{}
	_ str.ToStringer = Bool(false)
)
