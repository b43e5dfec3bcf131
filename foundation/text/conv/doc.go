// Package conv formats and parses numbers and booleans as String values.
//
// Integers use radix 2 to 16 with upper case digits. Floats are written
// with truncated fixed precision. Parsers trim their input, never panic
// and return the caller's fallback with false on failure.
//
//	s := conv.FormatInt(-420, 10)           // "-420"
//	v, ok := conv.ParseInt(s, 0)            // -420, true
//	f := conv.FormatFloat(3.14159, 3)       // "3.141"
//
//	var b str.Builder
//	b.AppendValue(conv.Float{Value: 0.5})   // "0.5"
package conv
