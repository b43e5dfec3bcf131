// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements ASCII case mapping, snake_case and kebab-case
//              conversion, and Unicode title casing for String values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-09-20 v0.2.0: Byte level conversions on str.String, x/text title casing

package stringx

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/text/str"
)

func isUpperASCII(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerASCII(c byte) bool { return c >= 'a' && c <= 'z' }

// mapASCII returns s when no byte matches, otherwise an owned copy with the
// matching bytes shifted by delta.
func mapASCII(s str.String, match func(byte) bool, delta int) str.String {
	p := s.Bytes()
	first := -1
	for i, c := range p {
		if match(c) {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}
	out := str.OwnedFrom(p)
	dst := out.MutableBytes()
	for i := first; i < len(dst); i++ {
		if match(dst[i]) {
			dst[i] = byte(int(dst[i]) + delta)
		}
	}
	return out
}

// ToUpperASCII maps a-z to A-Z. Other bytes are kept.
func ToUpperASCII(s str.String) str.String {
	return mapASCII(s, isLowerASCII, 'A'-'a')
}

// ToLowerASCII maps A-Z to a-z. Other bytes are kept.
func ToLowerASCII(s str.String) str.String {
	return mapASCII(s, isUpperASCII, 'a'-'A')
}

// delimit lowers ASCII capitals and separates words with sep. Spaces,
// hyphens and underscores become sep; runs of separators collapse.
func delimit(s str.String, sep byte) str.String {
	if s.IsEmpty() {
		return s
	}
	b := str.NewBuilder()
	var prev byte
	for i, c := range s.Bytes() {
		switch {
		case isUpperASCII(c):
			if i > 0 && !isUpperASCII(prev) && prev != sep {
				b.AppendByte(sep)
			}
			b.AppendByte(c + 'a' - 'A')
			prev = c
		case c == ' ' || c == '-' || c == '_':
			if prev != sep {
				b.AppendByte(sep)
			}
			prev = sep
		default:
			b.AppendByte(c)
			prev = c
		}
	}
	return b.Build()
}

// ToSnakeCase converts s to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s str.String) str.String {
	return delimit(s, '_')
}

// ToKebabCase converts s to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s str.String) str.String {
	return delimit(s, '-')
}

// ToTitle upper-cases the first letter of every word and lower-cases the
// rest using Unicode rules.
func ToTitle(s str.String) str.String {
	if s.IsEmpty() {
		return s
	}
	return str.OwnedFrom(cases.Title(language.Und).Bytes(s.Bytes()))
}
