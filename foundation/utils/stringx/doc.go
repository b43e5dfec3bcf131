// Package stringx provides helpers on String values that need code point
// awareness or more than one pass over the bytes.
//
// Package: stringx
// Title: Extended String Operations for textkit
// Description: Code point counting, truncation, reversal and padding on
//              str.String values, ASCII and Unicode case conversion, display
//              width, joining and a bounded intern cache. UTF-8 is decoded
//              with the replacement policy: a malformed sequence counts as
//              one code point and is never split.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-09-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-09-20 v0.3.0: Rebuilt on str.String, random generation removed
//
// Results are owned values when they had to be built and the input itself
// when nothing changed, so callers must not assume ownership:
//
//	name := mdwstringx.ToSnakeCase(str.ViewString("BufferSize"))
//	if err := mdwstringx.ValidateLength(name, 1, 64); err != nil {
//		return err
//	}
//
// Intern is safe for concurrent use. All other functions are pure.
package stringx
