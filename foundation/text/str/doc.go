// Package str provides the String value and Builder of the textkit runtime.
//
// Package: str
// Title: textkit String Value
// Description: A String is either a view, borrowing bytes the caller keeps
//              alive, or owned, holding a buffer allocated by this package.
//              Only owned strings may be mutated. Contract violations such
//              as indexing out of range or writing to a view panic with an
//              *error.Error carrying the matching code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-17
// Modified: 2026-09-17
//
// Change History:
// - 2026-09-17 v0.2.0: Initial implementation
//
// Usage:
//
//	line := str.ViewString("  key = value  ")
//	for part := range line.Trimmed().Sections('=', true) {
//		fmt.Println(part.Trimmed())
//	}
//
//	buf := str.Repeat('_', 10)
//	buf.Fill([]byte("01234"), 3) // "___01234__"
//
//	var b str.Builder
//	b.AppendText("a")
//	b.AppendLine(buf)
//	out := b.Build()
package str
