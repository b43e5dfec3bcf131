// File: width.go
// Title: Display Width
// Description: Terminal display width of String values, counting East Asian
//              wide characters as two cells.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-20
// Modified: 2026-09-20
//
// Change History:
// - 2026-09-20 v0.2.0: Initial implementation

package stringx

import (
	"github.com/mattn/go-runewidth"

	"github.com/msto63/textkit/foundation/text/str"
)

// Width returns the number of terminal cells s occupies.
func Width(s str.String) int {
	w := 0
	for _, r := range Runes(s) {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// RuneWidth returns the number of terminal cells r occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// FitWidth cuts s so that it occupies at most width cells.
func FitWidth(s str.String, width int) str.String {
	w := 0
	for i, r := range Runes(s) {
		w += runewidth.RuneWidth(r)
		if w > width {
			return s.SubString(0, i)
		}
	}
	return s
}
