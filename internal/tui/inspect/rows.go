// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     inspect
// Description: Code point analysis shared by the inspect command and TUI
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package inspect

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/unicode/runenames"

	"github.com/msto63/textkit/foundation/text/codec"
	"github.com/msto63/textkit/foundation/text/str"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

// Row describes one decoded code point
type Row struct {
	Index    int
	Offset   int
	Rune     rune
	Bytes    []byte
	Units    []uint16
	Width    int
	Category string
	Name     string
	Reason   string
}

// Malformed reports whether the row stands for a malformed sequence
func (r Row) Malformed() bool {
	return r.Reason != ""
}

// CodePoint returns the U+XXXX notation
func (r Row) CodePoint() string {
	return fmt.Sprintf("U+%04X", r.Rune)
}

// Glyph returns a printable representation of the code point
func (r Row) Glyph() string {
	switch {
	case r.Malformed():
		return "�"
	case r.Rune < 0x20:
		return string(rune(0x2400 + r.Rune))
	case r.Rune == 0x7F:
		return "␡"
	case !unicode.IsPrint(r.Rune):
		return "·"
	}
	return string(r.Rune)
}

// HexBytes returns the UTF-8 bytes in hex
func (r Row) HexBytes() string {
	parts := make([]string, len(r.Bytes))
	for i, b := range r.Bytes {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// HexUnits returns the UTF-16 units in hex
func (r Row) HexUnits() string {
	parts := make([]string, len(r.Units))
	for i, u := range r.Units {
		parts[i] = fmt.Sprintf("%04X", u)
	}
	return strings.Join(parts, " ")
}

// Description returns the character name or the malformed reason
func (r Row) Description() string {
	if r.Malformed() {
		return "malformed: " + r.Reason
	}
	return r.Name
}

func category(r rune) string {
	switch {
	case unicode.IsLetter(r):
		return "letter"
	case unicode.IsDigit(r):
		return "digit"
	case unicode.IsSpace(r):
		return "space"
	case unicode.IsControl(r):
		return "control"
	case unicode.IsMark(r):
		return "mark"
	case unicode.IsPunct(r):
		return "punct"
	case unicode.IsSymbol(r):
		return "symbol"
	default:
		return "other"
	}
}

// Analyze decodes s as UTF-8 and returns one row per code point. A
// malformed sequence becomes a row carrying the raw bytes and the reason.
func Analyze(s str.String) []Row {
	var rows []Row
	var reason string

	dec := codec.UTF8{
		Policy:      codec.PolicyReplace,
		OnMalformed: func(_ int, why string) { reason = why },
	}
	data := s.Bytes()
	src := codec.NewSliceSource(data)

	for {
		start := src.Index()
		reason = ""
		r, err := dec.Decode(src)
		if err != nil {
			break
		}

		row := Row{
			Index:  len(rows),
			Offset: start,
			Rune:   r,
			Bytes:  data[start:src.Index()],
			Reason: reason,
		}
		if !row.Malformed() {
			row.Units = codec.AppendUTF16(nil, r)
			row.Width = mdwstringx.RuneWidth(r)
			row.Category = category(r)
			row.Name = runenames.Name(r)
		}
		rows = append(rows, row)
	}
	return rows
}

// Summary counts the rows by kind
type Summary struct {
	Bytes     int
	Runes     int
	Width     int
	NonASCII  int
	Malformed int
}

// Summarize aggregates rows
func Summarize(rows []Row) Summary {
	var sum Summary
	for _, r := range rows {
		sum.Bytes += len(r.Bytes)
		sum.Runes++
		sum.Width += r.Width
		if r.Malformed() {
			sum.Malformed++
		} else if r.Rune >= 0x80 {
			sum.NonASCII++
		}
	}
	return sum
}

// RenderTable renders rows as a bordered table
func RenderTable(rows []Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers("#", "OFFSET", "CHAR", "CODE POINT", "UTF-8", "UTF-16", "W", "CATEGORY", "NAME").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if row >= 0 && row < len(rows) && rows[row].Malformed() {
				return MalformedCellStyle
			}
			return TableCellStyle
		})

	for _, r := range rows {
		t.Row(
			fmt.Sprint(r.Index),
			fmt.Sprint(r.Offset),
			r.Glyph(),
			r.CodePoint(),
			r.HexBytes(),
			r.HexUnits(),
			fmt.Sprint(r.Width),
			r.Category,
			r.Description(),
		)
	}
	return t.Render()
}
