// File: string.go
// Title: Dual-Mode String Value
// Description: Implements String, a byte string that is either a view over
//              caller memory or an owned, runtime allocated buffer. Only
//              owned values may be mutated. Copies of a String share the
//              buffer; the garbage collector reclaims it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-17
// Modified: 2026-09-17
//
// Change History:
// - 2026-09-17 v0.2.0: Initial implementation

package str

import (
	"bytes"
	"iter"
	"math"
	"unsafe"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// MaxLength is the largest length a String can have: half the range of int.
const MaxLength = math.MaxInt >> 1

// ToEnd selects the rest of the string in SubString.
const ToEnd = -1

// emptyBuf backs the canonical empty string.
var emptyBuf [1]byte

// Empty is the canonical empty string, a view over a static buffer.
var Empty = String{data: emptyBuf[:0:0]}

// String is a byte string in one of two modes.
//
// A view borrows memory owned by the caller. The caller must keep that memory
// alive and unchanged while the view, or any SubString of it, is in use.
//
// An owned value holds a buffer allocated by this package with one hidden
// zero byte after the last byte. Copying a String copies the handle, not
// the bytes: a Set through one copy is visible through all others. Use
// Clone for an independent copy.
//
// The zero value is an empty view.
type String struct {
	data  []byte
	owned bool
}

// ToStringer is implemented by values that can be appended to a Builder.
type ToStringer interface {
	ToString() String
}

func checkLength(op string, n int) {
	if n < 0 || n > MaxLength {
		panic(mdwerrors.LengthExceeded(mdwerrors.ModuleStr, op, n, MaxLength))
	}
}

// View returns a view over b. It never allocates.
func View(b []byte) String {
	if len(b) == 0 {
		return Empty
	}
	checkLength("View", len(b))
	return String{data: b[:len(b):len(b)]}
}

// ViewString returns a view over the bytes of s without copying.
func ViewString(s string) String {
	if len(s) == 0 {
		return Empty
	}
	return String{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// MakeOwned allocates a zero-filled owned string of length n. MakeOwned(0)
// returns Empty without allocating. A negative n or one above MaxLength
// panics.
func MakeOwned(n int) String {
	checkLength("MakeOwned", n)
	if n == 0 {
		return Empty
	}
	buf := make([]byte, n+1)
	return String{data: buf[:n:n], owned: true}
}

// OwnedFrom returns an owned copy of b.
func OwnedFrom(b []byte) String {
	s := MakeOwned(len(b))
	copy(s.data, b)
	return s
}

// OwnedFromString returns an owned copy of s.
func OwnedFromString(s string) String {
	o := MakeOwned(len(s))
	copy(o.data, s)
	return o
}

// Repeat returns an owned string of count copies of b.
func Repeat(b byte, count int) String {
	s := MakeOwned(count)
	s.FillByte(b)
	return s
}

// Len returns the length in bytes.
func (s String) Len() int { return len(s.data) }

// IsEmpty reports whether the length is zero.
func (s String) IsEmpty() bool { return len(s.data) == 0 }

// IsNotEmpty reports whether the length is non-zero.
func (s String) IsNotEmpty() bool { return len(s.data) != 0 }

// IsOwned reports whether s holds its own buffer.
func (s String) IsOwned() bool { return s.owned }

// Bytes returns the bytes of s. The result must not be modified; use
// MutableBytes for writable access.
func (s String) Bytes() []byte { return s.data }

// MutableBytes returns the writable bytes of an owned string. It panics for
// a non-empty view.
func (s String) MutableBytes() []byte {
	s.requireOwned("MutableBytes")
	return s.data
}

func (s String) requireOwned(op string) {
	if !s.owned && len(s.data) != 0 {
		panic(mdwerrors.InvalidOperation(mdwerrors.ModuleStr, op, "string is a view"))
	}
}

func (s String) checkIndex(op string, i int) {
	if i < 0 || i >= len(s.data) {
		panic(mdwerrors.IndexOutOfRange(mdwerrors.ModuleStr, op, i, len(s.data)))
	}
}

// At returns the byte at index i.
func (s String) At(i int) byte {
	s.checkIndex("At", i)
	return s.data[i]
}

// Set writes the byte at index i. s must be owned.
func (s String) Set(i int, b byte) {
	s.requireOwned("Set")
	s.checkIndex("Set", i)
	s.data[i] = b
}

// Fill copies src into s starting at offset and returns the number of bytes
// copied, min(len(src), Len()-offset). An offset at or past the end copies
// nothing.
func (s String) Fill(src []byte, offset int) int {
	if offset < 0 {
		panic(mdwerrors.IndexOutOfRange(mdwerrors.ModuleStr, "Fill", offset, len(s.data)))
	}
	if len(s.data) == 0 {
		return 0
	}
	s.requireOwned("Fill")
	if offset >= len(s.data) {
		return 0
	}
	return copy(s.data[offset:], src)
}

// FillFrom is Fill with a String source.
func (s String) FillFrom(src String, offset int) int {
	return s.Fill(src.data, offset)
}

// FillByte sets every byte of s to b.
func (s String) FillByte(b byte) {
	if len(s.data) == 0 {
		return
	}
	s.requireOwned("FillByte")
	for i := range s.data {
		s.data[i] = b
	}
}

// SubString returns a view of length bytes starting at offset, clipped to
// the end of s. Pass ToEnd for the remainder. An offset at or past the end
// yields Empty. The view shares the bytes of s.
func (s String) SubString(offset, length int) String {
	if offset < 0 {
		panic(mdwerrors.IndexOutOfRange(mdwerrors.ModuleStr, "SubString", offset, len(s.data)))
	}
	if offset >= len(s.data) || length == 0 {
		return Empty
	}
	end := len(s.data)
	if length > 0 && length < end-offset {
		end = offset + length
	}
	return String{data: s.data[offset:end:end]}
}

// Split returns the sections of s separated by delim. Consecutive,
// leading and trailing delimiters produce empty sections unless skipEmpty is
// set. A string without delim yields itself; an empty string yields nothing.
func (s String) Split(delim byte, skipEmpty bool) []String {
	var parts []String
	for part := range s.Sections(delim, skipEmpty) {
		parts = append(parts, part)
	}
	return parts
}

// Sections is the lazy form of Split.
func (s String) Sections(delim byte, skipEmpty bool) iter.Seq[String] {
	return func(yield func(String) bool) {
		start := 0
		for i := 0; i < len(s.data); i++ {
			if s.data[i] != delim {
				continue
			}
			if i > start || !skipEmpty {
				if !yield(s.SubString(start, i-start)) {
					return
				}
			}
			start = i + 1
		}
		if len(s.data) == 0 {
			return
		}
		if start < len(s.data) || !skipEmpty {
			yield(s.SubString(start, ToEnd))
		}
	}
}

// IsWhitespace reports whether b is tab, LF, VT, FF, CR or space.
func IsWhitespace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

// Trimmed returns a view of s without leading and trailing whitespace.
func (s String) Trimmed() String {
	start, end := 0, len(s.data)
	for start < end && IsWhitespace(s.data[start]) {
		start++
	}
	for end > start && IsWhitespace(s.data[end-1]) {
		end--
	}
	return s.SubString(start, end-start)
}

// HasPrefix reports whether s begins with prefix.
func (s String) HasPrefix(prefix String) bool {
	return bytes.HasPrefix(s.data, prefix.data)
}

// HasSuffix reports whether s ends with suffix.
func (s String) HasSuffix(suffix String) bool {
	return bytes.HasSuffix(s.data, suffix.data)
}

// IndexByte returns the index of the first b in s, or -1.
func (s String) IndexByte(b byte) int {
	return bytes.IndexByte(s.data, b)
}

// Compare returns -1, 0 or +1 comparing a and b byte by byte. A proper
// prefix sorts first.
func Compare(a, b String) int {
	return bytes.Compare(a.data, b.data)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b String) bool {
	return bytes.Equal(a.data, b.data)
}

// EqualString reports whether s holds the bytes of t.
func (s String) EqualString(t string) bool {
	return string(s.data) == t
}

// AsView returns a view of the same bytes. It never allocates.
func (s String) AsView() String {
	if len(s.data) == 0 {
		return Empty
	}
	return String{data: s.data}
}

// AsOwned returns s if it is owned, otherwise an owned copy.
func (s String) AsOwned() String {
	if s.owned || len(s.data) == 0 {
		return s
	}
	return OwnedFrom(s.data)
}

// Clone always returns an independent owned copy.
func (s String) Clone() String {
	return OwnedFrom(s.data)
}

// All iterates over the index and value of every byte.
func (s String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, b := range s.data {
			if !yield(i, b) {
				return
			}
		}
	}
}

// ToString returns s, so a String can be passed as a ToStringer.
func (s String) ToString() String { return s }

// String returns a Go string with a copy of the bytes.
func (s String) String() string {
	return string(s.data)
}
