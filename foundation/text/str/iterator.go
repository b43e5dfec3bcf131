// File: iterator.go
// Title: Byte Iterator
// Description: A forward cursor over the bytes of a String. It doubles as a
//              pull source for the codec package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-17
// Modified: 2026-09-17
//
// Change History:
// - 2026-09-17 v0.2.0: Initial implementation

package str

import mdwerrors "github.com/msto63/textkit/foundation/core/errors"

// Iterator walks the bytes of a String front to back.
type Iterator struct {
	s   String
	pos int
}

// Iter returns an iterator positioned at the first byte of s.
func (s String) Iter() *Iterator {
	return &Iterator{s: s}
}

// Valid reports whether the iterator points at a byte.
func (it *Iterator) Valid() bool {
	return it.pos < len(it.s.data)
}

// Current returns the byte under the cursor. It panics past the end.
func (it *Iterator) Current() byte {
	if !it.Valid() {
		panic(mdwerrors.IndexOutOfRange(mdwerrors.ModuleStr, "Iterator.Current", it.pos, len(it.s.data)))
	}
	return it.s.data[it.pos]
}

// Next advances the cursor by one byte.
func (it *Iterator) Next() {
	if it.pos < len(it.s.data) {
		it.pos++
	}
}

// Index returns the cursor position.
func (it *Iterator) Index() int {
	return it.pos
}

// Remaining returns the unread part as a view.
func (it *Iterator) Remaining() String {
	return it.s.SubString(it.pos, ToEnd)
}

// TryGetNext returns the byte under the cursor and advances, or false at the
// end.
func (it *Iterator) TryGetNext() (byte, bool) {
	if it.pos >= len(it.s.data) {
		return 0, false
	}
	b := it.s.data[it.pos]
	it.pos++
	return b, true
}

// TryPeek returns the byte under the cursor without advancing.
func (it *Iterator) TryPeek() (byte, bool) {
	if it.pos >= len(it.s.data) {
		return 0, false
	}
	return it.s.data[it.pos], true
}
