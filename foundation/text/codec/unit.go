// File: unit.go
// Title: Code Unit Sources and Sinks
// Description: The pull/push boundary between codecs and any I/O layer.
//              Sources report exhaustion and sinks report backpressure by
//              returning false, never by blocking.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation

package codec

import (
	"math/bits"
)

// Unit is a code unit: a UTF-8 byte, a UTF-16 unit or a UTF-32 unit.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// Source yields units one at a time.
type Source[U Unit] interface {
	TryGetNext() (U, bool)
}

// Peeker is implemented by sources that can look at the next unit without
// consuming it. Decoders use it to leave a unit that ends a broken sequence
// in place.
type Peeker[U Unit] interface {
	TryPeek() (U, bool)
}

// Indexer is implemented by sources that know their position. Malformed
// input errors carry it as the offset.
type Indexer interface {
	Index() int
}

// Sink accepts units one at a time.
type Sink[U Unit] interface {
	TryPush(U) bool
}

// Decoder reads one code point from a source.
type Decoder[U Unit] interface {
	Decode(src Source[U]) (rune, error)
}

// Encoder writes one code point to a sink and returns the units written.
type Encoder[U Unit] interface {
	Encode(dst Sink[U], r rune) (int, error)
}

// MalformedFunc observes malformed sequences: offset is the position of the
// first unit or -1 when the source has no Indexer.
type MalformedFunc func(offset int, reason string)

// SliceSource reads units from a slice.
type SliceSource[U Unit] struct {
	units []U
	pos   int
}

// NewSliceSource returns a source over units.
func NewSliceSource[U Unit](units []U) *SliceSource[U] {
	return &SliceSource[U]{units: units}
}

// TryGetNext implements Source.
func (s *SliceSource[U]) TryGetNext() (U, bool) {
	if s.pos >= len(s.units) {
		var zero U
		return zero, false
	}
	u := s.units[s.pos]
	s.pos++
	return u, true
}

// TryPeek implements Peeker.
func (s *SliceSource[U]) TryPeek() (U, bool) {
	if s.pos >= len(s.units) {
		var zero U
		return zero, false
	}
	return s.units[s.pos], true
}

// Index implements Indexer.
func (s *SliceSource[U]) Index() int { return s.pos }

// Remaining returns the number of unread units.
func (s *SliceSource[U]) Remaining() int { return len(s.units) - s.pos }

// SliceSink appends units to a slice. A positive Limit caps the number of
// units accepted.
type SliceSink[U Unit] struct {
	Units []U
	Limit int
}

// TryPush implements Sink.
func (s *SliceSink[U]) TryPush(u U) bool {
	if s.Limit > 0 && len(s.Units) >= s.Limit {
		return false
	}
	s.Units = append(s.Units, u)
	return true
}

func position(src any) int {
	if ix, ok := src.(Indexer); ok {
		return ix.Index()
	}
	return -1
}

func swap16(u uint16) uint16 { return bits.ReverseBytes16(u) }

func swap32(u rune) rune { return rune(bits.ReverseBytes32(uint32(u))) }
