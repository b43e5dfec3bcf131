// File: utf16.go
// Title: UTF-16 Codec
// Description: Decodes and encodes single code points as UTF-16 units in a
//              configurable byte order. Surrogates are classified with the
//              0xFC00 mask; a lead surrogate must be followed by a trail.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation

package codec

import (
	"io"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

const (
	surrogateMask = 0xFC00
	leadMin       = 0xD800
	trailMin      = 0xDC00
	surrogateBase = 0x10000
)

// UTF16 is the UTF-16 codec. Units are stored in Order and swapped when
// Order differs from the host. The zero value uses host order and replaces
// malformed input.
type UTF16 struct {
	Order       ByteOrder
	Policy      Policy
	OnMalformed MalformedFunc
}

// Decode reads one code point. It returns io.EOF when src is exhausted
// before the first unit.
func (c UTF16) Decode(src Source[uint16]) (rune, error) {
	swap := c.Order.swaps()
	for {
		offset := position(src)
		r, reason, ok := decodeUTF16(src, swap)
		if !ok {
			return 0, io.EOF
		}
		if reason == "" {
			return r, nil
		}
		r, skip, err := resolve(c.Policy, c.OnMalformed, "UTF16.Decode", offset, reason)
		if skip {
			continue
		}
		return r, err
	}
}

func decodeUTF16(src Source[uint16], swap bool) (r rune, reason string, ok bool) {
	u, ok := src.TryGetNext()
	if !ok {
		return 0, "", false
	}
	if swap {
		u = swap16(u)
	}

	switch u & surrogateMask {
	case trailMin:
		return RuneError, reasonLoneTrail, true
	case leadMin:
	default:
		return rune(u), "", true
	}

	var t uint16
	peeker, canPeek := src.(Peeker[uint16])
	if canPeek {
		t, ok = peeker.TryPeek()
	} else {
		t, ok = src.TryGetNext()
	}
	if !ok {
		return RuneError, reasonTruncatedPair, true
	}
	if swap {
		t = swap16(t)
	}
	if t&surrogateMask != trailMin {
		return RuneError, reasonMissingTrail, true
	}
	if canPeek {
		src.TryGetNext()
	}
	return (rune(u)-leadMin)*0x400 + (rune(t) - trailMin) + surrogateBase, "", true
}

// Encode writes r as one unit, or as a surrogate pair for r >= 0x10000.
// Values that are not scalar values are written as RuneError.
func (c UTF16) Encode(dst Sink[uint16], r rune) (int, error) {
	var buf [2]uint16
	n := EncodeRuneUTF16(buf[:], r)
	swap := c.Order.swaps()
	for i := 0; i < n; i++ {
		u := buf[i]
		if swap {
			u = swap16(u)
		}
		if !dst.TryPush(u) {
			return i, mdwerrors.SinkFull(mdwerrors.ModuleCodec, "UTF16.Encode", i)
		}
	}
	return n, nil
}

// RuneLenUTF16 returns the number of units Encode writes for r.
func RuneLenUTF16(r rune) int {
	if ValidRune(r) && r >= surrogateBase {
		return 2
	}
	return 1
}

// EncodeRuneUTF16 writes r into p in host order and returns the number of
// units written. p must hold RuneLenUTF16(r) units.
func EncodeRuneUTF16(p []uint16, r rune) int {
	if !ValidRune(r) {
		r = RuneError
	}
	if r >= surrogateBase {
		_ = p[1]
		r -= surrogateBase
		p[0] = uint16(leadMin + (r>>10)&0x3FF)
		p[1] = uint16(trailMin + r&0x3FF)
		return 2
	}
	p[0] = uint16(r)
	return 1
}

// AppendUTF16 appends the host order encoding of r to p.
func AppendUTF16(p []uint16, r rune) []uint16 {
	var buf [2]uint16
	n := EncodeRuneUTF16(buf[:], r)
	return append(p, buf[:n]...)
}

// DecodeRuneUTF16 decodes the first code point of host order units p with
// PolicyReplace and returns it with the number of units consumed. Empty
// input returns (RuneError, 0).
func DecodeRuneUTF16(p []uint16) (rune, int) {
	src := NewSliceSource(p)
	r, reason, ok := decodeUTF16(src, false)
	if !ok {
		return RuneError, 0
	}
	if reason != "" {
		return RuneError, src.Index()
	}
	return r, src.Index()
}
