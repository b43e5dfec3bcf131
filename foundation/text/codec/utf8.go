// File: utf8.go
// Title: UTF-8 Codec
// Description: Decodes and encodes single code points in UTF-8. The decoder
//              classifies lead bytes by mask, accumulates six data bits per
//              continuation byte and rejects overlong forms, surrogates and
//              values above U+10FFFF.
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
	// RuneError is the replacement character U+FFFD
	RuneError = '\uFFFD'

	// MaxRune is the largest Unicode code point
	MaxRune = '\U0010FFFF'

	// UTFMax is the maximum length of a UTF-8 sequence
	UTFMax = 4
)

// Malformed sequence reasons
const (
	reasonInvalidLead   = "invalid lead byte"
	reasonTruncated     = "truncated sequence"
	reasonContinuation  = "invalid continuation byte"
	reasonOverlong      = "overlong encoding"
	reasonSurrogate     = "surrogate code point"
	reasonOutOfRange    = "code point above U+10FFFF"
	reasonLoneTrail     = "unpaired trail surrogate"
	reasonMissingTrail  = "lead surrogate not followed by trail surrogate"
	reasonTruncatedPair = "truncated surrogate pair"
	reasonPartialUnit   = "incomplete code unit"
)

// ValidRune reports whether r is a Unicode scalar value.
func ValidRune(r rune) bool {
	return (r >= 0 && r < 0xD800) || (r > 0xDFFF && r <= MaxRune)
}

// resolve applies policy p to a malformed sequence. skip reports that the
// caller should continue with the next unit.
func resolve(p Policy, hook MalformedFunc, op string, offset int, reason string) (r rune, skip bool, err error) {
	if hook != nil {
		hook(offset, reason)
	}
	switch p {
	case PolicySkip:
		return 0, true, nil
	case PolicyFail:
		return RuneError, false, mdwerrors.Malformed(mdwerrors.ModuleCodec, op, offset, reason)
	default:
		return RuneError, false, nil
	}
}

// UTF8 is the UTF-8 codec. The zero value replaces malformed input.
type UTF8 struct {
	Policy      Policy
	OnMalformed MalformedFunc
}

// Decode reads one code point. It returns io.EOF when src is exhausted
// before the first byte. Under PolicyFail a malformed sequence returns
// RuneError and a MALFORMED_INPUT error.
func (c UTF8) Decode(src Source[byte]) (rune, error) {
	for {
		offset := position(src)
		r, reason, ok := decodeUTF8(src)
		if !ok {
			return 0, io.EOF
		}
		if reason == "" {
			return r, nil
		}
		r, skip, err := resolve(c.Policy, c.OnMalformed, "UTF8.Decode", offset, reason)
		if skip {
			continue
		}
		return r, err
	}
}

// decodeUTF8 reads one sequence. ok is false only at end of input; a
// non-empty reason marks a malformed sequence.
func decodeUTF8(src Source[byte]) (r rune, reason string, ok bool) {
	b, ok := src.TryGetNext()
	if !ok {
		return 0, "", false
	}
	if b&0x80 == 0 {
		return rune(b), "", true
	}

	var need int
	var lo rune
	switch {
	case b&0xE0 == 0xC0:
		need, lo, r = 1, 0x80, rune(b&0x1F)
	case b&0xF0 == 0xE0:
		need, lo, r = 2, 0x800, rune(b&0x0F)
	case b&0xF8 == 0xF0:
		need, lo, r = 3, 0x10000, rune(b&0x07)
	default:
		return RuneError, reasonInvalidLead, true
	}

	peeker, canPeek := src.(Peeker[byte])
	for i := 0; i < need; i++ {
		var c byte
		if canPeek {
			c, ok = peeker.TryPeek()
			if !ok {
				return RuneError, reasonTruncated, true
			}
			if c&0xC0 != 0x80 {
				return RuneError, reasonContinuation, true
			}
			src.TryGetNext()
		} else {
			c, ok = src.TryGetNext()
			if !ok {
				return RuneError, reasonTruncated, true
			}
			if c&0xC0 != 0x80 {
				return RuneError, reasonContinuation, true
			}
		}
		r = r<<6 | rune(c&0x3F)
	}

	switch {
	case r < lo:
		return RuneError, reasonOverlong, true
	case r >= 0xD800 && r <= 0xDFFF:
		return RuneError, reasonSurrogate, true
	case r > MaxRune:
		return RuneError, reasonOutOfRange, true
	}
	return r, "", true
}

// Encode writes r as one to four bytes. Values that are not scalar values
// are written as RuneError. A refusing sink returns SINK_FULL with the
// number of bytes already written.
func (c UTF8) Encode(dst Sink[byte], r rune) (int, error) {
	var buf [UTFMax]byte
	n := EncodeRuneUTF8(buf[:], r)
	for i := 0; i < n; i++ {
		if !dst.TryPush(buf[i]) {
			return i, mdwerrors.SinkFull(mdwerrors.ModuleCodec, "UTF8.Encode", i)
		}
	}
	return n, nil
}

// RuneLenUTF8 returns the number of bytes Encode writes for r.
func RuneLenUTF8(r rune) int {
	if !ValidRune(r) {
		r = RuneError
	}
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// EncodeRuneUTF8 writes r into p and returns the number of bytes written.
// p must hold RuneLenUTF8(r) bytes.
func EncodeRuneUTF8(p []byte, r rune) int {
	if !ValidRune(r) {
		r = RuneError
	}
	switch {
	case r < 0x80:
		p[0] = byte(r)
		return 1
	case r < 0x800:
		_ = p[1]
		p[1] = 0x80 | byte(r&0x3F)
		p[0] = 0xC0 | byte(r>>6)
		return 2
	case r < 0x10000:
		_ = p[2]
		p[2] = 0x80 | byte(r&0x3F)
		p[1] = 0x80 | byte((r>>6)&0x3F)
		p[0] = 0xE0 | byte(r>>12)
		return 3
	case r < 0x200000:
		_ = p[3]
		p[3] = 0x80 | byte(r&0x3F)
		p[2] = 0x80 | byte((r>>6)&0x3F)
		p[1] = 0x80 | byte((r>>12)&0x3F)
		p[0] = 0xF0 | byte(r>>18)
		return 4
	}
	return EncodeRuneUTF8(p, RuneError)
}

// AppendUTF8 appends the encoding of r to p.
func AppendUTF8(p []byte, r rune) []byte {
	var buf [UTFMax]byte
	n := EncodeRuneUTF8(buf[:], r)
	return append(p, buf[:n]...)
}

// DecodeRuneUTF8 decodes the first code point in p with PolicyReplace and
// returns it with the number of bytes consumed. A byte that breaks a
// sequence is not consumed. Empty input returns (RuneError, 0).
func DecodeRuneUTF8(p []byte) (rune, int) {
	src := NewSliceSource(p)
	r, reason, ok := decodeUTF8(src)
	if !ok {
		return RuneError, 0
	}
	if reason != "" {
		return RuneError, src.Index()
	}
	return r, src.Index()
}
