// File: utf32.go
// Title: UTF-32 Codec
// Description: The 32-bit code point form. Every unit is one code point;
//              units that are not scalar values are malformed.
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

// UTF32 is the UTF-32 codec.
type UTF32 struct {
	Order       ByteOrder
	Policy      Policy
	OnMalformed MalformedFunc
}

// Decode reads one code point. It returns io.EOF at the end of src.
func (c UTF32) Decode(src Source[rune]) (rune, error) {
	swap := c.Order.swaps()
	for {
		offset := position(src)
		u, ok := src.TryGetNext()
		if !ok {
			return 0, io.EOF
		}
		if swap {
			u = swap32(u)
		}
		if ValidRune(u) {
			return u, nil
		}
		reason := reasonOutOfRange
		if u >= 0xD800 && u <= 0xDFFF {
			reason = reasonSurrogate
		}
		r, skip, err := resolve(c.Policy, c.OnMalformed, "UTF32.Decode", offset, reason)
		if skip {
			continue
		}
		return r, err
	}
}

// Encode writes r as one unit. Values that are not scalar values are
// written as RuneError.
func (c UTF32) Encode(dst Sink[rune], r rune) (int, error) {
	if !ValidRune(r) {
		r = RuneError
	}
	if c.Order.swaps() {
		r = swap32(r)
	}
	if !dst.TryPush(r) {
		return 0, mdwerrors.SinkFull(mdwerrors.ModuleCodec, "UTF32.Encode", 0)
	}
	return 1, nil
}
