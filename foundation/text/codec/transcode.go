// File: transcode.go
// Title: Bulk Transcoding
// Description: Pumps decode-then-encode loops over whole inputs, at unit
//              level between sources and sinks and at byte level between
//              String values through a Builder.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation

package codec

import (
	"encoding/binary"
	"io"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/text/str"
)

// Stats summarizes a transcoding run.
type Stats struct {
	Runes     int `json:"runes"`
	Malformed int `json:"malformed"`
	UnitsIn   int `json:"units_in"`
	UnitsOut  int `json:"units_out"`
}

// DecodeMulti decodes src until it is exhausted.
func DecodeMulti[U Unit](dec Decoder[U], src Source[U]) ([]rune, error) {
	var runes []rune
	for {
		r, err := dec.Decode(src)
		if err == io.EOF {
			return runes, nil
		}
		if err != nil {
			return runes, err
		}
		runes = append(runes, r)
	}
}

// EncodeMulti encodes runes into dst and returns the number of units
// written.
func EncodeMulti[U Unit](enc Encoder[U], dst Sink[U], runes []rune) (int, error) {
	total := 0
	for _, r := range runes {
		n, err := enc.Encode(dst, r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Transcode decodes src code point by code point and encodes each into dst.
// Every malformed sequence is resolved once by the decoder's policy.
func Transcode[S, D Unit](dst Sink[D], src Source[S], dec Decoder[S], enc Encoder[D]) (stats Stats, err error) {
	start := position(src)
	defer func() {
		if end := position(src); start >= 0 && end >= 0 {
			stats.UnitsIn = end - start
		}
	}()
	for {
		r, err := dec.Decode(src)
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		n, err := enc.Encode(dst, r)
		stats.UnitsOut += n
		if err != nil {
			return stats, err
		}
		stats.Runes++
	}
}

// UTF8ToUTF16 converts UTF-8 text to host order UTF-16 units.
func UTF8ToUTF16(s str.String, policy Policy) ([]uint16, error) {
	sink := &SliceSink[uint16]{Units: make([]uint16, 0, s.Len())}
	_, err := Transcode[byte, uint16](sink, s.Iter(), UTF8{Policy: policy}, UTF16{})
	return sink.Units, err
}

// UTF16ToUTF8 converts host order UTF-16 units to an owned UTF-8 string.
func UTF16ToUTF8(units []uint16, policy Policy) (str.String, error) {
	var b str.Builder
	if _, err := Transcode[uint16, byte](&b, NewSliceSource(units), UTF16{Policy: policy}, UTF8{}); err != nil {
		return str.Empty, err
	}
	return b.Build(), nil
}

// Transcoder converts whole strings between byte level formats.
//
// A byte order mark of the From format at the start of the input is
// dropped. WriteBOM prefixes the output with the mark of the To format.
// Malformed sequences are logged at debug level when Logger is set.
type Transcoder struct {
	From     Format
	To       Format
	Policy   Policy
	WriteBOM bool
	Logger   *mdwlog.Logger
}

// Transcode converts in. Under PolicyFail the first malformed sequence
// aborts with a MALFORMED_INPUT error whose offset is a byte offset into in
// after the byte order mark.
func (t Transcoder) Transcode(in str.String) (str.String, Stats, error) {
	logger := t.Logger
	if logger == nil {
		logger = mdwlog.Nop()
	}
	timer := logger.StartTimer("codec.Transcode").
		WithField("from", t.From.String()).
		WithField("to", t.To.String())

	var stats Stats
	hook := func(offset int, reason string) {
		stats.Malformed++
		logger.Debug("malformed sequence", mdwlog.Fields{
			"format": t.From.String(),
			"offset": offset,
			"reason": reason,
		})
	}

	input := in
	if bom := t.From.BOM(); in.HasPrefix(str.View(bom)) {
		input = in.SubString(len(bom), str.ToEnd)
	}

	var out str.Builder
	if t.WriteBOM {
		out.AppendBytes(t.To.BOM())
	}

	next := newRuneReader(t.From, input, t.Policy, hook)
	put := newRuneWriter(t.To, &out)
	for {
		r, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			timer.WithField("runes", stats.Runes).StopWithError(err)
			return str.Empty, stats, err
		}
		if _, err := put(r); err != nil {
			timer.StopWithError(err)
			return str.Empty, stats, err
		}
		stats.Runes++
	}

	stats.UnitsIn = in.Len()
	stats.UnitsOut = out.Len()
	timer.WithField("runes", stats.Runes).
		WithField("malformed", stats.Malformed).
		Stop()
	return out.Build(), stats, nil
}

// newRuneReader returns a decode function over the bytes of in.
func newRuneReader(f Format, in str.String, policy Policy, hook MalformedFunc) func() (rune, error) {
	b := in.Bytes()
	switch f {
	case FormatUTF16LE, FormatUTF16BE:
		src := &byteUnits16{b: b}
		dec := UTF16{Order: f.Order(), Policy: policy, OnMalformed: hook}
		return func() (rune, error) {
			r, err := dec.Decode(src)
			if err == io.EOF && src.tail() {
				return partialUnit(policy, hook, "UTF16.Decode", src.pos)
			}
			return r, err
		}
	case FormatUTF32LE, FormatUTF32BE:
		src := &byteUnits32{b: b}
		dec := UTF32{Order: f.Order(), Policy: policy, OnMalformed: hook}
		return func() (rune, error) {
			r, err := dec.Decode(src)
			if err == io.EOF && src.tail() {
				return partialUnit(policy, hook, "UTF32.Decode", src.pos)
			}
			return r, err
		}
	default:
		src := in.Iter()
		dec := UTF8{Policy: policy, OnMalformed: hook}
		return func() (rune, error) {
			return dec.Decode(src)
		}
	}
}

func partialUnit(policy Policy, hook MalformedFunc, op string, offset int) (rune, error) {
	r, skip, err := resolve(policy, hook, op, offset, reasonPartialUnit)
	if skip {
		return 0, io.EOF
	}
	return r, err
}

// newRuneWriter returns an encode function appending to out.
func newRuneWriter(f Format, out *str.Builder) func(rune) (int, error) {
	switch f {
	case FormatUTF16LE, FormatUTF16BE:
		enc := UTF16{Order: f.Order()}
		sink := byteSink16{out}
		return func(r rune) (int, error) { return enc.Encode(sink, r) }
	case FormatUTF32LE, FormatUTF32BE:
		enc := UTF32{Order: f.Order()}
		sink := byteSink32{out}
		return func(r rune) (int, error) { return enc.Encode(sink, r) }
	default:
		enc := UTF8{}
		return func(r rune) (int, error) { return enc.Encode(out, r) }
	}
}

// byteUnits16 loads host order uint16 units from raw bytes. Index is a
// byte offset.
type byteUnits16 struct {
	b    []byte
	pos  int
	done bool
}

func (s *byteUnits16) TryPeek() (uint16, bool) {
	if len(s.b)-s.pos < 2 {
		return 0, false
	}
	return binary.NativeEndian.Uint16(s.b[s.pos:]), true
}

func (s *byteUnits16) TryGetNext() (uint16, bool) {
	u, ok := s.TryPeek()
	if ok {
		s.pos += 2
	}
	return u, ok
}

func (s *byteUnits16) Index() int { return s.pos }

// tail reports, once, whether a trailing partial unit remains.
func (s *byteUnits16) tail() bool {
	if s.done || s.pos >= len(s.b) {
		return false
	}
	s.done = true
	return true
}

type byteUnits32 struct {
	b    []byte
	pos  int
	done bool
}

func (s *byteUnits32) TryPeek() (rune, bool) {
	if len(s.b)-s.pos < 4 {
		return 0, false
	}
	return rune(binary.NativeEndian.Uint32(s.b[s.pos:])), true
}

func (s *byteUnits32) TryGetNext() (rune, bool) {
	u, ok := s.TryPeek()
	if ok {
		s.pos += 4
	}
	return u, ok
}

func (s *byteUnits32) Index() int { return s.pos }

func (s *byteUnits32) tail() bool {
	if s.done || s.pos >= len(s.b) {
		return false
	}
	s.done = true
	return true
}

// byteSink16 stores host order units as bytes.
type byteSink16 struct{ b *str.Builder }

func (s byteSink16) TryPush(u uint16) bool {
	if s.b.Len() > str.MaxLength-2 {
		return false
	}
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], u)
	s.b.AppendByte(buf[0])
	s.b.AppendByte(buf[1])
	return true
}

type byteSink32 struct{ b *str.Builder }

func (s byteSink32) TryPush(u rune) bool {
	if s.b.Len() > str.MaxLength-4 {
		return false
	}
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(u))
	for _, c := range buf {
		s.b.AppendByte(c)
	}
	return true
}
