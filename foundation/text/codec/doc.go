// Package codec implements UTF-8, UTF-16 and UTF-32 code point codecs.
//
// Package: codec
// Title: textkit Unicode Codecs
// Description: Decoders pull code units from a Source one code point at a
//              time; encoders push code units into a Sink. Malformed input
//              is resolved by a caller-selected Policy: replace with U+FFFD
//              (default), skip, or fail with a MALFORMED_INPUT error. The
//              bulk helpers and the byte level Transcoder build on these
//              primitives and a str.Builder.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation
//
// Usage:
//
//	src := str.ViewString("grüße").Iter()
//	dec := codec.UTF8{Policy: codec.PolicyFail}
//	for {
//		r, err := dec.Decode(src)
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Printf("U+%04X\n", r)
//	}
//
//	t := codec.Transcoder{From: codec.FormatUTF8, To: codec.FormatUTF16BE, WriteBOM: true}
//	out, stats, err := t.Transcode(str.ViewString("text"))
package codec
