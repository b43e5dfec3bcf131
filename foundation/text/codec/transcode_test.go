// File: transcode_test.go
// Title: Bulk Transcoding Tests
// Description: Byte level transcoding cross-checked against
//              golang.org/x/text, byte order marks, policies and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation

package codec

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/text/str"
)

var samples = []string{
	"",
	"plain ascii",
	"Grüße aus Köln",
	"日本語のテキスト",
	"emoji 😀🎉 and math 𝔸𝔹",
	"mixed\x00nul\ttab\r\n",
	string([]rune{0xD7FF, 0xE000, 0xFFFD, 0xFFFF, 0x10000, MaxRune}),
}

func oracle(f Format) encoding.Encoding {
	switch f {
	case FormatUTF16LE:
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)
	case FormatUTF16BE:
		return xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)
	case FormatUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case FormatUTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return xunicode.UTF8
	}
}

func TestTranscoderMatchesXText(t *testing.T) {
	for _, f := range AllFormats {
		t.Run(f.String(), func(t *testing.T) {
			for _, sample := range samples {
				want, err := oracle(f).NewEncoder().Bytes([]byte(sample))
				if err != nil {
					t.Fatalf("oracle: %v", err)
				}

				got, stats, err := Transcoder{From: FormatUTF8, To: f}.Transcode(str.ViewString(sample))
				if err != nil {
					t.Fatalf("Transcode(%q): %v", sample, err)
				}
				if !bytes.Equal(got.Bytes(), want) {
					t.Errorf("UTF-8 -> %s of %q:\n got % x\nwant % x", f, sample, got.Bytes(), want)
				}
				if stats.Runes != len([]rune(sample)) || stats.Malformed != 0 {
					t.Errorf("stats %+v for %q", stats, sample)
				}

				back, _, err := Transcoder{From: f, To: FormatUTF8, Policy: PolicyFail}.Transcode(str.View(want))
				if err != nil {
					t.Fatalf("%s -> UTF-8: %v", f, err)
				}
				if !back.EqualString(sample) {
					t.Errorf("round trip of %q gave %q", sample, back)
				}
			}
		})
	}
}

func TestTranscoderBOM(t *testing.T) {
	out, _, err := Transcoder{From: FormatUTF8, To: FormatUTF16BE, WriteBOM: true}.Transcode(str.ViewString("A"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0xFE, 0xFF, 0x00, 'A'}; !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got % x, want % x", out.Bytes(), want)
	}

	in := append([]byte{0xEF, 0xBB, 0xBF}, "text"...)
	out, _, err = Transcoder{From: FormatUTF8, To: FormatUTF8}.Transcode(str.View(in))
	if err != nil || !out.EqualString("text") {
		t.Errorf("BOM not stripped: %q, %v", out, err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		input []byte
		want  Format
		n     int
	}{
		{[]byte{0xEF, 0xBB, 0xBF, 'a'}, FormatUTF8, 3},
		{[]byte{0xFF, 0xFE, 'a', 0}, FormatUTF16LE, 2},
		{[]byte{0xFE, 0xFF, 0, 'a'}, FormatUTF16BE, 2},
		{[]byte{0xFF, 0xFE, 0, 0, 'a', 0, 0, 0}, FormatUTF32LE, 4},
		{[]byte{0, 0, 0xFE, 0xFF}, FormatUTF32BE, 4},
		{[]byte("no mark"), FormatUTF8, 0},
		{nil, FormatUTF8, 0},
	}
	for _, tt := range tests {
		f, n := DetectFormat(tt.input)
		if f != tt.want || n != tt.n {
			t.Errorf("DetectFormat(% x) = %s, %d; want %s, %d", tt.input, f, n, tt.want, tt.n)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"utf8":     FormatUTF8,
		"UTF-8":    FormatUTF8,
		"utf-16le": FormatUTF16LE,
		"UTF16BE":  FormatUTF16BE,
		"utf_32le": FormatUTF32LE,
		"utf32be":  FormatUTF32BE,
	}
	for in, want := range tests {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if got, _ := ParseFormat("utf16"); got.Order() != HostOrder() {
		t.Errorf("utf16 should follow host order, got %s", got)
	}
	if _, err := ParseFormat("latin1"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestTranscoderPolicies(t *testing.T) {
	input := str.View([]byte{'o', 'k', 0xFF, '!'})

	out, stats, err := Transcoder{From: FormatUTF8, To: FormatUTF8}.Transcode(input)
	if err != nil || !out.EqualString("ok�!") || stats.Malformed != 1 {
		t.Errorf("replace: %q %+v %v", out, stats, err)
	}

	out, stats, err = Transcoder{From: FormatUTF8, To: FormatUTF8, Policy: PolicySkip}.Transcode(input)
	if err != nil || !out.EqualString("ok!") || stats.Malformed != 1 {
		t.Errorf("skip: %q %+v %v", out, stats, err)
	}

	_, _, err = Transcoder{From: FormatUTF8, To: FormatUTF16LE, Policy: PolicyFail}.Transcode(input)
	if !mdwerrors.IsMalformed(err) || mdwerrors.ExtractDetails(err)["offset"] != 2 {
		t.Errorf("fail: %v", err)
	}
}

func TestTranscoderPartialUnit(t *testing.T) {
	input := str.View([]byte{'a', 0, 'b'})

	out, stats, err := Transcoder{From: FormatUTF16LE, To: FormatUTF8}.Transcode(input)
	if err != nil || !out.EqualString("a�") || stats.Malformed != 1 {
		t.Errorf("replace: %q %+v %v", out, stats, err)
	}

	out, _, err = Transcoder{From: FormatUTF16LE, To: FormatUTF8, Policy: PolicySkip}.Transcode(input)
	if err != nil || !out.EqualString("a") {
		t.Errorf("skip: %q %v", out, err)
	}

	_, _, err = Transcoder{From: FormatUTF16LE, To: FormatUTF8, Policy: PolicyFail}.Transcode(input)
	if !mdwerrors.IsMalformed(err) || mdwerrors.ExtractDetails(err)["offset"] != 2 {
		t.Errorf("fail: %v", err)
	}

	_, _, err = Transcoder{From: FormatUTF32BE, To: FormatUTF8, Policy: PolicyFail}.Transcode(str.View([]byte{0, 0, 0}))
	if !mdwerrors.IsMalformed(err) {
		t.Errorf("UTF-32 partial: %v", err)
	}
}

func TestTranscoderLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: &buf,
	})

	_, _, err := Transcoder{From: FormatUTF8, To: FormatUTF8, Logger: logger}.Transcode(str.View([]byte{0x80}))
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"malformed sequence", "reason=", "codec.Transcode completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestUTF8UTF16Helpers(t *testing.T) {
	units, err := UTF8ToUTF16(str.ViewString("a😀"), PolicyFail)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 3 || units[0] != 'a' || units[1] != 0xD83D || units[2] != 0xDE00 {
		t.Errorf("UTF8ToUTF16 = %x", units)
	}

	s, err := UTF16ToUTF8(units, PolicyFail)
	if err != nil || !s.EqualString("a😀") || !s.IsOwned() {
		t.Errorf("UTF16ToUTF8 = %q, %v", s, err)
	}

	if _, err := UTF16ToUTF8([]uint16{0xDC00}, PolicyFail); !mdwerrors.IsMalformed(err) {
		t.Errorf("expected malformed, got %v", err)
	}
}

func TestTranscodeUnitStats(t *testing.T) {
	sink := &SliceSink[uint16]{}
	stats, err := Transcode[byte, uint16](sink, NewSliceSource([]byte("é😀")), UTF8{}, UTF16{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runes != 2 || stats.UnitsIn != 6 || stats.UnitsOut != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func BenchmarkTranscoderUTF8ToUTF16(b *testing.B) {
	input := str.ViewString(strings.Repeat("Grüße 世界 😀 ", 64))
	t := Transcoder{From: FormatUTF8, To: FormatUTF16LE}
	b.SetBytes(int64(input.Len()))
	for i := 0; i < b.N; i++ {
		_, _, _ = t.Transcode(input)
	}
}
