// File: performance_test.go
// Title: textkit Foundation Performance Integration Tests
// Description: Benchmarks of pipelines that cross package boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-22
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of performance integration tests
// - 2026-09-22 v0.2.0: Transcoding, line reading and parsing pipelines

package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/msto63/textkit/foundation/text/codec"
	"github.com/msto63/textkit/foundation/text/conv"
	"github.com/msto63/textkit/foundation/text/lineio"
	"github.com/msto63/textkit/foundation/text/str"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

var sampleText = str.ViewString(strings.Repeat("Grüße aus 東京, 42 Äpfel und 😀 Emojis.\n", 512))

func BenchmarkTranscodeRoundTrip(b *testing.B) {
	to16 := codec.Transcoder{From: codec.FormatUTF8, To: codec.FormatUTF16LE}
	to8 := codec.Transcoder{From: codec.FormatUTF16LE, To: codec.FormatUTF8}

	b.SetBytes(int64(sampleText.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mid, _, err := to16.Transcode(sampleText)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := to8.Transcode(mid); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadLinesAndCount(b *testing.B) {
	data := sampleText.Bytes()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runes := 0
		r := lineio.NewReader(bytes.NewReader(data))
		for line := range r.Lines() {
			runes += mdwstringx.RuneCount(line)
		}
		if runes == 0 {
			b.Fatal("no runes counted")
		}
	}
}

func BenchmarkParseAndFormatNumbers(b *testing.B) {
	var src str.Builder
	for i := 0; i < 1000; i++ {
		src.AppendValueLine(conv.Int(i * 7919))
	}
	input := src.Build()

	b.SetBytes(int64(input.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out str.Builder
		for field := range input.Sections('\n', true) {
			v, ok := conv.ParseInt(field, 0)
			if !ok {
				b.Fatalf("cannot parse %q", field)
			}
			out.AppendValue(conv.Hex(v))
			out.AppendByte(' ')
		}
		_ = out.Build()
	}
}

func BenchmarkBuilderVersusJoin(b *testing.B) {
	parts := sampleText.Split(' ', true)
	sep := str.ViewString(" ")

	b.Run("builder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var out str.Builder
			for j, p := range parts {
				if j > 0 {
					out.Append(sep)
				}
				out.Append(p)
			}
			_ = out.Build()
		}
	})

	b.Run("join", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = mdwstringx.Join(parts, sep)
		}
	})
}
