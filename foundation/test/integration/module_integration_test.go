// File: module_integration_test.go
// Title: Module Integration Tests
// Description: Tests data flow between config, builder, codec, line reader,
//              conversion and stringx.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-22
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of module integration tests
// - 2026-09-22 v0.2.0: Pipelines over the text runtime packages

package integration

import (
	"bytes"
	"testing"

	"github.com/msto63/textkit/foundation/core/config"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/text/codec"
	"github.com/msto63/textkit/foundation/text/conv"
	"github.com/msto63/textkit/foundation/text/lineio"
	"github.com/msto63/textkit/foundation/text/str"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func TestSettingsDriveCodecAndReader(t *testing.T) {
	c, err := config.LoadFromString(`
[codec]
policy = "skip"

[lines]
chunk_size = 4
trim_cr = true
`, config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	settings, err := config.FromConfig(c)
	if err != nil {
		t.Fatal(err)
	}

	policy, err := codec.ParsePolicy(settings.CodecPolicy)
	if err != nil || policy != codec.PolicySkip {
		t.Fatalf("policy = %v, %v", policy, err)
	}

	tc := codec.Transcoder{From: codec.FormatUTF8, To: codec.FormatUTF8, Policy: policy}
	clean, stats, err := tc.Transcode(str.ViewString("alpha\xff\r\nbeta gamma delta\r\n"))
	if err != nil || stats.Malformed != 1 {
		t.Fatalf("transcode: %v, %+v", err, stats)
	}

	r := lineio.NewReader(bytes.NewReader(clean.Bytes()),
		lineio.WithChunkSize(settings.LinesChunkSize),
		lineio.WithTrimCR(settings.LinesTrimCR))
	var lines []string
	for line := range r.Lines() {
		lines = append(lines, line.String())
	}
	if len(lines) != 2 || lines[0] != "alpha" || lines[1] != "beta gamma delta" {
		t.Errorf("lines = %q", lines)
	}
}

func TestUTF16NumbersPipeline(t *testing.T) {
	// Numbers stored as UTF-16LE with BOM, one per line
	var src str.Builder
	for _, n := range []string{"12", "-5", "  30 ", "x", "1.5"} {
		src.AppendTextLine(n)
	}
	utf16, _, err := codec.Transcoder{
		From: codec.FormatUTF8, To: codec.FormatUTF16LE, WriteBOM: true,
	}.Transcode(src.Build())
	if err != nil {
		t.Fatal(err)
	}

	format, bomLen := codec.DetectFormat(utf16.Bytes())
	if format != codec.FormatUTF16LE || bomLen != 2 {
		t.Fatalf("DetectFormat = %s, %d", format, bomLen)
	}
	utf8, _, err := codec.Transcoder{From: format, To: codec.FormatUTF8}.Transcode(utf16)
	if err != nil {
		t.Fatal(err)
	}

	var sum int64
	var rejected []string
	r := lineio.NewReader(bytes.NewReader(utf8.Bytes()))
	for line := range r.Lines() {
		if v, ok := conv.ParseInt(line, 0); ok {
			sum += v
		} else {
			rejected = append(rejected, line.String())
		}
	}
	if sum != 37 {
		t.Errorf("sum = %d, want 37", sum)
	}
	if len(rejected) != 2 || rejected[0] != "x" || rejected[1] != "1.5" {
		t.Errorf("rejected = %q", rejected)
	}

	var out str.Builder
	out.AppendText("sum=")
	out.AppendValue(conv.Int(sum))
	out.AppendText(" hex=")
	out.AppendValue(conv.Hex(sum))
	if got := out.Build(); !got.EqualString("sum=37 hex=25") {
		t.Errorf("report = %q", got)
	}
}

func TestRoundTripThroughAllFormats(t *testing.T) {
	text := str.ViewString("textkit: ASCII, Ünïcödé, 日本語, 😀 and \U0010FFFF")

	for _, f := range codec.AllFormats {
		t.Run(f.String(), func(t *testing.T) {
			encoded, _, err := codec.Transcoder{From: codec.FormatUTF8, To: f, WriteBOM: true}.Transcode(text)
			if err != nil {
				t.Fatal(err)
			}
			detected, _ := codec.DetectFormat(encoded.Bytes())
			if detected != f {
				t.Fatalf("detected %s", detected)
			}
			decoded, stats, err := codec.Transcoder{From: detected, To: codec.FormatUTF8, Policy: codec.PolicyFail}.Transcode(encoded)
			if err != nil {
				t.Fatal(err)
			}
			if !str.Equal(decoded, text) {
				t.Errorf("round trip = %q", decoded)
			}
			if stats.Runes != mdwstringx.RuneCount(text) {
				t.Errorf("runes = %d, want %d", stats.Runes, mdwstringx.RuneCount(text))
			}
		})
	}
}

func TestBuilderAndStringxAgree(t *testing.T) {
	words := str.ViewString("buffer size,chunk size,,trim cr").Split(',', true)

	snake := make([]str.String, len(words))
	for i, w := range words {
		snake[i] = mdwstringx.ToSnakeCase(w)
	}
	joined := mdwstringx.Join(snake, str.ViewString("|"))
	if !joined.EqualString("buffer_size|chunk_size|trim_cr") {
		t.Fatalf("joined = %q", joined)
	}

	b := str.NewBuilderSize(str.MinBufferSize)
	for i, s := range snake {
		if i > 0 {
			b.AppendByte('|')
		}
		b.Append(s)
	}
	if !str.Equal(b.Build(), joined) {
		t.Error("builder and Join disagree")
	}

	units, err := codec.UTF8ToUTF16(mdwstringx.ToUpperASCII(joined), codec.PolicyFail)
	if err != nil {
		t.Fatal(err)
	}
	back, err := codec.UTF16ToUTF8(units, codec.PolicyFail)
	if err != nil || !back.EqualString("BUFFER_SIZE|CHUNK_SIZE|TRIM_CR") {
		t.Errorf("back = %q, %v", back, err)
	}
}

func TestTranscoderLogsMalformedSequences(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: &buf,
	}).WithCorrelationID("run-1")

	_, stats, err := codec.Transcoder{
		From: codec.FormatUTF16LE, To: codec.FormatUTF8, Logger: logger,
	}.Transcode(str.View([]byte{'a', 0, 0x00, 0xDC, 'b'}))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Malformed != 2 {
		t.Errorf("malformed = %d, want 2", stats.Malformed)
	}
	out := buf.String()
	for _, want := range []string{`message="malformed sequence"`, "correlation_id=run-1", "offset=2", "offset=4"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("log misses %s:\n%s", want, out)
		}
	}
}
