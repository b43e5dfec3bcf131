// File: error_integration_test.go
// Title: Error Handling Integration Tests
// Description: Tests that contract violations, malformed input and stream
//              failures are reported the same way by every text package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-22
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of error integration tests
// - 2026-09-22 v0.2.0: Contract, malformed and stream errors of the text packages

package integration

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/text/codec"
	"github.com/msto63/textkit/foundation/text/conv"
	"github.com/msto63/textkit/foundation/text/lineio"
	"github.com/msto63/textkit/foundation/text/str"
)

// capture runs fn and returns the contract violation it raised
func capture(fn func()) (err error) {
	defer mdwerrors.Recover(&err)
	fn()
	return nil
}

func TestContractViolations(t *testing.T) {
	testCases := []struct {
		name   string
		fn     func()
		module string
		code   mdwerror.Code
	}{
		{
			name:   "mutating a view",
			fn:     func() { str.ViewString("abc").Set(0, 'x') },
			module: mdwerrors.ModuleStr,
			code:   mdwerror.CodeInvalidOperation,
		},
		{
			name:   "index past the end",
			fn:     func() { str.ViewString("abc").At(3) },
			module: mdwerrors.ModuleStr,
			code:   mdwerror.CodeIndexOutOfRange,
		},
		{
			name:   "negative length",
			fn:     func() { str.MakeOwned(-1) },
			module: mdwerrors.ModuleStr,
			code:   mdwerror.CodeLengthExceeded,
		},
		{
			name:   "tiny builder buffer",
			fn:     func() { str.NewBuilderSize(2) },
			module: mdwerrors.ModuleStr,
			code:   mdwerror.CodeInvalidArgument,
		},
		{
			name:   "radix out of range",
			fn:     func() { conv.FormatInt(10, 17) },
			module: mdwerrors.ModuleConv,
			code:   mdwerror.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := capture(tc.fn)
			if err == nil {
				t.Fatal("expected a panic")
			}
			if !mdwerrors.IsContractViolation(err) {
				t.Errorf("expected a contract violation, got %v", err)
			}
			if got := mdwerror.GetCode(err); got != tc.code {
				t.Errorf("code = %s, want %s", got, tc.code)
			}
			if got := mdwerrors.ExtractModule(err); got != tc.module {
				t.Errorf("module = %q, want %q", got, tc.module)
			}
			if mdwerror.GetSeverity(err) != mdwerror.SeverityCritical {
				t.Errorf("severity = %s", mdwerror.GetSeverity(err))
			}
			if mdwerror.GetCode(err).ExitCode() != 70 {
				t.Errorf("exit code = %d", mdwerror.GetCode(err).ExitCode())
			}
		})
	}
}

func TestMalformedInputErrors(t *testing.T) {
	testCases := []struct {
		name   string
		decode func() error
		offset int
	}{
		{
			name: "utf8 decoder",
			decode: func() error {
				_, err := codec.DecodeMulti[byte](codec.UTF8{Policy: codec.PolicyFail},
					codec.NewSliceSource([]byte("ab\xc0\xafc")))
				return err
			},
			offset: 2,
		},
		{
			name: "utf16 decoder",
			decode: func() error {
				_, err := codec.DecodeMulti[uint16](codec.UTF16{Policy: codec.PolicyFail},
					codec.NewSliceSource([]uint16{'a', 0xDC00}))
				return err
			},
			offset: 1,
		},
		{
			name: "transcoder",
			decode: func() error {
				t := codec.Transcoder{From: codec.FormatUTF8, To: codec.FormatUTF16LE, Policy: codec.PolicyFail}
				_, _, err := t.Transcode(str.ViewString("xyz\xff"))
				return err
			},
			offset: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.decode()
			if !mdwerrors.IsMalformed(err) {
				t.Fatalf("expected malformed input, got %v", err)
			}
			details := mdwerrors.ExtractDetails(err)
			if details["module"] != mdwerrors.ModuleCodec {
				t.Errorf("module = %v", details["module"])
			}
			if details["offset"] != tc.offset {
				t.Errorf("offset = %v, want %d", details["offset"], tc.offset)
			}
			if reason, _ := details["reason"].(string); reason == "" {
				t.Error("reason missing")
			}
			if mdwerror.GetSeverity(err) != mdwerror.SeverityLow {
				t.Errorf("severity = %s", mdwerror.GetSeverity(err))
			}
			if mdwerrors.IsContractViolation(err) {
				t.Error("malformed input is not a contract violation")
			}
		})
	}
}

func TestStreamFailures(t *testing.T) {
	cause := errors.New("device unplugged")
	r := lineio.NewReader(io.MultiReader(strings.NewReader("first\n"), iotest.ErrReader(cause)))

	if line, err := r.ReadLine(); err != nil || !line.EqualString("first") {
		t.Fatalf("first line: %q, %v", line, err)
	}
	_, err := r.ReadLine()
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}

	wrapped := mdwerror.Wrap(err, "reading numbers")
	if !mdwerror.HasCode(wrapped, mdwerror.CodeIOFailure) {
		t.Error("wrapping must keep the code")
	}
	if mdwerrors.ExtractModule(wrapped) != mdwerrors.ModuleLineio {
		t.Errorf("module = %q", mdwerrors.ExtractModule(wrapped))
	}
	if mdwerror.GetCode(wrapped).ExitCode() != 74 {
		t.Errorf("exit code = %d", mdwerror.GetCode(wrapped).ExitCode())
	}

	sink := &codec.SliceSink[byte]{Limit: 1}
	_, err = codec.UTF8{}.Encode(sink, 'é')
	if !mdwerror.HasCode(err, mdwerror.CodeSinkFull) {
		t.Errorf("expected SINK_FULL, got %v", err)
	}
}

func TestParseFailuresAreNotErrors(t *testing.T) {
	for _, input := range []string{"", "x", "1.2.3", "--1", "99999999999999999999"} {
		s := str.ViewString(input)
		if v, ok := conv.ParseInt(s, -7); ok || v != -7 {
			t.Errorf("ParseInt(%q) = %d, %v", input, v, ok)
		}
	}
}
