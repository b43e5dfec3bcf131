// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder, the standardized constructors and
//              panic recovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14

package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if err.Operation() != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", err.Operation())
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
		if err.Code() != mdwerror.CodeUnknown {
			t.Errorf("Expected code UNKNOWN, got %v", err.Code())
		}
	})
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *mdwerror.Error
		code     mdwerror.Code
		severity mdwerror.Severity
		module   string
		contains string
	}{
		{
			name:     "invalid operation",
			err:      InvalidOperation(ModuleStr, "Set", "string is a view"),
			code:     mdwerror.CodeInvalidOperation,
			severity: mdwerror.SeverityCritical,
			module:   ModuleStr,
			contains: "string is a view",
		},
		{
			name:     "index out of range",
			err:      IndexOutOfRange(ModuleStr, "At", 10, 4),
			code:     mdwerror.CodeIndexOutOfRange,
			severity: mdwerror.SeverityCritical,
			module:   ModuleStr,
			contains: "index 10 out of range [0,4)",
		},
		{
			name:     "length exceeded",
			err:      LengthExceeded(ModuleStr, "MakeOwned", -1, 100),
			code:     mdwerror.CodeLengthExceeded,
			severity: mdwerror.SeverityCritical,
			module:   ModuleStr,
			contains: "length -1 outside [0,100]",
		},
		{
			name:     "invalid argument",
			err:      InvalidArgument(ModuleConv, "FormatInt", "radix", 1, "2..16"),
			code:     mdwerror.CodeInvalidArgument,
			severity: mdwerror.SeverityCritical,
			module:   ModuleConv,
			contains: "invalid radix 1",
		},
		{
			name:     "malformed",
			err:      Malformed(ModuleCodec, "UTF8.Decode", 3, "truncated sequence"),
			code:     mdwerror.CodeMalformedInput,
			severity: mdwerror.SeverityLow,
			module:   ModuleCodec,
			contains: "offset 3",
		},
		{
			name:     "sink full",
			err:      SinkFull(ModuleCodec, "Transcode", 8),
			code:     mdwerror.CodeSinkFull,
			severity: mdwerror.SeverityMedium,
			module:   ModuleCodec,
			contains: "after 8 units",
		},
		{
			name:     "io failure",
			err:      IOFailure(ModuleLineio, "ReadLine", io.ErrUnexpectedEOF),
			code:     mdwerror.CodeIOFailure,
			severity: mdwerror.SeverityHigh,
			module:   ModuleLineio,
			contains: "unexpected EOF",
		},
		{
			name:     "config invalid",
			err:      ConfigInvalid("codec.policy", "loud", "unknown policy"),
			code:     mdwerror.CodeInvalidConfig,
			severity: mdwerror.SeverityLow,
			module:   ModuleConfig,
			contains: "codec.policy=loud",
		},
		{
			name:     "not found",
			err:      NotFound(ModuleCodec, "ParseFormat", "utf-7"),
			code:     mdwerror.CodeNotFound,
			severity: mdwerror.SeverityLow,
			module:   ModuleCodec,
			contains: "utf-7 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.severity)
			}
			if got := ExtractModule(tt.err); got != tt.module {
				t.Errorf("ExtractModule() = %q, want %q", got, tt.module)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestInvalidInputAndFormat(t *testing.T) {
	err := InvalidInput(ModuleCLI, "transcode", "utf-9", "utf8|utf16le|utf16be|utf32le|utf32be")
	if err.Code() != mdwerror.CodeInvalidInput {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Details()["expected"] == nil {
		t.Error("expected detail missing")
	}

	ferr := InvalidFormat(ModuleConfig, "settings.ini", "toml or yaml")
	if ferr.Code() != mdwerror.CodeInvalidFormat {
		t.Errorf("Code() = %v", ferr.Code())
	}
}

func TestIsModuleOperation(t *testing.T) {
	err := Malformed(ModuleCodec, "UTF16.Decode", 0, "lone trail surrogate")

	if !IsModuleOperation(err, ModuleCodec, "UTF16.Decode") {
		t.Error("IsModuleOperation() = false, want true")
	}
	if IsModuleOperation(err, ModuleStr, "UTF16.Decode") {
		t.Error("IsModuleOperation() matched the wrong module")
	}

	wrapped := fmt.Errorf("pipeline: %w", err)
	if ExtractOperation(wrapped) != "UTF16.Decode" {
		t.Errorf("ExtractOperation() through fmt wrapping = %q", ExtractOperation(wrapped))
	}
	if ExtractModule(errors.New("plain")) != "" {
		t.Error("ExtractModule() of a plain error should be empty")
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		contract  bool
		malformed bool
	}{
		{"index", IndexOutOfRange(ModuleStr, "At", 1, 0), true, false},
		{"view write", InvalidOperation(ModuleStr, "Fill", "view"), true, false},
		{"malformed", Malformed(ModuleCodec, "Decode", 0, "x"), false, true},
		{"wrapped malformed", mdwerror.Wrap(Malformed(ModuleCodec, "Decode", 0, "x"), "transcode"), false, true},
		{"plain", errors.New("x"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContractViolation(tt.err); got != tt.contract {
				t.Errorf("IsContractViolation() = %v, want %v", got, tt.contract)
			}
			if got := IsMalformed(tt.err); got != tt.malformed {
				t.Errorf("IsMalformed() = %v, want %v", got, tt.malformed)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	t.Run("structured panic becomes error", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err)
			panic(IndexOutOfRange(ModuleStr, "At", 5, 2))
		}

		err := run()
		if !mdwerror.HasCode(err, mdwerror.CodeIndexOutOfRange) {
			t.Errorf("Recover() stored %v, want INDEX_OUT_OF_RANGE", err)
		}
	})

	t.Run("no panic leaves error untouched", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err)
			return io.EOF
		}

		if err := run(); err != io.EOF {
			t.Errorf("run() = %v, want io.EOF", err)
		}
	})

	t.Run("foreign panic is re-raised", func(t *testing.T) {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()

		func() (err error) {
			defer Recover(&err)
			panic("boom")
		}()
		t.Error("foreign panic was swallowed")
	})
}
