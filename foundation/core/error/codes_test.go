// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation, categorization and exit
//              code mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive code tests
// - 2026-09-14 v0.2.0: Exit code mapping instead of HTTP status

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeIndexOutOfRange, "INDEX_OUT_OF_RANGE"},
		{CodeMalformedInput, "MALFORMED_INPUT"},
		{CodeSinkFull, "SINK_FULL"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeLengthExceeded, true},
		{"config code", CodeInvalidConfig, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidOperation, "contract"},
		{CodeIndexOutOfRange, "contract"},
		{CodeLengthExceeded, "contract"},
		{CodeInvalidArgument, "contract"},
		{CodeMalformedInput, "input"},
		{CodeInvalidFormat, "input"},
		{CodeSinkFull, "stream"},
		{CodeIOFailure, "stream"},
		{CodeConfigError, "configuration"},
		{CodeNotFound, "generic"},
		{Code("CUSTOM"), "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsContractViolation(t *testing.T) {
	if !CodeInvalidOperation.IsContractViolation() {
		t.Error("INVALID_OPERATION should be a contract violation")
	}
	if CodeMalformedInput.IsContractViolation() {
		t.Error("MALFORMED_INPUT should not be a contract violation")
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeMalformedInput, 65},
		{CodeInvalidConfig, 78},
		{CodeIOFailure, 74},
		{CodeIndexOutOfRange, 70},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("Code.ExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
