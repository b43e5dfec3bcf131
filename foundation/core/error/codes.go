// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit. Codes classify
//              failures into contract violations, malformed input,
//              backpressure, configuration and I/O problems so callers can
//              react without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-09-14 v0.2.0: Reduced to the text runtime taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Contract violations (programmer errors, raised as panics)
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeIndexOutOfRange  Code = "INDEX_OUT_OF_RANGE"
	CodeLengthExceeded   Code = "LENGTH_EXCEEDED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"

	// Input handling
	CodeMalformedInput Code = "MALFORMED_INPUT"
	CodeInvalidInput   Code = "INVALID_INPUT"
	CodeInvalidFormat  Code = "INVALID_FORMAT"

	// Streaming
	CodeSinkFull  Code = "SINK_FULL"
	CodeIOFailure Code = "IO_FAILURE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidOperation, CodeIndexOutOfRange, CodeLengthExceeded, CodeInvalidArgument,
		CodeMalformedInput, CodeInvalidInput, CodeInvalidFormat,
		CodeSinkFull, CodeIOFailure,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidOperation, CodeIndexOutOfRange, CodeLengthExceeded, CodeInvalidArgument:
		return "contract"
	case CodeMalformedInput, CodeInvalidInput, CodeInvalidFormat:
		return "input"
	case CodeSinkFull, CodeIOFailure:
		return "stream"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsContractViolation reports whether the code marks a programmer error.
func (c Code) IsContractViolation() bool {
	return c.Category() == "contract"
}

// ExitCode maps the code to a process exit status for the command line tool.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 65 // EX_DATAERR
	case "configuration":
		return 78 // EX_CONFIG
	case "stream":
		return 74 // EX_IOERR
	case "contract":
		return 70 // EX_SOFTWARE
	default:
		return 1
	}
}
