// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels, and contract violations are always critical.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-09-14 v0.2.0: Severity mapping for the text runtime codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates recoverable bad input, e.g. a malformed sequence
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with an obvious remedy
	SeverityMedium

	// SeverityHigh indicates an environment problem such as unreadable files
	SeverityHigh

	// SeverityCritical indicates a programmer error (contract violation)
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidOperation, CodeIndexOutOfRange, CodeLengthExceeded, CodeInvalidArgument, CodeInternal:
		return SeverityCritical

	case CodeIOFailure, CodeConfigError, CodeMissingConfig:
		return SeverityHigh

	case CodeMalformedInput, CodeInvalidInput, CodeInvalidFormat, CodeNotFound, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
