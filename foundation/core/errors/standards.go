// File: standards.go
// Title: Error Standards for textkit Foundation
// Description: Module identifiers and the standardized constructors used by
//              every textkit package to report contract violations, malformed
//              input, backpressure and I/O problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-09-14 v0.2.0: Modules and constructors of the text runtime

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStr     = "str"
	ModuleCodec   = "codec"
	ModuleConv    = "conv"
	ModuleLineio  = "lineio"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// InvalidOperation reports an operation that is not allowed in the current
// state, such as writing through a view.
func InvalidOperation(module, operation, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s", module, operation, reason).
		Code(mdwerror.CodeInvalidOperation).
		Severity(mdwerror.SeverityCritical).
		Build()
}

// IndexOutOfRange reports an index outside [0, length).
func IndexOutOfRange(module, operation string, index, length int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: index %d out of range [0,%d)", module, operation, index, length).
		Code(mdwerror.CodeIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Severity(mdwerror.SeverityCritical).
		Build()
}

// LengthExceeded reports a requested length above the representable maximum
// or below zero.
func LengthExceeded(module, operation string, length, max int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: length %d outside [0,%d]", module, operation, length, max).
		Code(mdwerror.CodeLengthExceeded).
		Detail("length", length).
		Detail("max", max).
		Severity(mdwerror.SeverityCritical).
		Build()
}

// InvalidArgument reports an argument outside the accepted domain, such as a
// radix of 1.
func InvalidArgument(module, operation, name string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid %s %v, expected %s", module, operation, name, value, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("argument", name).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityCritical).
		Build()
}

// Malformed reports an invalid unit sequence found at offset (counted in
// input units).
func Malformed(module, operation string, offset int, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: malformed input at offset %d: %s", module, operation, offset, reason).
		Code(mdwerror.CodeMalformedInput).
		Detail("offset", offset).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// SinkFull reports a sink that refused a unit.
func SinkFull(module, operation string, written int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: sink refused unit after %d units", module, operation, written).
		Code(mdwerror.CodeSinkFull).
		Detail("written", written).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// IOFailure wraps an error returned by an underlying reader or writer.
func IOFailure(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: i/o failure", module, operation).
		Cause(cause).
		Code(mdwerror.CodeIOFailure).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ConfigInvalid reports a configuration value that failed validation.
func ConfigInvalid(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message(fmt.Sprintf("invalid configuration %s=%v: %s", key, value, reason)).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}
