// Package error provides the structured error type used throughout textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: This package implements a structured error with a code, a
//              severity, free-form details, the failing operation and a
//              captured stack trace. String and codec operations raise
//              contract violations as panics carrying an *Error; recoverable
//              failures such as malformed input are returned as *Error values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-09-14 v0.2.0: Text runtime codes, removed request and localization data
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with categories and exit codes
// - Stack trace capture for debugging
// - JSON marshalling for structured logging
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("truncated UTF-8 sequence").
//		WithCode(mdwerror.CodeMalformedInput).
//		WithDetail("offset", 17).
//		WithOperation("codec.UTF8.Decode")
//
//	if mdwerror.HasCode(err, mdwerror.CodeMalformedInput) {
//		// skip the input
//	}
package error
