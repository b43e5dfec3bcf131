// Package errors provides the standard error constructors for all textkit
// modules.
//
// Package: errors
// Title: Standard Error Handling API for textkit Foundation
// Description: This package builds structured errors (see foundation/core/error)
//              with module and operation context. String and codec operations
//              use it for contract violations, which are raised as panics,
//              and for recoverable failures such as malformed input, which are
//              returned.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-09-14 v0.2.0: Text runtime taxonomy
//
// # Taxonomy
//
//   - Contract violations: InvalidOperation, IndexOutOfRange, LengthExceeded,
//     InvalidArgument. These are programmer errors; callers panic with them.
//   - Malformed input: Malformed. Returned by decoders under the fail policy.
//   - Streaming: SinkFull, IOFailure.
//   - Configuration: ConfigInvalid, NotFound, InvalidFormat.
//
// Parse failures are not errors at all: conversion functions report them with
// a boolean flag and a caller supplied fallback value.
//
// # Usage
//
//	if i >= s.Len() {
//		panic(errors.IndexOutOfRange(errors.ModuleStr, "At", i, s.Len()))
//	}
//
//	func run() (err error) {
//		defer errors.Recover(&err)
//		...
//	}
//
//	if errors.IsMalformed(err) {
//		log.Warn("input is not valid UTF-8")
//	}
package errors
