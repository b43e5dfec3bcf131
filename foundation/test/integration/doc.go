// Package integration holds tests that cross package boundaries of the
// textkit foundation.
//
// Package: integration
// Title: textkit Foundation Integration Tests
// Description: Verifies that the text packages agree on error codes,
//              severities and modules, that settings loaded through config
//              drive the codec and line reader, and that data flows through
//              builder, codec, line reader and conversion without loss.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-22
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-09-22 v0.2.0: Rewritten for the text runtime packages
//
// Test Categories:
//
// Error Integration Tests (error_integration_test.go):
//   - Contract violations panic with critical errors in every package
//   - Malformed input errors carry module, offset and reason
//   - Stream failures keep their cause through wrapping
//
// Module Integration Tests (module_integration_test.go):
//   - Settings from config select codec policy and line reader options
//   - UTF-16 input read line by line and parsed into numbers
//   - Round trips through builder and codecs
//
// Performance Integration Tests (performance_test.go):
//   - Transcoding, line reading and number parsing pipelines
//
// Running:
//
//	go test ./foundation/test/integration/...
//	go test -bench=. ./foundation/test/integration/...
package integration
