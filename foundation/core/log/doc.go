// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging Framework
// Description: This package implements structured logging with context
//              fields, a per-run correlation id, four output formats and
//              integration with the structured error type. Library packages
//              accept a *Logger and default to Nop; the command line tool
//              configures level and format from settings and flags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-09-15 v0.2.0: Reduced to the needs of the text runtime
//
// Usage:
//
//	import mdwlog "github.com/msto63/textkit/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatLogfmt,
//	}).WithCorrelationID(uuid.NewString())
//
//	logger.Debug("replaced malformed sequence", mdwlog.Fields{
//		"offset": 17,
//		"policy": "replace",
//	})
//
//	timer := logger.StartTimer("transcode")
//	...
//	timer.StopWithError(err)
package log
