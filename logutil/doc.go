// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// Logs always go to stderr (or a writer supplied by the caller) and never to
// the stream that carries the process table.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(logutil.IsDebugEnabled(), false)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set PSLIST_DEBUG=true environment variable
//
// # Component Loggers
//
// NewLogger returns a logger tagged with a component name:
//
//	log := logutil.NewLogger("proctable").WithOperation("extract")
//	log.Debug("skipped process", "pid", 42, "reason", err)
//
// WithFields attaches further key-value pairs to every record:
//
//	log := logutil.NewLogger("cli").WithFields("mode", "all")
//
// When structured=true is passed to SetupLogger, logs are output as JSON;
// otherwise a human-readable text format is used.
package logutil
