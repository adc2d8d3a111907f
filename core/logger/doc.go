// Package logger provides a structured logging facility based on Zap.
//
// The CLI workflows log through a console-encoded logger by default; json
// encoding is available for running the tools under a pipeline scheduler.
//
// # Correlation
//
// WithRunID attaches the id of the current workflow run, which is also the id of
// its audit record. WithRayID attaches the request id set by the preview server.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Querying PDC")
package logger
