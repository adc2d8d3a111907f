// Package server holds the preview HTTP server configuration.
//
// The preview server exposes dry-run reconciliation plans over HTTP. It never
// executes commands, so it only needs a listen port, a read timeout and an
// optional API key.
package server
