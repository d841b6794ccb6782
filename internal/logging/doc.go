// Package logging assembles the slog loggers used by the CLI and the upload
// server.
//
// It owns the console and JSON handlers, level and output plumbing, and a few
// context helpers so request handlers can tag every line with a correlation
// id. NewNop gives tests and optional wiring a logger that cannot fail.
package logging
