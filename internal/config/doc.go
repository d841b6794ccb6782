// Package config loads, normalizes, and validates lbxoverlap configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as PORT. Both the batch
// runner and the upload server obtain their settings through this package so
// they see the same sanitized paths and validation errors.
package config
