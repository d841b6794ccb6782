// Package server exposes the export comparison over HTTP.
//
// POST /analyze takes two zipped Letterboxd exports (form fields export1 and
// export2), unpacks each into a per-request scratch directory, and answers with
// the overlap as JSON. The scratch directory is removed before the handler
// returns, whatever the outcome. The package also serves the upload page and a
// health probe, and holds a flock-based lock so one configuration runs one
// server.
package server
