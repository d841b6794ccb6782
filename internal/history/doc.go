// Package history parses Letterboxd-style export files into validated records.
//
// An export file is comma-delimited text with a header line followed by rows of
// the form date, name..., year, uri. Names may contain commas, either quoted or
// split across several raw fields, so the loader maps fields by position from
// both ends and rejoins everything in between as the title.
//
// Loading never fails: a missing file is an empty Dataset and malformed rows are
// dropped. LoadWithStats exposes drop counters for diagnostics without changing
// what Load returns.
package history
