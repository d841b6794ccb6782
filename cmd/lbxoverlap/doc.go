// Package main hosts the lbxoverlap CLI entrypoint and command graph.
//
// The Cobra command tree compares two Letterboxd exports from the terminal
// (either explicit directories or zip files, or the first two letterboxd-*
// folders under a root), runs the HTTP upload server, reports startup checks,
// and scaffolds configuration. Comparison logic lives in the internal
// packages; commands here only resolve inputs and render output.
package main
