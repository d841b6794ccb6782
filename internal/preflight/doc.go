// Package preflight provides readiness checks for the filesystem paths and
// network settings the upload server and batch runner depend on.
//
// The server runs RunAll before it starts listening and refuses to start when a
// required check fails; the CLI "check" command renders the same results.
package preflight
