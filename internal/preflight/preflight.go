package preflight

import (
	"context"

	"lbxoverlap/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes every applicable check for cfg.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckDirectoryAccess("Scratch directory", cfg.Paths.ScratchDir),
	}
	if cfg.Paths.StaticDir != "" {
		results = append(results, CheckStaticDir(cfg.Paths.StaticDir))
	}
	results = append(results, CheckBindAddress(ctx, cfg.Server.Bind))

	batch := CheckDirectoryReadable("Batch root", cfg.Batch.Root)
	batch.Optional = true
	results = append(results, batch)
	return results
}

// Failed returns the required checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r)
		}
	}
	return failed
}
