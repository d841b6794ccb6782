package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lbxoverlap/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify directories and the listen address before serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cmd.Context(), cfg)
			for _, line := range checkLines(ctx.configPath, ctx.configSeen, results, colorize) {
				fmt.Fprintln(out, line)
			}
			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d required check(s) failed", len(failed))
			}
			return nil
		},
	}
}

func checkLines(configPath string, configExists bool, results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results)+3)
	lines = append(lines, renderSectionHeader("Preflight", colorize)...)

	if configExists {
		lines = append(lines, renderStatusLine("Config", statusOK, configPath, colorize))
	} else {
		lines = append(lines, renderStatusLine("Config", statusInfo, "defaults (no config file found)", colorize))
	}

	for _, r := range results {
		kind := statusOK
		switch {
		case r.Passed:
		case r.Optional:
			kind = statusWarn
		default:
			kind = statusError
		}
		lines = append(lines, renderStatusLine(r.Name, kind, r.Detail, colorize))
	}
	return lines
}
