package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lbxoverlap/internal/archive"
	"lbxoverlap/internal/config"
	"lbxoverlap/internal/discovery"
	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/fileutil"
	"lbxoverlap/internal/logging"
	"lbxoverlap/internal/overlap"
	"lbxoverlap/internal/watch"
)

type compareOptions struct {
	root        string
	format      string
	json        bool
	diagnostics bool
	watch       bool
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare [EXPORT_A EXPORT_B]",
		Short: "Compare two Letterboxd exports",
		Long: "Compare two Letterboxd exports and list the films both users have watched\n" +
			"and both have on their watchlist.\n\n" +
			"Each export may be an unpacked directory or the zip downloaded from Letterboxd.\n" +
			"With no arguments, the first two letterboxd-* folders under --root are used.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("compare takes zero or two exports, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = logging.NewComponentLogger(logger, "compare")

			format := strings.ToLower(strings.TrimSpace(opts.format))
			if format == "" {
				format = cfg.Batch.Format
			}
			if format != "text" && format != "table" {
				return fmt.Errorf("unsupported format %q (expected text or table)", opts.format)
			}

			if opts.watch {
				for _, arg := range args {
					if isZipArchive(arg) {
						return fmt.Errorf("--watch needs export directories, not %s", arg)
					}
				}
			}

			dirA, dirB, cleanup, err := resolveExports(cfg, opts.root, args)
			defer cleanup()
			if err != nil {
				return err
			}
			logger.Debug("comparing exports", logging.String("first", dirA), logging.String("second", dirB))

			if err := runComparison(cmd, opts, format, dirA, dirB); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			watcher, err := watch.New([]string{dirA, dirB}, watch.DefaultDebounce, logger)
			if err != nil {
				return err
			}
			defer watcher.Close()

			err = watcher.Run(signalCtx, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out)
				for _, line := range renderSectionHeader("Updated "+time.Now().Format(time.TimeOnly), shouldColorize(out)) {
					fmt.Fprintln(out, line)
				}
				if err := runComparison(cmd, opts, format, dirA, dirB); err != nil {
					logger.Warn("compare failed", logging.Error(err))
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Directory scanned for letterboxd-* folders (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Report format: text or table (default from config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Emit the overlap as JSON")
	cmd.Flags().BoolVar(&opts.diagnostics, "diagnostics", false, "Report row counts and dropped rows per file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Compare again whenever either export's CSV files change")
	return cmd
}

func runComparison(cmd *cobra.Command, opts compareOptions, format, dirA, dirB string) error {
	result, a, b, err := overlap.CompareDirs(dirA, dirB)
	if err != nil {
		return err
	}

	if opts.json {
		return writeJSON(cmd, result.Payload())
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	switch format {
	case "table":
		writeTableReport(out, result, colorize)
	default:
		writeTextReport(out, result)
	}
	if opts.diagnostics {
		writeDiagnostics(out, []overlap.Source{a, b}, colorize)
	}
	return nil
}

// resolveExports turns the command arguments into two export directories.
// The returned cleanup removes any scratch space used for zip inputs and is
// safe to call on error.
func resolveExports(cfg *config.Config, rootFlag string, args []string) (string, string, func(), error) {
	noop := func() {}
	if len(args) == 0 {
		root := strings.TrimSpace(rootFlag)
		if root == "" {
			root = cfg.Batch.Root
		}
		expanded, err := config.ExpandPath(root)
		if err != nil {
			return "", "", noop, fmt.Errorf("resolve root: %w", err)
		}
		dirA, dirB, err := discovery.FindPair(expanded)
		return dirA, dirB, noop, err
	}

	var scratch string
	cleanup := func() {
		if scratch != "" {
			_ = os.RemoveAll(scratch)
		}
	}

	dirs := make([]string, 0, len(args))
	for _, arg := range args {
		if !isZipArchive(arg) {
			dirs = append(dirs, arg)
			continue
		}
		if scratch == "" {
			dir, err := os.MkdirTemp(cfg.Paths.ScratchDir, "lbxoverlap-compare-*")
			if err != nil {
				return "", "", cleanup, fmt.Errorf("create scratch dir: %w", err)
			}
			scratch = dir
		}
		dir, err := unpackExport(arg, filepath.Join(scratch, fmt.Sprintf("%d", len(dirs)+1)))
		if err != nil {
			return "", "", cleanup, err
		}
		dirs = append(dirs, dir)
	}
	return dirs[0], dirs[1], cleanup, nil
}

func isZipArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip") && fileutil.IsFile(path)
}

// unpackExport extracts the zip at path beneath dest, into a folder named
// after the archive so that the export keeps a meaningful display name.
func unpackExport(path, dest string) (string, error) {
	target := filepath.Join(dest, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if _, err := archive.ExtractFile(path, target, archive.Options{}); err != nil {
		return "", err
	}
	root, err := discovery.FindExportRoot(target)
	if err != nil {
		return "", errs.Wrap(errs.ErrValidation, "", fmt.Sprintf("%s does not contain a valid Letterboxd export (no %s)", path, overlap.WatchedFile), err)
	}
	return root, nil
}
