// Package testsupport provides fixtures shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"lbxoverlap/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a per-test temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Batch.Root = filepath.Join(base, "exports")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMaxUploadMB overrides the per-file upload limit.
func WithMaxUploadMB(mb int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Server.MaxUploadMB = mb
	}
}

// WithStaticDir serves the upload page from dir.
func WithStaticDir(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.StaticDir = dir
	}
}
