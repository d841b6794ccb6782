package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/testsupport"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
}

func TestFindSourcesFiltersByPrefix(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "letterboxd-zed", "letterboxd-amy", "other", "node_modules")
	if err := os.WriteFile(filepath.Join(root, "letterboxd-file.zip"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindSources(root)
	if err != nil {
		t.Fatalf("FindSources: %v", err)
	}
	want := []string{filepath.Join(root, "letterboxd-amy"), filepath.Join(root, "letterboxd-zed")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("FindSources = %v, want %v", got, want)
	}
}

func TestFindPairNeedsTwo(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "letterboxd-only")

	_, _, err := FindPair(root)
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	mkdirs(t, root, "letterboxd-second", "letterboxd-third")
	a, b, err := FindPair(root)
	if err != nil {
		t.Fatalf("FindPair: %v", err)
	}
	if filepath.Base(a) != "letterboxd-only" || filepath.Base(b) != "letterboxd-second" {
		t.Fatalf("unexpected pair: %s, %s", a, b)
	}
}

func TestFindSourcesMissingRoot(t *testing.T) {
	if _, err := FindSources(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestFindExportRoot(t *testing.T) {
	rows := []string{"2020-01-01,Heat,1995,https://boxd.it/heat"}

	t.Run("top level", func(t *testing.T) {
		dir := t.TempDir()
		testsupport.WriteExport(t, dir, rows, nil)
		got, err := FindExportRoot(dir)
		if err != nil || got != dir {
			t.Fatalf("FindExportRoot = %q, %v; want %q", got, err, dir)
		}
	})

	t.Run("single prefixed child", func(t *testing.T) {
		dir := t.TempDir()
		want := filepath.Join(dir, "letterboxd-jane-2024")
		testsupport.WriteExport(t, want, rows, nil)
		got, err := FindExportRoot(dir)
		if err != nil || got != want {
			t.Fatalf("FindExportRoot = %q, %v; want %q", got, err, want)
		}
	})

	t.Run("probes every child", func(t *testing.T) {
		dir := t.TempDir()
		mkdirs(t, dir, "__MACOSX", "aaa-empty")
		want := filepath.Join(dir, "export")
		testsupport.WriteExport(t, want, rows, nil)
		got, err := FindExportRoot(dir)
		if err != nil || got != want {
			t.Fatalf("FindExportRoot = %q, %v; want %q", got, err, want)
		}
	})

	t.Run("first candidate wins", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, "a-export")
		testsupport.WriteExport(t, first, rows, nil)
		testsupport.WriteExport(t, filepath.Join(dir, "b-export"), rows, nil)
		got, err := FindExportRoot(dir)
		if err != nil || got != first {
			t.Fatalf("FindExportRoot = %q, %v; want %q", got, err, first)
		}
	})

	t.Run("watchlist only is not an export", func(t *testing.T) {
		dir := t.TempDir()
		testsupport.WriteExport(t, filepath.Join(dir, "letterboxd-x"), nil, rows)
		if _, err := FindExportRoot(dir); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("nested two deep is not found", func(t *testing.T) {
		dir := t.TempDir()
		testsupport.WriteExport(t, filepath.Join(dir, "outer", "inner"), rows, nil)
		if _, err := FindExportRoot(dir); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
