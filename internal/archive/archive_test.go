package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/testsupport"
)

func TestExtractBytesWritesNestedFiles(t *testing.T) {
	data := testsupport.ZipBytes(t, map[string]string{
		"letterboxd-jane/":            "",
		"letterboxd-jane/watched.csv": "Date,Name,Year,Letterboxd URI\n",
		"letterboxd-jane/profile.csv": "x",
	})
	dest := t.TempDir()

	stats, err := ExtractBytes(data, dest, Options{})
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if stats.Files != 2 || stats.Dirs != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	got, err := os.ReadFile(filepath.Join(dest, "letterboxd-jane", "watched.csv"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(got) != "Date,Name,Year,Letterboxd URI\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestExtractBytesRejectsCorruptArchive(t *testing.T) {
	_, err := ExtractBytes([]byte("not a zip"), t.TempDir(), Options{})
	if !errors.Is(err, errs.ErrArchive) {
		t.Fatalf("expected ErrArchive, got %v", err)
	}
	if errs.IsUserError(err) {
		t.Fatal("corrupt archives are internal failures")
	}
}

func TestExtractBytesRejectsPathTraversal(t *testing.T) {
	for _, name := range []string{"../escape.csv", "a/../../escape.csv", "/abs.csv"} {
		data := testsupport.ZipBytes(t, map[string]string{name: "x"})
		dest := filepath.Join(t.TempDir(), "dest")
		if _, err := ExtractBytes(data, dest, Options{}); !errors.Is(err, errs.ErrArchive) {
			t.Fatalf("%s: expected ErrArchive, got %v", name, err)
		}
		if _, err := os.Stat(filepath.Join(filepath.Dir(dest), "escape.csv")); !os.IsNotExist(err) {
			t.Fatalf("%s: file escaped extraction root", name)
		}
	}
}

func TestExtractBytesEnforcesSizeLimit(t *testing.T) {
	data := testsupport.ZipBytes(t, map[string]string{
		"a.csv": "12345",
		"b.csv": "67890",
	})
	_, err := ExtractBytes(data, t.TempDir(), Options{MaxExtractedBytes: 8})
	if !errors.Is(err, errs.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "export.zip")
	testsupport.WriteZip(t, zipPath, testsupport.ExportFiles("", []string{"2020-01-01,Heat,1995,https://boxd.it/heat"}, nil))

	dest := filepath.Join(dir, "out")
	stats, err := ExtractFile(zipPath, dest, Options{})
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if stats.Files != 1 {
		t.Fatalf("expected one file, got %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dest, "watched.csv")); err != nil {
		t.Fatalf("expected watched.csv: %v", err)
	}
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "none.zip"), t.TempDir(), Options{})
	if !errors.Is(err, errs.ErrArchive) {
		t.Fatalf("expected ErrArchive, got %v", err)
	}
}
