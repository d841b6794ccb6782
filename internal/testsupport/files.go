package testsupport

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// ExportHeader is the header line Letterboxd writes to watched.csv and watchlist.csv.
const ExportHeader = "Date,Name,Year,Letterboxd URI"

// WriteExport creates dir with watched.csv and watchlist.csv holding the given
// data rows under the standard header. A nil slice skips that file.
func WriteExport(t testing.TB, dir string, watched, watchlist []string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	write := func(name string, rows []string) {
		if rows == nil {
			return
		}
		content := ExportHeader + "\n" + strings.Join(rows, "\n") + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("watched.csv", watched)
	write("watchlist.csv", watchlist)
}

// ExportFiles returns archive entries for an export nested under folder. An
// empty folder places the files at the archive root.
func ExportFiles(folder string, watched, watchlist []string) map[string]string {
	prefix := ""
	if folder != "" {
		prefix = strings.TrimSuffix(folder, "/") + "/"
	}
	files := map[string]string{}
	if watched != nil {
		files[prefix+"watched.csv"] = ExportHeader + "\n" + strings.Join(watched, "\n") + "\n"
	}
	if watchlist != nil {
		files[prefix+"watchlist.csv"] = ExportHeader + "\n" + strings.Join(watchlist, "\n") + "\n"
	}
	return files
}

// ZipBytes builds an in-memory zip from name to content entries. Names ending
// in "/" become directory entries.
func ZipBytes(t testing.TB, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

// WriteZip writes ZipBytes output to path.
func WriteZip(t testing.TB, path string, files map[string]string) {
	t.Helper()
	if err := os.WriteFile(path, ZipBytes(t, files), 0o644); err != nil {
		t.Fatalf("write zip %s: %v", path, err)
	}
}
