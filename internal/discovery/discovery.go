// Package discovery locates Letterboxd export directories on disk: sibling
// export folders for the batch runner and the export root inside an unpacked
// upload.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/fileutil"
	"lbxoverlap/internal/overlap"
)

// FindSources returns the export directories directly under root whose names
// start with the Letterboxd export prefix, in name order.
func FindSources(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	var dirs []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), overlap.ExportPrefix) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if fileutil.IsDir(path) {
			dirs = append(dirs, path)
		}
	}
	return dirs, nil
}

// FindPair returns the first two export directories under root.
func FindPair(root string) (string, string, error) {
	dirs, err := FindSources(root)
	if err != nil {
		return "", "", err
	}
	if len(dirs) < 2 {
		return "", "", errs.Wrap(errs.ErrValidation, "", fmt.Sprintf("need at least two %s* folders in %s", overlap.ExportPrefix, root), nil)
	}
	return dirs[0], dirs[1], nil
}

// FindExportRoot resolves the directory holding watched.csv inside an
// unpacked archive. It checks dir itself, then a lone letterboxd-* child,
// then every child directory in name order. The first match wins, so an
// archive with several candidate folders resolves to the alphabetically first.
func FindExportRoot(dir string) (string, error) {
	if hasWatched(dir) {
		return dir, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", dir, err)
	}
	var children []string
	for _, entry := range entries {
		if entry.IsDir() {
			children = append(children, entry.Name())
		}
	}
	sort.Strings(children)

	if len(children) == 1 && strings.HasPrefix(children[0], overlap.ExportPrefix) {
		candidate := filepath.Join(dir, children[0])
		if hasWatched(candidate) {
			return candidate, nil
		}
	}
	for _, name := range children {
		candidate := filepath.Join(dir, name)
		if hasWatched(candidate) {
			return candidate, nil
		}
	}
	return "", errs.Wrap(errs.ErrNotFound, "find export", fmt.Sprintf("no %s in %s", overlap.WatchedFile, dir), nil)
}

func hasWatched(dir string) bool {
	return fileutil.IsFile(filepath.Join(dir, overlap.WatchedFile))
}
