// Package archive unpacks uploaded zip exports into scratch directories.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/fileutil"
)

// DefaultMaxExtractedBytes caps the total uncompressed size of one archive.
const DefaultMaxExtractedBytes int64 = 512 << 20

// Options tunes extraction limits.
type Options struct {
	// MaxExtractedBytes bounds the sum of all extracted file sizes. Zero uses
	// DefaultMaxExtractedBytes.
	MaxExtractedBytes int64
}

// Stats summarizes one extraction.
type Stats struct {
	Files int
	Dirs  int
	Bytes int64
}

// ExtractBytes unpacks the zip held in data into dest, overwriting files that
// already exist there.
func ExtractBytes(data []byte, dest string, opts Options) (Stats, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Stats{}, errs.Wrap(errs.ErrArchive, "open archive", "", err)
	}
	return extract(zr, dest, opts)
}

// ExtractFile unpacks the zip at path into dest.
func ExtractFile(path, dest string, opts Options) (Stats, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Stats{}, errs.Wrap(errs.ErrArchive, "open archive", path, err)
	}
	defer zr.Close()
	return extract(&zr.Reader, dest, opts)
}

func extract(zr *zip.Reader, dest string, opts Options) (Stats, error) {
	limit := opts.MaxExtractedBytes
	if limit <= 0 {
		limit = DefaultMaxExtractedBytes
	}
	root, err := filepath.Abs(dest)
	if err != nil {
		return Stats{}, fmt.Errorf("resolve extraction root: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return Stats{}, fmt.Errorf("create extraction root: %w", err)
	}

	var stats Stats
	for _, file := range zr.File {
		target, err := entryPath(root, file.Name)
		if err != nil {
			return stats, err
		}
		mode := file.Mode()
		switch {
		case mode.IsDir():
			if err := os.MkdirAll(target, 0o755); err != nil {
				return stats, fmt.Errorf("create directory %s: %w", file.Name, err)
			}
			stats.Dirs++
			continue
		case mode&os.ModeSymlink != 0, !mode.IsRegular():
			// Links and device entries are never needed for an export.
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return stats, fmt.Errorf("create directory for %s: %w", file.Name, err)
		}
		written, err := extractEntry(file, target, limit-stats.Bytes)
		stats.Bytes += written
		if err != nil {
			return stats, err
		}
		stats.Files++
	}
	return stats, nil
}

func extractEntry(file *zip.File, target string, remaining int64) (int64, error) {
	rc, err := file.Open()
	if err != nil {
		return 0, errs.Wrap(errs.ErrArchive, "open entry", file.Name, err)
	}
	defer rc.Close()

	if remaining <= 0 {
		return 0, errs.Wrap(errs.ErrTooLarge, "extract", "archive expands beyond the size limit", nil)
	}
	written, err := fileutil.WriteStream(target, rc, 0o644, remaining)
	switch {
	case errors.Is(err, fileutil.ErrLimitExceeded):
		return written, errs.Wrap(errs.ErrTooLarge, "extract", "archive expands beyond the size limit", nil)
	case errors.Is(err, zip.ErrChecksum), errors.Is(err, zip.ErrFormat), errors.Is(err, io.ErrUnexpectedEOF):
		return written, errs.Wrap(errs.ErrArchive, "extract entry", file.Name, err)
	case err != nil:
		return written, fmt.Errorf("extract entry %s: %w", file.Name, err)
	}
	return written, nil
}

// entryPath resolves an archive entry name under root, rejecting names that
// would land outside it.
func entryPath(root, name string) (string, error) {
	cleanName := strings.ReplaceAll(name, "\\", "/")
	if cleanName == "" || strings.HasPrefix(cleanName, "/") || filepath.IsAbs(cleanName) {
		return "", errs.Wrap(errs.ErrArchive, "extract", fmt.Sprintf("illegal entry name %q", name), nil)
	}
	target := filepath.Join(root, filepath.FromSlash(cleanName))
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errs.Wrap(errs.ErrArchive, "extract", fmt.Sprintf("illegal entry name %q", name), nil)
	}
	return target, nil
}
