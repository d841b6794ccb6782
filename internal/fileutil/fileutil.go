// Package fileutil holds small filesystem helpers shared by archive extraction
// and export discovery.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrLimitExceeded is returned by WriteStream when the source is larger than allowed.
var ErrLimitExceeded = errors.New("size limit exceeded")

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteStream copies r into a new file at dst with the given mode. When limit
// is positive and r yields more than limit bytes, dst is removed and
// ErrLimitExceeded is returned.
func WriteStream(dst string, r io.Reader, mode os.FileMode, limit int64) (int64, error) {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = out.Close()
	}()

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	written, err := io.Copy(out, src)
	if err != nil {
		_ = os.Remove(dst)
		return written, err
	}
	if limit > 0 && written > limit {
		_ = out.Close()
		_ = os.Remove(dst)
		return written, fmt.Errorf("%s: %w (%d bytes)", dst, ErrLimitExceeded, limit)
	}
	return written, out.Close()
}
