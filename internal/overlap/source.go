package overlap

import (
	"fmt"
	"os"
	"path/filepath"

	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/history"
)

const (
	// WatchedFile holds films the user has logged as seen.
	WatchedFile = "watched.csv"
	// WatchlistFile holds films the user wants to see.
	WatchlistFile = "watchlist.csv"
)

// Source is one export directory with both of its datasets loaded.
type Source struct {
	Dir       string
	Name      string
	Watched   history.Dataset
	Watchlist history.Dataset

	WatchedStats   history.LoadStats
	WatchlistStats history.LoadStats
}

// OpenSource loads both datasets from dir. Missing files load as empty
// datasets; only a missing or non-directory dir is an error.
func OpenSource(dir string) (Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Source{}, errs.Wrap(errs.ErrNotFound, "open source", dir, err)
	}
	if !info.IsDir() {
		return Source{}, errs.Wrap(errs.ErrValidation, "open source", fmt.Sprintf("%s is not a directory", dir), nil)
	}

	src := Source{Dir: dir, Name: DisplayName(dir)}
	src.Watched, src.WatchedStats = history.LoadWithStats(filepath.Join(dir, WatchedFile))
	src.Watchlist, src.WatchlistStats = history.LoadWithStats(filepath.Join(dir, WatchlistFile))
	return src, nil
}
