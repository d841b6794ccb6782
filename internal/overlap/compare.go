package overlap

import "lbxoverlap/internal/history"

// Result holds the overlap between two sources.
type Result struct {
	NameA         string
	NameB         string
	WatchedBoth   history.Dataset
	WatchlistBoth history.Dataset
}

// Compare intersects the watched and watchlist datasets of a and b. Records in
// the result come from a.
func Compare(a, b Source) Result {
	return Result{
		NameA:         a.Name,
		NameB:         b.Name,
		WatchedBoth:   Intersect(NewIndex(a.Watched), NewIndex(b.Watched)),
		WatchlistBoth: Intersect(NewIndex(a.Watchlist), NewIndex(b.Watchlist)),
	}
}

// CompareDirs opens both export directories and compares them.
func CompareDirs(dirA, dirB string) (Result, Source, Source, error) {
	a, err := OpenSource(dirA)
	if err != nil {
		return Result{}, Source{}, Source{}, err
	}
	b, err := OpenSource(dirB)
	if err != nil {
		return Result{}, Source{}, Source{}, err
	}
	return Compare(a, b), a, b, nil
}
