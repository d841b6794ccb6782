package overlap

import "lbxoverlap/internal/history"

// Film is the external view of a record. The watch date is not exposed.
type Film struct {
	Name string `json:"name"`
	Year string `json:"year"`
	URI  string `json:"uri"`
}

// Payload is the JSON shape returned by the analyze endpoint and --json output.
type Payload struct {
	NameA         string `json:"nameA"`
	NameB         string `json:"nameB"`
	WatchedBoth   []Film `json:"watchedBoth"`
	WatchlistBoth []Film `json:"watchlistBoth"`
}

// Payload converts r to its external representation.
func (r Result) Payload() Payload {
	return Payload{
		NameA:         r.NameA,
		NameB:         r.NameB,
		WatchedBoth:   films(r.WatchedBoth),
		WatchlistBoth: films(r.WatchlistBoth),
	}
}

func films(records history.Dataset) []Film {
	out := make([]Film, 0, len(records))
	for _, rec := range records {
		out = append(out, Film{Name: rec.Name, Year: rec.Year, URI: rec.URI})
	}
	return out
}
