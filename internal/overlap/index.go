package overlap

import "lbxoverlap/internal/history"

// Index is a uri-keyed lookup that remembers the order keys were first seen.
//
// Inserting a uri that is already present overwrites the stored record but
// keeps the key at its original position (last write wins).
type Index struct {
	order   []string
	records map[string]history.Record
}

// NewIndex builds an Index over records in order.
func NewIndex(records history.Dataset) *Index {
	idx := &Index{records: make(map[string]history.Record, len(records))}
	for _, rec := range records {
		idx.Put(rec)
	}
	return idx
}

// Put inserts or overwrites the record stored under rec.URI.
func (i *Index) Put(rec history.Record) {
	if _, ok := i.records[rec.URI]; !ok {
		i.order = append(i.order, rec.URI)
	}
	i.records[rec.URI] = rec
}

// Get returns the record stored under uri.
func (i *Index) Get(uri string) (history.Record, bool) {
	rec, ok := i.records[uri]
	return rec, ok
}

// Has reports whether uri is indexed.
func (i *Index) Has(uri string) bool {
	_, ok := i.records[uri]
	return ok
}

// Len returns the number of distinct uris.
func (i *Index) Len() int {
	return len(i.order)
}

// Records returns the indexed records in key order.
func (i *Index) Records() history.Dataset {
	out := make(history.Dataset, 0, len(i.order))
	for _, uri := range i.order {
		out = append(out, i.records[uri])
	}
	return out
}

// Intersect returns a's records whose uri also appears in b, in a's order.
func Intersect(a, b *Index) history.Dataset {
	out := history.Dataset{}
	for _, uri := range a.order {
		if b.Has(uri) {
			out = append(out, a.records[uri])
		}
	}
	return out
}
