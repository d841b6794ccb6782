package history

import (
	"regexp"
	"strings"
)

// URIPrefix is the scheme every record identifier must carry.
const URIPrefix = "https://"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearPattern = regexp.MustCompile(`^\d{4}$`)
)

// Record is one row of a watched or watchlist export.
type Record struct {
	Date string
	Name string
	Year string
	URI  string
}

// Dataset is the ordered set of records loaded from a single file.
type Dataset []Record

// DropReason describes why a row was rejected.
type DropReason string

const (
	DropNone     DropReason = ""
	DropTooShort DropReason = "too_few_fields"
	DropBadDate  DropReason = "bad_date"
	DropBadYear  DropReason = "bad_year"
	DropBadURI   DropReason = "bad_uri"
)

// DropReasons lists every rejection reason in reporting order.
func DropReasons() []DropReason {
	return []DropReason{DropTooShort, DropBadDate, DropBadYear, DropBadURI}
}

// Check reports the first failing field check, or DropNone when r is well formed.
func (r Record) Check() DropReason {
	switch {
	case !datePattern.MatchString(r.Date):
		return DropBadDate
	case !yearPattern.MatchString(r.Year):
		return DropBadYear
	case !strings.HasPrefix(r.URI, URIPrefix):
		return DropBadURI
	default:
		return DropNone
	}
}

// Valid reports whether r passes every field check.
func (r Record) Valid() bool {
	return r.Check() == DropNone
}

// recordFromFields maps parsed fields onto a Record. The first field is the
// date, the last two are year and uri, and anything in between is the name.
func recordFromFields(fields []string) (Record, bool) {
	if len(fields) < 4 {
		return Record{}, false
	}
	n := len(fields)
	return Record{
		Date: fields[0],
		Name: strings.Join(fields[1:n-2], string(Delimiter)),
		Year: fields[n-2],
		URI:  fields[n-1],
	}, true
}
