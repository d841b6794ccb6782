package history

import "strings"

const (
	// Delimiter separates fields within a row.
	Delimiter = ','
	// Quote toggles literal mode for the delimiter and line breaks.
	Quote = '"'
)

// ParseLine splits one line of export text into trimmed, unquoted fields.
//
// A double quote toggles quoted mode; while quoted, commas and newlines are
// field content. Quote characters are never copied into a field, and a doubled
// quote simply toggles twice rather than producing a literal quote. A newline
// outside quotes ends the line. A trailing delimiter does not yield an empty
// final field.
func ParseLine(line string) []string {
	var (
		fields   []string
		cur      strings.Builder
		inQuotes bool
	)
	for _, c := range line {
		switch {
		case c == Quote:
			inQuotes = !inQuotes
		case (c == Delimiter || c == '\n') && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
			if c == '\n' {
				return fields
			}
		default:
			cur.WriteRune(c)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cleanField(cur.String()))
	}
	return fields
}

func cleanField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, string(Quote))
	return strings.TrimSuffix(s, string(Quote))
}
