package history

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// LoadStats counts what happened to the rows of one file.
type LoadStats struct {
	Path      string
	Missing   bool
	ReadError string
	Rows      int
	Kept      int
	Dropped   map[DropReason]int
}

// DroppedTotal returns the number of rejected rows across all reasons.
func (s LoadStats) DroppedTotal() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// Load reads path and returns its valid records. It never fails.
func Load(path string) Dataset {
	records, _ := LoadWithStats(path)
	return records
}

// LoadWithStats is Load plus per-reason drop counters.
func LoadWithStats(path string) (Dataset, LoadStats) {
	stats := LoadStats{Path: path, Dropped: map[DropReason]int{}}

	text, err := readText(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			stats.Missing = true
		} else {
			stats.ReadError = err.Error()
		}
		return Dataset{}, stats
	}

	return parseText(text, stats)
}

// Parse parses export text already held in memory.
func Parse(text string) Dataset {
	records, _ := parseText(text, LoadStats{Dropped: map[DropReason]int{}})
	return records
}

func parseText(text string, stats LoadStats) (Dataset, LoadStats) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return Dataset{}, stats
	}

	records := make(Dataset, 0, len(lines)-1)
	for _, line := range lines[1:] {
		stats.Rows++
		rec, reason := parseRow(line)
		if reason != DropNone {
			stats.Dropped[reason]++
			continue
		}
		records = append(records, rec)
	}
	stats.Kept = len(records)
	return records, stats
}

func parseRow(line string) (Record, DropReason) {
	rec, ok := recordFromFields(ParseLine(line))
	if !ok {
		return Record{}, DropTooShort
	}
	return rec, rec.Check()
}

func splitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	raw := lineBreak.Split(text, -1)
	lines := raw[:0]
	for _, l := range raw {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// readText decodes the file as UTF-8, discarding a leading byte-order mark.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
