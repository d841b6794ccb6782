package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lbxoverlap/internal/history"
	"lbxoverlap/internal/overlap"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTextReport(w io.Writer, result overlap.Result) {
	fmt.Fprintln(w, "Letterboxd overlap")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Folders: %s | %s\n", result.NameA, result.NameB)
	fmt.Fprintln(w)
	writeTextSection(w, "--- Both have seen (watched) ---", result.WatchedBoth)
	fmt.Fprintln(w)
	writeTextSection(w, "--- Both want to see (watchlist) ---", result.WatchlistBoth)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Counts: watched in common = %d | watchlist in common = %d\n",
		len(result.WatchedBoth), len(result.WatchlistBoth))
}

func writeTextSection(w io.Writer, title string, records history.Dataset) {
	fmt.Fprintln(w, title)
	if len(records) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "  %s (%s)  %s\n", rec.Name, rec.Year, rec.URI)
	}
}

func writeTableReport(w io.Writer, result overlap.Result, colorize bool) {
	for _, line := range renderSectionHeader(fmt.Sprintf("%s | %s", result.NameA, result.NameB), colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, renderFilmTable("Both have seen (watched)", result.WatchedBoth))
	fmt.Fprintln(w, renderFilmTable("Both want to see (watchlist)", result.WatchlistBoth))
}

func renderFilmTable(title string, records history.Dataset) string {
	spec := tableSpec{
		title:   title,
		headers: []string{"#", "Film", "Year", "URI"},
		aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
		footer:  []string{"", "Total", "", strconv.Itoa(len(records))},
	}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{strconv.Itoa(i + 1), rec.Name, rec.Year, rec.URI})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"", "(none)"})
	}
	return renderTable(spec, rows)
}

func writeDiagnostics(w io.Writer, sources []overlap.Source, colorize bool) {
	fmt.Fprintln(w)
	for _, line := range renderSectionHeader("Diagnostics", colorize) {
		fmt.Fprintln(w, line)
	}
	for _, src := range sources {
		fmt.Fprintln(w, renderStatusLine(src.Name, statusInfo, src.Dir, colorize))
		for _, stats := range []history.LoadStats{src.WatchedStats, src.WatchlistStats} {
			fmt.Fprintln(w, loadStatsLine(stats, colorize))
		}
	}
}

func loadStatsLine(stats history.LoadStats, colorize bool) string {
	label := filepath.Base(stats.Path)
	switch {
	case stats.Missing:
		return renderStatusLine(label, statusWarn, "missing (treated as empty)", colorize)
	case stats.ReadError != "":
		return renderStatusLine(label, statusError, "unreadable: "+stats.ReadError, colorize)
	}

	message := fmt.Sprintf("%d rows, %d kept, %d dropped", stats.Rows, stats.Kept, stats.DroppedTotal())
	kind := statusOK
	if dropped := stats.DroppedTotal(); dropped > 0 {
		kind = statusWarn
		message += " (" + dropSummary(stats.Dropped) + ")"
	}
	return renderStatusLine(label, kind, message, colorize)
}

func dropSummary(dropped map[history.DropReason]int) string {
	parts := make([]string, 0, len(dropped))
	for _, reason := range history.DropReasons() {
		if n := dropped[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", reason, n))
		}
	}
	return strings.Join(parts, ", ")
}
