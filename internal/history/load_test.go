package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const header = "Date,Name,Year,Letterboxd URI"

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watched.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	records, stats := LoadWithStats(filepath.Join(t.TempDir(), "nope.csv"))
	if len(records) != 0 {
		t.Fatalf("expected empty dataset, got %d records", len(records))
	}
	if records == nil {
		t.Fatal("expected non-nil empty dataset")
	}
	if !stats.Missing {
		t.Fatal("expected stats to flag missing file")
	}
}

func TestLoadHeaderOnlyReturnsEmpty(t *testing.T) {
	for _, content := range []string{"", "\n\n", header, header + "\r\n\r\n"} {
		if got := Load(writeExport(t, content)); len(got) != 0 {
			t.Fatalf("content %q: expected empty dataset, got %v", content, got)
		}
	}
}

func TestLoadParsesRows(t *testing.T) {
	path := writeExport(t, header+"\r\n"+
		"2021-03-04,Heat,1995,https://boxd.it/heat\r\n"+
		"\r\n"+
		`2021-03-05,"Crouching Tiger, Hidden Dragon",2000,https://boxd.it/ctd`+"\n"+
		"2021-03-06,Hello, World,2011,https://boxd.it/hw\n")

	got := Load(path)
	want := Dataset{
		{Date: "2021-03-04", Name: "Heat", Year: "1995", URI: "https://boxd.it/heat"},
		{Date: "2021-03-05", Name: "Crouching Tiger, Hidden Dragon", Year: "2000", URI: "https://boxd.it/ctd"},
		{Date: "2021-03-06", Name: "Hello,World", Year: "2011", URI: "https://boxd.it/hw"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestLoadDropsMalformedRows(t *testing.T) {
	path := writeExport(t, header+"\n"+
		"bad-date,Foo,2020,https://x\n"+
		"2020-01-01,Foo,20,https://x\n"+
		"2020-01-01,Foo,2020,http://x\n"+
		"2020-01-01,2020,https://x\n"+
		"2020-01-01,Kept,2020,https://x\n")

	records, stats := LoadWithStats(path)
	if len(records) != 1 || records[0].Name != "Kept" {
		t.Fatalf("expected only the valid row, got %+v", records)
	}
	if stats.Rows != 5 || stats.Kept != 1 || stats.DroppedTotal() != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	for _, reason := range []DropReason{DropBadDate, DropBadYear, DropBadURI, DropTooShort} {
		if stats.Dropped[reason] != 1 {
			t.Errorf("expected one %s drop, got %d", reason, stats.Dropped[reason])
		}
	}
}

func TestLoadToleratesByteOrderMark(t *testing.T) {
	path := writeExport(t, "\ufeff"+header+"\n2020-02-02,Ran,1985,https://boxd.it/ran\n")
	got := Load(path)
	if len(got) != 1 || got[0].URI != "https://boxd.it/ran" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestLoadDirectoryPathDegradesToEmpty(t *testing.T) {
	records, stats := LoadWithStats(t.TempDir())
	if len(records) != 0 {
		t.Fatalf("expected empty dataset, got %v", records)
	}
	if stats.ReadError == "" {
		t.Fatal("expected read error to be recorded")
	}
}

func TestParseKeepsFirstLineAsHeader(t *testing.T) {
	got := Parse("2020-01-01,Looks,2020,https://boxd.it/valid\n2020-01-02,Real,2020,https://boxd.it/real")
	if len(got) != 1 || got[0].Name != "Real" {
		t.Fatalf("expected header row discarded, got %+v", got)
	}
}
