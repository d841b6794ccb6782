package main

import (
	"strings"
	"testing"

	"lbxoverlap/internal/preflight"
)

func TestCheckCommandPasses(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "== Preflight ==")
	requireContains(t, out, "[OK] "+env.configPath)
	requireContains(t, out, "Log directory:")
	requireContains(t, out, "Bind address:")
}

func TestCheckLinesMarksOptionalFailuresAsWarnings(t *testing.T) {
	results := []preflight.Result{
		{Name: "Log directory", Passed: true, Detail: "/logs (read/write ok)"},
		{Name: "Batch root", Optional: true, Detail: "/missing (error: stat)"},
		{Name: "Bind address", Detail: "address in use"},
	}
	lines := checkLines("", false, results, false)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[2], "[INFO] defaults") {
		t.Fatalf("expected defaults notice, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "[OK]") {
		t.Fatalf("expected passing check, got %q", lines[3])
	}
	if !strings.Contains(lines[4], "[WARN]") {
		t.Fatalf("expected optional failure as warning, got %q", lines[4])
	}
	if !strings.Contains(lines[5], "[ERROR] address in use") {
		t.Fatalf("expected required failure as error, got %q", lines[5])
	}
}
