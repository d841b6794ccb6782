package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lbxoverlap/internal/logging"
	"lbxoverlap/internal/testsupport"
)

func TestRunFiresOnceForBurst(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "letterboxd-ana")
	testsupport.WriteExport(t, dir, []string{"2024-01-05,Heat,1995,https://boxd.it/heat"}, nil)

	w, err := New([]string{dir}, 100*time.Millisecond, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changes <- struct{}{} })
	}()

	target := filepath.Join(dir, "watched.csv")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte(testsupport.ExportHeader+"\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}
	select {
	case <-changes:
		t.Fatal("expected the burst to be coalesced into one notification")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunIgnoresUnrelatedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "letterboxd-ana")
	testsupport.WriteExport(t, dir, nil, nil)

	w, err := New([]string{dir}, 20*time.Millisecond, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan struct{}, 1)
	go func() {
		_ = w.Run(ctx, func() { changes <- struct{}{} })
	}()

	if err := os.WriteFile(filepath.Join(dir, "ratings.csv"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-changes:
		t.Fatal("unexpected notification for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	if _, err := New([]string{filepath.Join(t.TempDir(), "missing")}, 0, logging.NewNop()); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
