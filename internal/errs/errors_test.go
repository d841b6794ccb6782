package errs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestWrapTagsMarkerAndCause(t *testing.T) {
	err := Wrap(ErrNotFound, "open source", "/tmp/x", fs.ErrNotExist)
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected marker to be preserved")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("expected cause to be preserved")
	}
	if got, want := err.Error(), "not found: open source: /tmp/x: file does not exist"; got != want {
		t.Fatalf("unexpected message: got %q want %q", got, want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrValidation, "", "need two exports", nil)
	if got, want := err.Error(), "validation error: need two exports"; got != want {
		t.Fatalf("unexpected message: got %q want %q", got, want)
	}
}

func TestWrapWithoutMarker(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(nil, "extract", "", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be preserved")
	}
	if IsUserError(err) {
		t.Fatal("unmarked errors are internal")
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{Wrap(ErrValidation, "x", "", nil), true},
		{Wrap(ErrNotFound, "x", "", nil), true},
		{Wrap(ErrTooLarge, "x", "", nil), true},
		{Wrap(ErrArchive, "x", "", nil), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := IsUserError(tt.err); got != tt.want {
			t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
