package ffmpeg

import (
	"context"
	"errors"
	"testing"
)

func TestFormatOffset(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00:00"},
		{10, "00:00:10"},
		{75, "00:01:15"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{-5, "00:00:00"},
	}
	for _, tc := range cases {
		if got := FormatOffset(tc.in); got != tc.want {
			t.Fatalf("FormatOffset(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScreenshotRejectsEmptyPath(t *testing.T) {
	err := Screenshot(context.Background(), "ffmpeg", "", "/tmp/out.jpg", 10)
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func TestExtractionErrorCarriesPath(t *testing.T) {
	inner := errors.New("exit status 1")
	err := &ExtractionError{Path: "/videos/clip.mp4", Err: inner}
	if got := err.Error(); got != "extract frame from /videos/clip.mp4: exit status 1" {
		t.Fatalf("unexpected message: %q", got)
	}
	if !errors.Is(err, inner) {
		t.Fatal("ExtractionError must unwrap to its cause")
	}
}
