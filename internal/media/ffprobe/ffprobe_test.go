package ffprobe

import (
	"context"
	"testing"
)

func TestParseFrameRate(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30000/1001", 30},
		{"25/1", 25},
		{"24000/1001", 24},
		{"0/0", 0},
		{"", 0},
		{"whole", 0},
		{"10", 0},
	}
	for _, tc := range cases {
		if got := parseFrameRate(tc.in); got != tc.want {
			t.Fatalf("parseFrameRate(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseSizeClampsNegative(t *testing.T) {
	if got := parseSize("-10"); got != 0 {
		t.Fatalf("parseSize(-10) = %d, want 0", got)
	}
	if got := parseSize("2048"); got != 2048 {
		t.Fatalf("parseSize(2048) = %d, want 2048", got)
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
