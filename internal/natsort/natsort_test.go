package natsort

import (
	"reflect"
	"testing"
)

func TestSortNumericRuns(t *testing.T) {
	paths := []string{"a2.mp4", "a10.mp4", "a1.mp4"}
	Sort(paths)
	want := []string{"a1.mp4", "a2.mp4", "a10.mp4"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
}

func TestSortAcrossDirectories(t *testing.T) {
	paths := []string{
		"shots/take10/frame.png",
		"shots/take2/frame.png",
		"shots/take2/frame2.png",
		"intro.png",
	}
	Sort(paths)
	want := []string{
		"intro.png",
		"shots/take2/frame.png",
		"shots/take2/frame2.png",
		"shots/take10/frame.png",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %v", paths)
	}
}

func TestExtensionStrippedFromFinalComponent(t *testing.T) {
	// Without extension stripping "ep1.mkv" vs "ep1 part2.mkv" would compare
	// the suffixes as part of the name.
	if !Less("clips/ep1.mkv", "clips/ep1a.mkv") {
		t.Fatal("ep1 should sort before ep1a")
	}
}

func TestCompareTotalOrder(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"a1.mp4", "a1.mp4", 0},
		{"a01.mp4", "a1.mp4", -1}, // equal magnitude, leading zeros win tie
		{"a2.mp4", "a10.mp4", -1},
		{"b1.mp4", "a2.mp4", 1},
		{"a.mp4", "a1.mp4", -1},
		{"dir/a.mp4", "dir/sub/a.mp4", -1},
		{"1x.mp4", "ax.mp4", -1}, // digit run sorts before text run
	}
	for _, tc := range cases {
		got := Compare(tc.a, tc.b)
		if sign(got) != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want sign %d", tc.a, tc.b, got, tc.want)
		}
		if tc.want != 0 && sign(Compare(tc.b, tc.a)) != -tc.want {
			t.Fatalf("Compare(%q, %q) not antisymmetric", tc.b, tc.a)
		}
	}
}

func TestDistinctPathsNeverEqual(t *testing.T) {
	// Same after extension stripping; full path must break the tie.
	if Compare("a/b.mp4", "a/b.avi") == 0 {
		t.Fatal("distinct paths compared equal")
	}
	if Compare("a/b.avi", "a/b.mp4")+Compare("a/b.mp4", "a/b.avi") != 0 {
		t.Fatal("tie-break is not antisymmetric")
	}
}

func TestLargeNumbersDoNotOverflow(t *testing.T) {
	if !Less("v18446744073709551616.mp4", "v18446744073709551617.mp4") {
		t.Fatal("numeric comparison must handle runs beyond 64 bits")
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
