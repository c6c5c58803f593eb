package dedup

import (
	"reflect"
	"sort"
	"sync"
	"testing"

	"finddup/internal/imagehash"
)

// fp builds a 64-bit test fingerprint from a raw word, so Hamming distances
// between test items are exact popcount differences.
func fp(t *testing.T, word uint64) imagehash.Fingerprint {
	t.Helper()
	f, err := imagehash.FromWords(imagehash.AlgorithmAverage, 64, []uint64{word})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestSimilarIsReflexive(t *testing.T) {
	th := Thresholds{Identical: 1, Similar: 1}
	x := fp(t, 0xdeadbeef)
	if !th.SimilarFingerprints(x, x) {
		t.Fatal("a fingerprint must be similar to itself")
	}
	if !th.IdenticalFingerprints(x, x) {
		t.Fatal("a fingerprint must be identical to itself")
	}
}

func TestSimilarThresholdIsStrict(t *testing.T) {
	th := Thresholds{Identical: 1, Similar: 3}
	base := fp(t, 0)

	atThreshold := fp(t, 0b111) // distance 3
	if th.SimilarFingerprints(base, atThreshold) {
		t.Fatal("distance equal to the threshold must not be similar")
	}

	belowThreshold := fp(t, 0b11) // distance 2
	if !th.SimilarFingerprints(base, belowThreshold) {
		t.Fatal("distance below the threshold must be similar")
	}
}

func TestMatchesRejectsMixedKinds(t *testing.T) {
	th := DefaultThresholds()
	img := NewImageItem("a.jpg", fp(t, 0))
	vid := NewVideoItem("a.mp4", []imagehash.Fingerprint{fp(t, 0)})
	if Matches(&img, &vid, th) {
		t.Fatal("image and video items must never match")
	}
}

func TestMatchesImageRequiresOneFingerprint(t *testing.T) {
	th := DefaultThresholds()
	ok := NewImageItem("a.jpg", fp(t, 0))
	empty := Item{Path: "b.jpg", Kind: KindImage}
	if Matches(&ok, &empty, th) {
		t.Fatal("an item without fingerprints must never match")
	}
}

func TestMatchesVideoTruncatesToShorter(t *testing.T) {
	th := Thresholds{Identical: 1, Similar: 2}
	f1, f2, f3 := fp(t, 0x10), fp(t, 0x20), fp(t, 0x40)

	longer := NewVideoItem("long.mp4", []imagehash.Fingerprint{f1, f2, f3})
	shorter := NewVideoItem("short.mp4", []imagehash.Fingerprint{f1, f2})
	if !Matches(&longer, &shorter, th) {
		t.Fatal("videos must match on the overlapping prefix")
	}

	mismatch := NewVideoItem("other.mp4", []imagehash.Fingerprint{f1, f3})
	if Matches(&longer, &mismatch, th) {
		t.Fatal("one dissimilar position must reject the pair")
	}
}

func TestMatchesVideoRejectsEmptySequences(t *testing.T) {
	th := DefaultThresholds()
	a := NewVideoItem("a.mp4", nil)
	b := NewVideoItem("b.mp4", []imagehash.Fingerprint{fp(t, 0)})
	if Matches(&a, &b, th) || Matches(&a, &a, th) {
		t.Fatal("zero-fingerprint videos must never match")
	}
}

func TestMarkGroupsAnchorsAtFirstUnmatched(t *testing.T) {
	// A~B and A~C but B and C differ by 2 bits: all three still land in
	// A's group because both are tested against the anchor A.
	th := Thresholds{Identical: 1, Similar: 2}
	items := []Item{
		NewImageItem("a.jpg", fp(t, 0b00)),
		NewImageItem("b.jpg", fp(t, 0b01)),
		NewImageItem("c.jpg", fp(t, 0b10)),
	}

	MarkGroups(items, NewCounter(), th)

	if items[0].Group != 1 || items[1].Group != 1 || items[2].Group != 1 {
		t.Fatalf("expected single group anchored at a.jpg, got %d/%d/%d",
			items[0].Group, items[1].Group, items[2].Group)
	}
}

func TestMarkGroupsDoesNotMergeTransitively(t *testing.T) {
	// A~B and B~C but A and C differ by 2 bits. B joins A's group first, so
	// C is never compared against B again and stays ungrouped.
	th := Thresholds{Identical: 1, Similar: 2}
	items := []Item{
		NewImageItem("a.jpg", fp(t, 0b11)),
		NewImageItem("b.jpg", fp(t, 0b01)),
		NewImageItem("c.jpg", fp(t, 0b00)),
	}

	MarkGroups(items, NewCounter(), th)

	if items[0].Group != 1 || items[1].Group != 1 {
		t.Fatalf("expected a and b grouped, got %d/%d", items[0].Group, items[1].Group)
	}
	if items[2].Group != 0 {
		t.Fatalf("c must stay ungrouped despite resembling b, got group %d", items[2].Group)
	}
}

func TestMarkGroupsSingletonStaysZero(t *testing.T) {
	th := Thresholds{Identical: 1, Similar: 2}
	items := []Item{
		NewImageItem("a.jpg", fp(t, 0)),
		NewImageItem("b.jpg", fp(t, 0xffffffffffffffff)),
	}

	MarkGroups(items, NewCounter(), th)

	for _, item := range items {
		if item.Group != 0 {
			t.Fatalf("%s must stay ungrouped, got %d", item.Path, item.Group)
		}
	}
	if got := GroupPaths(items); len(got) != 0 {
		t.Fatalf("singletons must be absent from grouped output, got %v", got)
	}
}

func TestMarkGroupsAssignsDenseIDs(t *testing.T) {
	th := Thresholds{Identical: 1, Similar: 2}
	// Two disjoint pairs far apart, plus a singleton in between.
	items := []Item{
		NewImageItem("p1.jpg", fp(t, 0x00)),
		NewImageItem("p2.jpg", fp(t, 0x01)),
		NewImageItem("lone.jpg", fp(t, 0x0f0f0f0f)),
		NewImageItem("q1.jpg", fp(t, 0xff00000000000000)),
		NewImageItem("q2.jpg", fp(t, 0xff00000000000001)),
	}

	counter := NewCounter()
	MarkGroups(items, counter, th)

	var ids []int
	for _, item := range items {
		if item.Group > 0 {
			ids = append(ids, item.Group)
		}
	}
	sort.Ints(ids)
	if !reflect.DeepEqual(ids, []int{1, 1, 2, 2}) {
		t.Fatalf("expected dense ids {1,1,2,2}, got %v", ids)
	}
	if counter.Peek() != 2 {
		t.Fatalf("counter must equal group count, got %d", counter.Peek())
	}
}

func TestMarkGroupsIsDeterministic(t *testing.T) {
	th := Thresholds{Identical: 1, Similar: 3}
	build := func() []Item {
		return []Item{
			NewImageItem("a.jpg", fp(t, 0b000)),
			NewImageItem("b.jpg", fp(t, 0b001)),
			NewImageItem("c.jpg", fp(t, 0b011)),
			NewImageItem("d.jpg", fp(t, 0b111)),
			NewImageItem("e.jpg", fp(t, 0xffffffff00000000)),
		}
	}

	first := build()
	MarkGroups(first, NewCounter(), th)
	second := build()
	MarkGroups(second, NewCounter(), th)

	for i := range first {
		if first[i].Group != second[i].Group {
			t.Fatalf("run disagreement at %s: %d vs %d", first[i].Path, first[i].Group, second[i].Group)
		}
	}
}

func TestSortByGroupIsStable(t *testing.T) {
	items := []Item{
		{Path: "late.jpg", Group: 2},
		{Path: "first.jpg", Group: 1},
		{Path: "second.jpg", Group: 1},
		{Path: "later.jpg", Group: 2},
	}
	SortByGroup(items)

	paths := make([]string, len(items))
	for i, item := range items {
		paths[i] = item.Path
	}
	want := []string{"first.jpg", "second.jpg", "late.jpg", "later.jpg"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
}

func TestGroupPathsNaturallySorted(t *testing.T) {
	items := []Item{
		{Path: "a10.jpg", Group: 1},
		{Path: "a2.jpg", Group: 1},
		{Path: "a1.jpg", Group: 1},
		{Path: "solo.jpg", Group: 0},
	}
	groups := GroupPaths(items)
	want := map[int][]string{1: {"a1.jpg", "a2.jpg", "a10.jpg"}}
	if !reflect.DeepEqual(groups, want) {
		t.Fatalf("got %v, want %v", groups, want)
	}
	if ids := GroupIDs(groups); !reflect.DeepEqual(ids, []int{1}) {
		t.Fatalf("got ids %v", ids)
	}
}

func TestCounterConcurrentCallersGetDistinctIDs(t *testing.T) {
	const callers = 64
	counter := NewCounter()

	results := make(chan int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- counter.Next()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, callers)
	for id := range results {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	for want := 1; want <= callers; want++ {
		if !seen[want] {
			t.Fatalf("missing id %d", want)
		}
	}
}
