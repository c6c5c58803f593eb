package dedup

import (
	"sort"

	"finddup/internal/natsort"
)

// MarkGroups runs the grouping pass over items in place, assigning group ids
// drawn from counter to every item that matches another. Items keep their
// discovery order; the pass itself is single-threaded.
//
// The scan is greedy and anchored: the first still-ungrouped item in scan
// order is tested against every later still-ungrouped item, and a fresh id
// is allocated on its first match. Already-grouped items are skipped, so an
// item similar to a group member but not to the group's anchor stays out of
// the group. That makes the result an approximation of the true transitive
// closure, kept deliberately for reproducibility with prior runs.
func MarkGroups(items []Item, counter *Counter, thresholds Thresholds) {
	for i := range items {
		if items[i].Group > 0 {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if items[j].Group > 0 {
				continue
			}
			if !Matches(&items[i], &items[j], thresholds) {
				continue
			}
			if items[i].Group == 0 {
				items[i].Group = counter.Next()
			}
			items[j].Group = items[i].Group
		}
	}
}

// Grouped returns the items that found a duplicate, preserving their
// relative order. Singletons (group 0) are dropped.
func Grouped(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Group > 0 {
			out = append(out, item)
		}
	}
	return out
}

// SortByGroup stably orders items by ascending group id. Items within one
// group keep their relative order from the grouping pass.
func SortByGroup(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Group < items[j].Group
	})
}

// GroupPaths buckets grouped items into a mapping from group id to the
// naturally sorted paths of its members. Singletons are excluded.
func GroupPaths(items []Item) map[int][]string {
	groups := make(map[int][]string)
	for _, item := range items {
		if item.Group == 0 {
			continue
		}
		groups[item.Group] = append(groups[item.Group], item.Path)
	}
	for id := range groups {
		natsort.Sort(groups[id])
	}
	return groups
}

// GroupIDs returns the ids present in a grouped mapping in ascending order.
func GroupIDs(groups map[int][]string) []int {
	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
