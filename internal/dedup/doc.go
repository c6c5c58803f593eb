// Package dedup partitions media items into duplicate groups by pairwise
// perceptual similarity. The grouping pass is a greedy single scan anchored
// at the first unmatched item, with group ids drawn from a shared
// thread-safe counter.
package dedup
