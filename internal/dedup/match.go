package dedup

import "finddup/internal/imagehash"

// Thresholds are the run-level strict upper bounds on Hamming distance.
// Distance strictly below Similar means visually similar; strictly below
// Identical means nearly identical. Identical never exceeds Similar.
type Thresholds struct {
	Identical int
	Similar   int
}

// DefaultThresholds matches the 64-bit hash tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{Identical: 1, Similar: 2}
}

// SimilarFingerprints reports whether two fingerprints fall within the
// similarity threshold. Incomparable fingerprints never match.
func (t Thresholds) SimilarFingerprints(a, b imagehash.Fingerprint) bool {
	d, err := a.Distance(b)
	if err != nil {
		return false
	}
	return d < t.Similar
}

// IdenticalFingerprints reports whether two fingerprints fall within the
// identical threshold.
func (t Thresholds) IdenticalFingerprints(a, b imagehash.Fingerprint) bool {
	d, err := a.Distance(b)
	if err != nil {
		return false
	}
	return d < t.Identical
}

// Matches reports whether two items are visual duplicates under the
// thresholds. Items of different kinds never match.
//
// Image items match when both carry exactly one fingerprint and the pair is
// similar. Video items match when both carry at least one fingerprint and
// every positional pair is similar, compared up to the shorter sequence: a
// truncated or shorter video still matches on the evidence available.
func Matches(a, b *Item, t Thresholds) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindImage:
		if len(a.Fingerprints) != 1 || len(b.Fingerprints) != 1 {
			return false
		}
		return t.SimilarFingerprints(a.Fingerprints[0], b.Fingerprints[0])
	case KindVideo:
		if len(a.Fingerprints) == 0 || len(b.Fingerprints) == 0 {
			return false
		}
		limit := len(a.Fingerprints)
		if len(b.Fingerprints) < limit {
			limit = len(b.Fingerprints)
		}
		for i := 0; i < limit; i++ {
			if !t.SimilarFingerprints(a.Fingerprints[i], b.Fingerprints[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
