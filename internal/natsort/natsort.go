// Package natsort orders file paths the way a human expects: embedded digit
// runs compare as numbers, so file2.mp4 sorts before file10.mp4.
package natsort

import (
	"path/filepath"
	"sort"
	"strings"
)

// Compare orders two paths naturally. Paths are compared component by
// component; the final component is compared with its extension stripped.
// Within a component, alternating digit and non-digit runs are compared in
// sequence, digit runs numerically. Distinct paths never compare equal: the
// full original strings break any remaining tie, keeping the order total.
func Compare(a, b string) int {
	ca := splitComponents(a)
	cb := splitComponents(b)

	limit := len(ca)
	if len(cb) < limit {
		limit = len(cb)
	}
	for i := 0; i < limit; i++ {
		if c := compareComponent(ca[i], cb[i]); c != 0 {
			return c
		}
	}
	if len(ca) != len(cb) {
		if len(ca) < len(cb) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Less reports whether a orders before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Sort orders paths in place.
func Sort(paths []string) {
	sort.Slice(paths, func(i, j int) bool { return Less(paths[i], paths[j]) })
}

// Sorted returns a naturally ordered copy of paths.
func Sorted(paths []string) []string {
	out := append([]string(nil), paths...)
	Sort(out)
	return out
}

func splitComponents(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 0 {
		last := parts[len(parts)-1]
		parts[len(parts)-1] = strings.TrimSuffix(last, filepath.Ext(last))
	}
	return parts
}

func compareComponent(a, b string) int {
	ta := tokenize(a)
	tb := tokenize(b)

	limit := len(ta)
	if len(tb) < limit {
		limit = len(tb)
	}
	for i := 0; i < limit; i++ {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	default:
		return 0
	}
}

func compareToken(a, b string) int {
	aDigits := isDigits(a)
	bDigits := isDigits(b)

	// Digit runs sort ahead of text runs at the same position.
	switch {
	case aDigits && !bDigits:
		return -1
	case !aDigits && bDigits:
		return 1
	case aDigits && bDigits:
		return compareNumeric(a, b)
	default:
		return strings.Compare(a, b)
	}
}

// compareNumeric compares two digit runs as integers of arbitrary length.
// Leading zeros are ignored for magnitude; equal magnitudes fall back to the
// raw run so "01" and "1" still order deterministically.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	switch {
	case len(ta) != len(tb):
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	case ta != tb:
		return strings.Compare(ta, tb)
	default:
		return strings.Compare(a, b)
	}
}

func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	start := 0
	digits := isDigit(rune(s[0]))
	for i, r := range s {
		d := isDigit(r)
		if d != digits {
			tokens = append(tokens, s[start:i])
			start = i
			digits = d
		}
	}
	return append(tokens, s[start:])
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
