package dedup

import "finddup/internal/imagehash"

// Kind distinguishes the comparison rules applied to an item.
type Kind int

const (
	// KindImage items carry exactly one fingerprint.
	KindImage Kind = iota
	// KindVideo items carry one fingerprint per sampled timestamp.
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Item is the unit the grouping engine operates on: a source path plus the
// fingerprints extracted from it. The path is the item's identity; paths are
// unique within one run.
//
// Group is 0 until the engine places the item in a group, after which it
// holds a positive group id and is never reset within the run. An item whose
// extraction or hashing failed has no fingerprints and can never match.
type Item struct {
	Path         string
	Kind         Kind
	Fingerprints []imagehash.Fingerprint
	Group        int
}

// NewImageItem builds an image item with a single fingerprint.
func NewImageItem(path string, fp imagehash.Fingerprint) Item {
	return Item{Path: path, Kind: KindImage, Fingerprints: []imagehash.Fingerprint{fp}}
}

// NewVideoItem builds a video item from the fingerprints of its sampled
// frames, in timestamp order. An empty slice is valid and marks an item that
// cannot match anything.
func NewVideoItem(path string, fps []imagehash.Fingerprint) Item {
	return Item{Path: path, Kind: KindVideo, Fingerprints: fps}
}
