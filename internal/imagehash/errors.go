package imagehash

import "fmt"

// HashError reports that a still image could not be decoded or hashed. It
// always carries the offending path; callers must treat the file as having
// no fingerprint rather than substituting a zero hash.
type HashError struct {
	Path string
	Err  error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("hash image %s: %v", e.Path, e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }
