package imagehash

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/steakknife/hamming"

	"finddup/internal/logging"
)

// Algorithm selects the fingerprint variant applied to a run.
type Algorithm string

const (
	// AlgorithmAverage is the mean-luminance hash. It is the default and the
	// fallback for unrecognized algorithm names.
	AlgorithmAverage Algorithm = "average"
	// AlgorithmPerceptual is the DCT-based hash.
	AlgorithmPerceptual Algorithm = "perceptual"
)

// ParseAlgorithm maps a configured name to an Algorithm. Unknown names fall
// back to AlgorithmAverage; the boolean reports whether the name was
// recognized so callers can surface the fallback.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average", "ahash", "":
		return AlgorithmAverage, true
	case "perceptual", "phash":
		return AlgorithmPerceptual, true
	default:
		return AlgorithmAverage, false
	}
}

// Fingerprint is a fixed-length bit vector describing the visual content of
// one still image. Fingerprints are only comparable when produced by the
// same algorithm with the same bit length.
type Fingerprint struct {
	algorithm Algorithm
	bits      int
	words     []uint64
}

// Algorithm returns the algorithm that produced the fingerprint.
func (f Fingerprint) Algorithm() Algorithm { return f.algorithm }

// Bits returns the fingerprint bit length.
func (f Fingerprint) Bits() int { return f.bits }

// Words returns a copy of the packed hash words.
func (f Fingerprint) Words() []uint64 {
	return append([]uint64(nil), f.words...)
}

// IsZero reports whether the fingerprint is the zero value.
func (f Fingerprint) IsZero() bool { return len(f.words) == 0 }

func (f Fingerprint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", f.algorithm)
	for _, word := range f.words {
		fmt.Fprintf(&b, "%016x", word)
	}
	return b.String()
}

// ErrIncomparable reports an attempt to compare fingerprints of different
// algorithms or bit lengths.
var ErrIncomparable = errors.New("fingerprints are not comparable")

// Distance returns the Hamming distance between two comparable fingerprints.
func (f Fingerprint) Distance(other Fingerprint) (int, error) {
	if f.algorithm != other.algorithm {
		return 0, fmt.Errorf("%w: algorithm %s vs %s", ErrIncomparable, f.algorithm, other.algorithm)
	}
	if f.bits != other.bits || len(f.words) != len(other.words) {
		return 0, fmt.Errorf("%w: %d bits vs %d bits", ErrIncomparable, f.bits, other.bits)
	}
	return hamming.Uint64s(f.words, other.words), nil
}

// FromWords reconstructs a fingerprint from its stored representation.
func FromWords(algorithm Algorithm, bits int, words []uint64) (Fingerprint, error) {
	if bits <= 0 || len(words) == 0 {
		return Fingerprint{}, errors.New("fingerprint words: empty")
	}
	if want := (bits + 63) / 64; len(words) != want {
		return Fingerprint{}, fmt.Errorf("fingerprint words: got %d words for %d bits, want %d", len(words), bits, want)
	}
	return Fingerprint{
		algorithm: algorithm,
		bits:      bits,
		words:     append([]uint64(nil), words...),
	}, nil
}

// Computer produces fingerprints under one algorithm and bit length. The
// algorithm and hash side are fixed per run so all fingerprints it emits are
// mutually comparable.
type Computer struct {
	algorithm Algorithm
	size      int
	logger    *slog.Logger
}

// NewComputer builds a Computer for the named algorithm with the given hash
// side length (the fingerprint carries size*size bits). Unrecognized names
// fall back to the average hash; the fallback is logged, not an error.
func NewComputer(name string, size int, logger *slog.Logger) *Computer {
	logger = logging.NewComponentLogger(logger, "imagehash")
	algorithm, known := ParseAlgorithm(name)
	if !known {
		logger.Warn("unknown hash algorithm, falling back to average",
			logging.String("requested", name))
	}
	if size <= 0 {
		size = 8
	}
	return &Computer{algorithm: algorithm, size: size, logger: logger}
}

// Algorithm returns the resolved algorithm.
func (c *Computer) Algorithm() Algorithm { return c.algorithm }

// Bits returns the bit length of produced fingerprints.
func (c *Computer) Bits() int { return c.size * c.size }

// Compute fingerprints a decoded still image. The result depends only on
// pixel content, never on the image source.
func (c *Computer) Compute(img image.Image) (Fingerprint, error) {
	var (
		ext *goimagehash.ExtImageHash
		err error
	)
	switch c.algorithm {
	case AlgorithmPerceptual:
		ext, err = goimagehash.ExtPerceptionHash(img, c.size, c.size)
	default:
		ext, err = goimagehash.ExtAverageHash(img, c.size, c.size)
	}
	if err != nil {
		return Fingerprint{}, fmt.Errorf("%s hash: %w", c.algorithm, err)
	}
	return Fingerprint{
		algorithm: c.algorithm,
		bits:      c.size * c.size,
		words:     append([]uint64(nil), ext.GetHash()...),
	}, nil
}
