package eq

import "fmt"

// Assignment maps a sample index to the band whose gain applies to it.
type Assignment interface {
	// Band returns the band for sample i of an n-sample buffer. bands is
	// always positive.
	Band(i, n, bands int) int
}

// Validator is implemented by assignments that can reject a buffer/band
// combination up front.
type Validator interface {
	Validate(n, bands int) error
}

// RoundRobin assigns sample i to band (Offset+i) mod bands.
//
// A single band therefore covers every sample, and two bands over an
// interleaved stereo buffer act as per-channel gains. Offset keeps the
// mapping stable when a stream is processed in chunks.
type RoundRobin struct {
	Offset int
}

// Band implements [Assignment].
func (r RoundRobin) Band(i, _, bands int) int {
	b := (r.Offset + i) % bands
	if b < 0 {
		b += bands
	}
	return b
}

// Contiguous splits the buffer into one run of consecutive samples per band:
// sample i of n belongs to band i*bands/n.
type Contiguous struct{}

// Band implements [Assignment].
func (Contiguous) Band(i, n, bands int) int {
	return int(int64(i) * int64(bands) / int64(n))
}

// Table is an explicit per-sample band assignment.
type Table []int

// Band implements [Assignment].
func (t Table) Band(i, _, _ int) int {
	return t[i]
}

// Validate implements [Validator]. The table must have one entry per sample
// and every entry must name an existing band.
func (t Table) Validate(n, bands int) error {
	if len(t) != n {
		return fmt.Errorf("%w: band table has %d entries for %d samples", ErrInvalidArgument, len(t), n)
	}
	for i, b := range t {
		if b < 0 || b >= bands {
			return fmt.Errorf("%w: band table entry %d = %d, want [0, %d)", ErrInvalidArgument, i, b, bands)
		}
	}
	return nil
}
