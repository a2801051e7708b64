package stream

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/gopxl/beep"
)

// Streamer equalizes the samples produced by an inner beep.Streamer.
type Streamer struct {
	src beep.Streamer
	eq  *eq.Equalizer

	pos     int
	clamped int
	err     error
	scratch []int16
}

var _ beep.Streamer = (*Streamer)(nil)

// New wraps src so that every sample it streams passes through e.
func New(src beep.Streamer, e *eq.Equalizer) *Streamer {
	return &Streamer{src: src, eq: e}
}

// Stream fills samples from the inner streamer and equalizes them.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	n, ok = s.src.Stream(samples)
	if n == 0 {
		return n, ok
	}

	if cap(s.scratch) < 2*n {
		s.scratch = make([]int16, 2*n)
	}
	pcm := s.scratch[:2*n]
	for i, frame := range samples[:n] {
		for c, x := range frame {
			v, clipped := core.QuantizeInt16(x * 32768)
			if clipped {
				s.clamped++
			}
			pcm[2*i+c] = v
		}
	}

	res, err := s.eq.ApplyFrom(pcm, s.pos)
	if err != nil {
		s.err = err
		return 0, false
	}
	s.pos += len(pcm)
	s.clamped += res.Clamped

	for i := range samples[:n] {
		samples[i][0] = core.Int16ToUnit(pcm[2*i])
		samples[i][1] = core.Int16ToUnit(pcm[2*i+1])
	}
	return n, ok
}

// Err returns the first equalizer error, or the inner streamer's error.
func (s *Streamer) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.src.Err()
}

// Position returns the number of int16 samples processed so far.
func (s *Streamer) Position() int { return s.pos }

// Clamped returns the number of samples saturated so far, both when the
// input is quantized to int16 and by the equalizer.
func (s *Streamer) Clamped() int { return s.clamped }
