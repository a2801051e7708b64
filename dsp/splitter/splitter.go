package splitter

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/window"
)

const (
	defaultFrameSize = 1024
	minFrameSize     = 64
	overlap          = 4
	normFloor        = 1e-12
)

// Errors returned by the splitter.
var (
	ErrNilBank           = errors.New("splitter: nil bank")
	ErrInvalidSampleRate = errors.New("splitter: sample rate must be positive")
)

type config struct {
	frameSize int
}

// Option configures a Splitter.
type Option func(*config)

// WithFrameSize sets the FFT frame size. It must be a power of two and at
// least 64; other values are ignored. Defaults to 1024.
func WithFrameSize(n int) Option {
	return func(cfg *config) {
		if n >= minFrameSize && isPowerOf2(n) {
			cfg.frameSize = n
		}
	}
}

// Splitter routes STFT bins of a signal to the bands of a partitioned bank.
type Splitter struct {
	bank      *bank.Bank
	frameSize int
	hopSize   int

	plan    *algofft.Plan[complex128]
	window  []float64
	binBand []int

	windowed []float64
	spectrum []complex128
	masked   []complex128
	frame    []complex128
}

// New creates a Splitter for the bands of b. The bank is partitioned so that
// every frequency from 0 Hz to Nyquist belongs to exactly one band.
func New(b *bank.Bank, opts ...Option) (*Splitter, error) {
	if b == nil {
		return nil, ErrNilBank
	}
	if b.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, b.SampleRate())
	}

	cfg := config{frameSize: defaultFrameSize}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	n := cfg.frameSize
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("splitter: failed to create FFT plan: %w", err)
	}

	p := b.Partition()
	half := n / 2
	binBand := make([]int, half+1)
	for k := range binBand {
		binBand[k] = p.BandOf(float64(k) * p.SampleRate() / float64(n))
	}

	return &Splitter{
		bank:      p,
		frameSize: n,
		hopSize:   n / overlap,
		plan:      plan,
		// Periodic Hann: the first n points of an (n+1)-point symmetric window.
		window:   window.Hann(n + 1)[:n],
		binBand:  binBand,
		windowed: make([]float64, n),
		spectrum: make([]complex128, n),
		masked:   make([]complex128, n),
		frame:    make([]complex128, n),
	}, nil
}

// Bank returns the partitioned band layout.
func (s *Splitter) Bank() *bank.Bank { return s.bank }

// NumBands returns the number of bands.
func (s *Splitter) NumBands() int { return s.bank.NumBands() }

// FrameSize returns the FFT frame size.
func (s *Splitter) FrameSize() int { return s.frameSize }

// HopSize returns the STFT hop size in samples.
func (s *Splitter) HopSize() int { return s.hopSize }

// Split returns one signal per band, each with len(input) samples.
func (s *Splitter) Split(input []float64) ([][]float64, error) {
	nb := s.bank.NumBands()
	n := len(input)

	out := make([][]float64, nb)
	for b := range out {
		out[b] = make([]float64, n)
	}
	if n == 0 || nb == 0 {
		return out, nil
	}

	size := s.frameSize
	half := size / 2
	norm := make([]float64, n)

	// Start early enough that every input sample sees a full set of
	// overlapping windows.
	for pos := s.hopSize - size; pos < n; pos += s.hopSize {
		for i := range size {
			x := 0.0
			if idx := pos + i; idx >= 0 && idx < n {
				x = input[idx]
			}
			s.windowed[i] = x
		}
		vecmath.MulBlockInPlace(s.windowed, s.window)

		for i, x := range s.windowed {
			s.spectrum[i] = complex(x, 0)
		}
		if err := s.plan.Forward(s.spectrum, s.spectrum); err != nil {
			return nil, fmt.Errorf("splitter: forward FFT failed: %w", err)
		}

		for b := range nb {
			clear(s.masked)
			used := false
			for k := 0; k <= half; k++ {
				if s.binBand[k] != b {
					continue
				}
				s.masked[k] = s.spectrum[k]
				if k > 0 && k < half {
					s.masked[size-k] = s.spectrum[size-k]
				}
				used = true
			}
			if !used {
				continue
			}

			if err := s.plan.Inverse(s.frame, s.masked); err != nil {
				return nil, fmt.Errorf("splitter: inverse FFT failed: %w", err)
			}

			band := out[b]
			for i := range size {
				if idx := pos + i; idx >= 0 && idx < n {
					band[idx] += real(s.frame[i]) * s.window[i]
				}
			}
		}

		for i, w := range s.window {
			if idx := pos + i; idx >= 0 && idx < n {
				norm[idx] += w * w
			}
		}
	}

	for _, band := range out {
		for i := range band {
			if norm[i] > normFloor {
				band[i] /= norm[i]
			}
		}
	}

	return out, nil
}

// Equalize splits samples into bands, scales band b by gains[b], and writes
// the rounded, clamped mix back into samples. len(gains) must equal
// NumBands(); an empty bank with no gains leaves samples unchanged.
func (s *Splitter) Equalize(samples []int16, gains []int32, opts ...eq.Option) (eq.Result, error) {
	if len(gains) != s.NumBands() {
		return eq.Result{}, fmt.Errorf("%w: %d gains for %d bands", eq.ErrInvalidArgument, len(gains), s.NumBands())
	}

	e, err := eq.New(gains, opts...)
	if err != nil {
		return eq.Result{}, err
	}

	return s.EqualizeWith(samples, e)
}

// EqualizeWith is Equalize with a prepared equalizer whose band count must
// match the splitter.
func (s *Splitter) EqualizeWith(samples []int16, e *eq.Equalizer) (eq.Result, error) {
	if e.Bands() != s.NumBands() {
		return eq.Result{}, fmt.Errorf("%w: equalizer has %d bands, splitter %d", eq.ErrInvalidArgument, e.Bands(), s.NumBands())
	}
	if e.Bands() == 0 {
		return eq.Result{Samples: len(samples)}, nil
	}

	x := make([]float64, len(samples))
	core.Widen(x, samples)

	bands, err := s.Split(x)
	if err != nil {
		return eq.Result{}, err
	}

	return e.ApplyBands(samples, bands)
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
