package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/buffer"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Result reports what a call did.
type Result struct {
	// Samples is the number of samples processed.
	Samples int
	// Clamped is the number of samples saturated to the int16 range.
	Clamped int
}

var scratchPool = buffer.NewPool[float64]()

// Apply equalizes samples in place and returns the number of samples
// processed. An empty gain table leaves the buffer unchanged.
func Apply(samples []int16, gains []int32, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)
	return cfg.process(samples, samples, gains)
}

// Process equalizes src into dst. Both slices must have the same length;
// they may alias.
func Process(dst, src []int16, gains []int32, opts ...Option) (Result, error) {
	if len(dst) != len(src) {
		return Result{}, fmt.Errorf("%w: dst has %d samples, src has %d", ErrInvalidArgument, len(dst), len(src))
	}

	cfg := applyOptions(opts)
	return cfg.process(dst, src, gains)
}

// ApplyGains multiplies each sample by its already-resolved linear factor,
// then rounds and clamps. factors must have one finite entry per sample.
// The master gain and clamping options apply; the assignment is ignored.
func ApplyGains(samples []int16, factors []float64, opts ...Option) (Result, error) {
	if len(factors) != len(samples) {
		return Result{}, fmt.Errorf("%w: %d factors for %d samples", ErrInvalidArgument, len(factors), len(samples))
	}
	for i, f := range factors {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Result{}, fmt.Errorf("%w: factor %d is not finite", ErrInvalidArgument, i)
		}
	}

	cfg := applyOptions(opts)
	if cfg.master == Unity {
		return cfg.scale(samples, samples, factors)
	}

	v := buffer.Borrow(scratchPool, len(factors))
	defer v.Release()

	scaled := v.Samples()
	m := core.MillisToLinear(cfg.master)
	for i, f := range factors {
		scaled[i] = f * m
	}
	return cfg.scale(samples, samples, scaled)
}

// ApplyBands mixes per-band signals into dst, scaling band b by gains[b].
// Every band must have len(dst) samples. With no bands dst is left unchanged.
func ApplyBands(dst []int16, bands [][]float64, gains []int32, opts ...Option) (Result, error) {
	if len(bands) != len(gains) {
		return Result{}, fmt.Errorf("%w: %d band signals for %d gains", ErrInvalidArgument, len(bands), len(gains))
	}
	for b, band := range bands {
		if len(band) != len(dst) {
			return Result{}, fmt.Errorf("%w: band %d has %d samples, want %d", ErrInvalidArgument, b, len(band), len(dst))
		}
		for i, x := range band {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return Result{}, fmt.Errorf("%w: band %d sample %d is not finite", ErrInvalidArgument, b, i)
			}
		}
	}

	cfg := applyOptions(opts)
	if err := cfg.validateGains(gains); err != nil {
		return Result{}, err
	}
	if len(bands) == 0 {
		return Result{Samples: len(dst)}, nil
	}

	v := buffer.Borrow(scratchPool, len(dst))
	defer v.Release()

	mix := v.Samples()
	for b, band := range bands {
		f := cfg.factor(gains[b])
		for i, x := range band {
			mix[i] += f * x
		}
	}
	return cfg.commit(dst, mix)
}

func (cfg *config) validateGains(gains []int32) error {
	for i, g := range gains {
		if g < cfg.minGain || g > cfg.maxGain {
			return fmt.Errorf("%w: gain %d = %d outside [%d, %d]", ErrInvalidArgument, i, g, cfg.minGain, cfg.maxGain)
		}
	}
	return nil
}

func (cfg *config) process(dst, src []int16, gains []int32) (Result, error) {
	if err := cfg.validateGains(gains); err != nil {
		return Result{}, err
	}

	n := len(src)
	bands := len(gains)
	if bands == 0 || n == 0 {
		copy(dst, src)
		return Result{Samples: n}, nil
	}

	if v, ok := cfg.assign.(Validator); ok {
		if err := v.Validate(n, bands); err != nil {
			return Result{}, err
		}
	}

	fv := buffer.Borrow(scratchPool, n)
	defer fv.Release()

	factors := fv.Samples()
	for i := range n {
		b := cfg.assign.Band(i, n, bands)
		if b < 0 || b >= bands {
			return Result{}, fmt.Errorf("%w: sample %d assigned to band %d, want [0, %d)", ErrInvalidArgument, i, b, bands)
		}
		factors[i] = cfg.factor(gains[b])
	}

	return cfg.scale(dst, src, factors)
}

// scale computes dst = src * factors.
func (cfg *config) scale(dst, src []int16, factors []float64) (Result, error) {
	v := buffer.Borrow(scratchPool, len(src))
	defer v.Release()

	work := v.Samples()
	core.Widen(work, src)
	vecmath.MulBlockInPlace(work, factors)

	return cfg.commit(dst, work)
}

// commit rounds work into dst. Without clamping the whole block is checked
// first so that an overflow leaves dst untouched.
func (cfg *config) commit(dst []int16, work []float64) (Result, error) {
	if !cfg.clamp {
		for i, x := range work {
			if _, clipped := core.QuantizeInt16(x); clipped {
				return Result{}, fmt.Errorf("%w: sample %d scales to %.1f", ErrOverflow, i, x)
			}
		}
	}

	res := Result{Samples: len(work)}
	for i, x := range work {
		v, clipped := core.QuantizeInt16(x)
		if clipped {
			res.Clamped++
		}
		dst[i] = v
	}
	return res, nil
}
