package eq

import (
	"fmt"
	"slices"
)

// Equalizer is a validated gain table with its options.
//
// It is immutable after New and safe for concurrent use on independent
// buffers.
type Equalizer struct {
	gains []int32
	cfg   config
}

// New validates gains against the configured range and returns an Equalizer
// holding a private copy of the table.
func New(gains []int32, opts ...Option) (*Equalizer, error) {
	cfg := applyOptions(opts)
	if err := cfg.validateGains(gains); err != nil {
		return nil, err
	}
	if t, ok := cfg.assign.(Table); ok {
		cfg.assign = slices.Clone(t)
	}

	return &Equalizer{
		gains: slices.Clone(gains),
		cfg:   cfg,
	}, nil
}

// Bands returns the number of bands.
func (e *Equalizer) Bands() int { return len(e.gains) }

// Gains returns a copy of the gain table.
func (e *Equalizer) Gains() []int32 {
	return append([]int32(nil), e.gains...)
}

// Gain returns the gain of band b.
func (e *Equalizer) Gain(b int) (int32, bool) {
	if b < 0 || b >= len(e.gains) {
		return 0, false
	}
	return e.gains[b], true
}

// Apply equalizes samples in place.
func (e *Equalizer) Apply(samples []int16) (Result, error) {
	cfg := e.cfg
	return cfg.process(samples, samples, e.gains)
}

// Process equalizes src into dst.
func (e *Equalizer) Process(dst, src []int16) (Result, error) {
	if len(dst) != len(src) {
		return Result{}, fmt.Errorf("%w: dst has %d samples, src has %d", ErrInvalidArgument, len(dst), len(src))
	}

	cfg := e.cfg
	return cfg.process(dst, src, e.gains)
}

// ApplyFrom equalizes samples in place, treating samples[0] as index pos of a
// longer stream. A [RoundRobin] assignment continues from pos; other
// assignments are relative to the buffer and behave like Apply.
func (e *Equalizer) ApplyFrom(samples []int16, pos int) (Result, error) {
	cfg := e.cfg
	if rr, ok := cfg.assign.(RoundRobin); ok {
		cfg.assign = RoundRobin{Offset: rr.Offset + pos}
	}
	return cfg.process(samples, samples, e.gains)
}

// ApplyBands mixes band signals into dst using the equalizer's gains.
func (e *Equalizer) ApplyBands(dst []int16, bands [][]float64) (Result, error) {
	return ApplyBands(dst, bands, e.gains, e.options()...)
}

// options reproduces the configuration as options for package-level calls.
func (e *Equalizer) options() []Option {
	cfg := e.cfg
	return []Option{
		WithAssignment(cfg.assign),
		WithClamping(cfg.clamp),
		WithGainRange(cfg.minGain, cfg.maxGain),
		WithMasterGain(cfg.master),
	}
}
