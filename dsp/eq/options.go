package eq

import "github.com/cwbudde/algo-eq/dsp/core"

// Unity is the fixed-point gain that leaves a sample unchanged.
const Unity = core.GainScale

// MaxGain is the default upper bound for a band gain (+60 dB).
const MaxGain = 1_000_000

type config struct {
	assign  Assignment
	clamp   bool
	minGain int32
	maxGain int32
	master  int32
}

func defaultConfig() config {
	return config{
		assign:  RoundRobin{},
		clamp:   true,
		minGain: 0,
		maxGain: MaxGain,
		master:  Unity,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// Option configures an equalizer call or an [Equalizer].
type Option func(*config)

// WithAssignment selects how samples are mapped to bands.
// Defaults to [RoundRobin].
func WithAssignment(a Assignment) Option {
	return func(cfg *config) {
		if a != nil {
			cfg.assign = a
		}
	}
}

// WithClamping enables or disables saturation to the int16 range.
// When disabled, an out-of-range result fails the call with [ErrOverflow].
func WithClamping(enabled bool) Option {
	return func(cfg *config) {
		cfg.clamp = enabled
	}
}

// WithGainRange sets the inclusive range accepted for band gains.
// Defaults to [0, MaxGain]. Ignored when min > max.
func WithGainRange(minGain, maxGain int32) Option {
	return func(cfg *config) {
		if minGain <= maxGain {
			cfg.minGain = minGain
			cfg.maxGain = maxGain
		}
	}
}

// WithMasterGain applies an additional fixed-point gain on top of every
// band gain. Negative values are ignored.
func WithMasterGain(g int32) Option {
	return func(cfg *config) {
		if g >= 0 {
			cfg.master = g
		}
	}
}

// factor returns the linear factor for band gain g including the master gain.
func (cfg *config) factor(g int32) float64 {
	if cfg.master == Unity {
		return core.MillisToLinear(g)
	}
	return float64(g) * float64(cfg.master) / (Unity * Unity)
}
