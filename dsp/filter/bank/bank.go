package bank

import (
	"math"
	"sort"
)

// octaveRatio is G = 10^(3/10) per IEC 61260.
var octaveRatio = math.Pow(10, 0.3)

const (
	defaultLowerFreq = 20.0
	defaultUpperFreq = 20000.0
)

// Band describes one frequency band of an equalizer.
type Band struct {
	CenterFreq float64 // center frequency in Hz
	LowCutoff  float64 // lower band edge in Hz
	HighCutoff float64 // upper band edge in Hz
}

// Contains reports whether freqHz lies in [LowCutoff, HighCutoff).
func (b Band) Contains(freqHz float64) bool {
	return freqHz >= b.LowCutoff && freqHz < b.HighCutoff
}

// Bank is an ordered set of bands, low to high frequency.
type Bank struct {
	bands      []Band
	sampleRate float64
}

type bankConfig struct {
	lowerHz float64
	upperHz float64
}

func defaultBankConfig() bankConfig {
	return bankConfig{
		lowerHz: defaultLowerFreq,
		upperHz: defaultUpperFreq,
	}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithFrequencyRange sets custom lower and upper limits for band centers.
// Bands outside this range are excluded.
func WithFrequencyRange(lower, upper float64) Option {
	return func(cfg *bankConfig) {
		if lower > 0 && upper > lower {
			cfg.lowerHz = lower
			cfg.upperHz = upper
		}
	}
}

// Octave builds an octave or fractional-octave band layout.
//
// The fraction parameter controls the bandwidth: fraction=1 gives full octave
// bands, fraction=3 gives 1/3-octave bands, etc. Center frequencies follow
// the IEC 61260 base-10 system: f_m = 1000 * G^(k/N) where G = 10^(3/10).
//
// Band edges are:
//
//	f_upper = f_center * G^(1/(2*N))
//	f_lower = f_center * G^(-1/(2*N))
func Octave(fraction int, sampleRate float64, opts ...Option) *Bank {
	if fraction <= 0 {
		fraction = 1
	}
	cfg := defaultBankConfig()
	for _, o := range opts {
		o(&cfg)
	}
	specs := octaveBandSpecs(fraction, sampleRate, cfg.lowerHz, cfg.upperHz)
	bands := make([]Band, 0, len(specs))
	for _, spec := range specs {
		bands = append(bands, Band{
			CenterFreq: spec.center,
			LowCutoff:  spec.low,
			HighCutoff: spec.high,
		})
	}

	return &Bank{bands: bands, sampleRate: sampleRate}
}

// Custom builds a band layout around arbitrary center frequencies.
//
// Adjacent bands meet at the geometric mean of their centers; the outer
// edges mirror the nearest inner edge and are capped at Nyquist. Centers
// that are not inside (0, Nyquist) and duplicates are dropped.
func Custom(centers []float64, sampleRate float64) *Bank {
	nyquist := sampleRate / 2

	fcs := make([]float64, 0, len(centers))
	for _, fc := range centers {
		if fc > 0 && fc < nyquist {
			fcs = append(fcs, fc)
		}
	}
	sort.Float64s(fcs)
	fcs = dedupe(fcs)

	bands := make([]Band, len(fcs))
	for i, fc := range fcs {
		bands[i].CenterFreq = fc
	}
	for i := 1; i < len(bands); i++ {
		edge := math.Sqrt(bands[i-1].CenterFreq * bands[i].CenterFreq)
		bands[i-1].HighCutoff = edge
		bands[i].LowCutoff = edge
	}

	switch n := len(bands); {
	case n == 1:
		bands[0].LowCutoff = bands[0].CenterFreq / math.Sqrt2
		bands[0].HighCutoff = math.Min(bands[0].CenterFreq*math.Sqrt2, nyquist)
	case n > 1:
		first, last := &bands[0], &bands[n-1]
		first.LowCutoff = first.CenterFreq * first.CenterFreq / first.HighCutoff
		last.HighCutoff = math.Min(last.CenterFreq*last.CenterFreq/last.LowCutoff, nyquist)
	}

	return &Bank{bands: bands, sampleRate: sampleRate}
}

// Uniform builds n equal-width bands covering [0, Nyquist].
func Uniform(n int, sampleRate float64) *Bank {
	if n <= 0 || sampleRate <= 0 {
		return &Bank{sampleRate: sampleRate}
	}

	width := sampleRate / 2 / float64(n)
	bands := make([]Band, n)
	for k := range bands {
		lo := float64(k) * width
		bands[k] = Band{
			CenterFreq: lo + width/2,
			LowCutoff:  lo,
			HighCutoff: lo + width,
		}
	}

	return &Bank{bands: bands, sampleRate: sampleRate}
}

// Bands returns all bands in the bank, ordered low to high frequency.
func (b *Bank) Bands() []Band { return b.bands }

// NumBands returns the number of bands.
func (b *Bank) NumBands() int { return len(b.bands) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Centers returns the band center frequencies.
func (b *Bank) Centers() []float64 {
	out := make([]float64, len(b.bands))
	for i, band := range b.bands {
		out[i] = band.CenterFreq
	}
	return out
}

// Partition returns a copy of the bank whose bands cover [0, Nyquist]
// without gaps: the first band extends down to 0 Hz, the last up to
// Nyquist, and any gap between neighbors is split at its geometric mean.
func (b *Bank) Partition() *Bank {
	n := len(b.bands)
	bands := make([]Band, n)
	copy(bands, b.bands)
	if n == 0 {
		return &Bank{bands: bands, sampleRate: b.sampleRate}
	}

	for i := 1; i < n; i++ {
		if bands[i-1].HighCutoff != bands[i].LowCutoff {
			edge := math.Sqrt(bands[i-1].CenterFreq * bands[i].CenterFreq)
			bands[i-1].HighCutoff = edge
			bands[i].LowCutoff = edge
		}
	}
	bands[0].LowCutoff = 0
	bands[n-1].HighCutoff = b.sampleRate / 2

	return &Bank{bands: bands, sampleRate: b.sampleRate}
}

// BandOf returns the index of the band containing freqHz, or -1 if no band
// does. The top edge of the last band is inclusive so that Nyquist maps to
// the last band of a partition.
func (b *Bank) BandOf(freqHz float64) int {
	n := len(b.bands)
	if n == 0 || freqHz < b.bands[0].LowCutoff || freqHz > b.bands[n-1].HighCutoff {
		return -1
	}

	i := sort.Search(n, func(i int) bool { return freqHz < b.bands[i].HighCutoff })
	if i == n {
		return n - 1
	}
	if freqHz < b.bands[i].LowCutoff {
		return -1
	}
	return i
}

type bandSpec struct {
	center float64
	low    float64
	high   float64
}

func octaveBandSpecs(fraction int, sampleRate, lowerHz, upperHz float64) []bandSpec {
	if fraction <= 0 || sampleRate <= 0 || lowerHz <= 0 || upperHz <= lowerHz {
		return nil
	}

	n := float64(fraction)
	halfBW := math.Pow(octaveRatio, 1/(2*n))
	nyquist := sampleRate / 2

	// Determine the range of band indices k such that
	// 1000 * G^(k/N) falls within [lowerHz, upperHz].
	kMin := int(math.Ceil(n * math.Log(lowerHz/1000) / math.Log(octaveRatio)))
	kMax := int(math.Floor(n * math.Log(upperHz/1000) / math.Log(octaveRatio)))
	if kMax < kMin {
		return nil
	}

	specs := make([]bandSpec, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		fc := 1000 * math.Pow(octaveRatio, float64(k)/n)
		fLo := fc / halfBW
		fHi := fc * halfBW

		// Skip bands whose edges exceed Nyquist.
		if fHi >= nyquist || fLo <= 0 {
			continue
		}
		specs = append(specs, bandSpec{center: fc, low: fLo, high: fHi})
	}
	return specs
}

func dedupe(sorted []float64) []float64 {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
