package core

import "math"

// GainScale is the fixed-point denominator of a millis gain: a gain of
// GainScale leaves a sample unchanged.
const GainScale = 1000

// Int16 sample range.
const (
	MinInt16 = math.MinInt16
	MaxInt16 = math.MaxInt16
)

// MillisToLinear converts a fixed-point gain (scaled by 1000) to a linear factor.
func MillisToLinear(g int32) float64 {
	return float64(g) / GainScale
}

// LinearToMillis converts a linear factor to the nearest fixed-point gain.
// Values outside the int32 range saturate.
func LinearToMillis(linear float64) int32 {
	v := math.Round(linear * GainScale)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}

	return int32(v)
}

// MillisToDB converts a fixed-point gain to dB (20*log10 convention).
// Returns -Inf for a zero gain and NaN for a negative one.
func MillisToDB(g int32) float64 {
	switch {
	case g < 0:
		return math.NaN()
	case g == 0:
		return math.Inf(-1)
	}

	return 20 * math.Log10(MillisToLinear(g))
}

// DBToMillis converts dB to the nearest fixed-point gain.
func DBToMillis(db float64) int32 {
	return LinearToMillis(math.Pow(10, db/20))
}

// QuantizeInt16 rounds x half away from zero and saturates it to the int16
// range. clipped reports whether saturation changed the rounded value.
func QuantizeInt16(x float64) (v int16, clipped bool) {
	r := math.Round(x)

	switch {
	case math.IsNaN(r):
		return 0, true
	case r > MaxInt16:
		return MaxInt16, true
	case r < MinInt16:
		return MinInt16, true
	}

	return int16(r), false
}

// Widen converts int16 samples into dst and returns the number of converted
// elements.
func Widen(dst []float64, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}

	return n
}

// Int16ToUnit maps an int16 sample to [-1, 1).
func Int16ToUnit(x int16) float64 {
	return float64(x) / 32768
}

// UnitToInt16 maps a [-1, 1] sample to int16, rounding and saturating.
func UnitToInt16(x float64) int16 {
	v, _ := QuantizeInt16(x * 32768)
	return v
}
