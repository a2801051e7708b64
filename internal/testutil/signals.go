package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// SineInt16 generates a sine wave rounded to int16. amplitude is in sample
// units and is expected to stay within the int16 range.
func SineInt16(freqHz, sampleRate, amplitude float64, length int) []int16 {
	sine := DeterministicSine(freqHz, sampleRate, amplitude, length)
	out := make([]int16, length)
	for i, v := range sine {
		out[i] = int16(math.Round(v))
	}
	return out
}

// NoiseInt16 generates full-range int16 white noise with a fixed seed.
func NoiseInt16(seed int64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int16(rng.Intn(1<<16) - 1<<15)
	}
	return out
}

// Extremes returns a buffer exercising the int16 boundaries and zero.
func Extremes() []int16 {
	return []int16{0, 1, -1, 100, -100, 16384, -16384, 32767, -32768, 32766, -32767}
}

// RMS returns the root-mean-square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

// Widen converts int16 samples to float64.
func Widen(x []int16) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
