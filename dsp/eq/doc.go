// Package eq implements a fixed-point multi-band gain equalizer for 16-bit
// PCM sample buffers.
//
// Gains are integers scaled by 1000: [Unity] (1000) leaves a sample
// unchanged, 500 is roughly -6 dB and 2000 roughly +6 dB. An [Assignment]
// decides which band governs each sample, so every sample is scaled by
// exactly one effective gain:
//
//	effective = gain[band] / 1000
//	out       = clamp(round(sample * effective), -32768, 32767)
//
// Rounding is half away from zero. Clamping is on by default; samples that
// hit the rails are counted in [Result.Clamped]. With clamping disabled an
// out-of-range sample fails the call with [ErrOverflow].
//
// Every call validates its arguments before writing anything, so an error
// never leaves a partially processed buffer behind.
//
// The package provides several entry points:
//
//   - [Apply] and [Process] resolve band membership through an [Assignment]
//     ([RoundRobin] by default, [Contiguous], or an explicit [Table]).
//   - [ApplyGains] multiplies by already-resolved per-sample factors.
//   - [ApplyBands] mixes band signals produced by a band splitter, each
//     scaled by its own gain.
//   - [New] validates a gain table once and returns an immutable
//     [Equalizer] that is safe for concurrent use.
//
// Basic usage:
//
//	samples := []int16{100, -100, 32767}
//	res, err := eq.Apply(samples, []int32{500})
//	// samples == [50 -50 16384], res.Samples == 3
package eq
