// Package bank provides octave, fractional-octave, custom, and uniform band
// layouts for multi-band equalizers.
//
// A layout is an ordered set of bands, each with a center frequency and
// lower/upper edges. The band splitter uses a [Bank.Partition] of a layout
// to route every frequency of the spectrum to exactly one band.
//
// The package supports three construction modes:
//
//   - [Octave] builds standard octave or fractional-octave (1/3, 1/6, etc.)
//     layouts with center frequencies per IEC 61260 (base-10 system).
//   - [Custom] builds a layout around arbitrary center frequencies, with
//     neighboring bands meeting at the geometric mean of their centers.
//   - [Uniform] splits [0, Nyquist] into equal-width bands.
//
// Band edge frequencies for octave layouts follow the IEC 61260 standard:
//
//	G = 10^(3/10)              (octave ratio)
//	f_center = 1000 * G^(k/N)  (for 1/N-octave, integer k)
//	f_upper  = f_center * G^(1/(2*N))
//	f_lower  = f_center * G^(-1/(2*N))
//
// Basic usage:
//
//	b := bank.Octave(1, 48000).Partition()
//	band := b.BandOf(440) // index of the band owning 440 Hz
package bank
