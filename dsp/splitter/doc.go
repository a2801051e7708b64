// Package splitter separates a signal into frequency bands so that a
// multi-band equalizer can scale each band by its own gain.
//
// The [Splitter] runs a short-time Fourier transform with a periodic Hann
// window at 75% overlap. Every FFT bin is routed to the band of a
// [bank.Bank] partition that owns its frequency, each band is resynthesized
// by weighted overlap-add, and the result is normalized by the summed
// squared window. The band signals therefore add back up to the input:
//
//	sum(Split(x)) == x  (to floating-point precision)
//
// [Splitter.Equalize] combines the split with [eq.ApplyBands], so unity gains
// reproduce an int16 buffer exactly.
//
// A Splitter holds FFT scratch memory and is not safe for concurrent use.
package splitter
