// Package pcm connects go-audio integer buffers to the equalizer.
//
// Decoded WAV data arrives as [audio.IntBuffer] with one int per sample.
// The helpers here narrow 16-bit data to int16, run an [eq.Equalizer] over
// it and widen the result back into the buffer.
package pcm
