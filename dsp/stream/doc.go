// Package stream applies an equalizer to a beep audio stream.
//
// Stereo frames are quantized to interleaved int16 pairs, equalized, and
// converted back. Round-robin band assignment continues across Stream calls,
// so the result does not depend on how the consumer sizes its reads.
package stream
