// Package buffer provides reusable sample buffers, pools, and scoped views
// for allocation-friendly processing of int16 PCM and float64 scratch data.
//
// A [View] is a temporary, exclusive, contiguous region borrowed from a
// [Pool] for the duration of one call. Release it with defer so that it is
// returned on every exit path:
//
//	v := buffer.Borrow(pool, len(samples))
//	defer v.Release()
//	scratch := v.Samples()
package buffer
