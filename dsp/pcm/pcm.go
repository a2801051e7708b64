package pcm

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/buffer"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/go-audio/audio"
)

// Errors returned by this package.
var (
	ErrNilBuffer        = errors.New("pcm: nil buffer")
	ErrUnsupportedDepth = errors.New("pcm: unsupported bit depth")
)

var int16Pool = buffer.NewPool[int16]()

// ToInt16 narrows src into dst, saturating values outside the int16 range.
// It converts min(len(dst), len(src)) samples and returns how many saturated.
func ToInt16(dst []int16, src []int) int {
	n := min(len(dst), len(src))
	clipped := 0
	for i := range n {
		v := src[i]
		switch {
		case v > core.MaxInt16:
			v = core.MaxInt16
			clipped++
		case v < core.MinInt16:
			v = core.MinInt16
			clipped++
		}
		dst[i] = int16(v)
	}
	return clipped
}

// FromInt16 widens src into dst and returns the number of samples copied.
func FromInt16(dst []int, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int(src[i])
	}
	return n
}

// Equalize runs e over the interleaved samples of buf in place.
func Equalize(buf *audio.IntBuffer, e *eq.Equalizer) (eq.Result, error) {
	return EqualizeFrom(buf, e, 0)
}

// EqualizeFrom is Equalize for a buffer whose first sample sits at index pos
// of a longer stream.
//
// The buffer must carry 16-bit data; a zero SourceBitDepth is taken as 16.
// On error buf is left unchanged.
func EqualizeFrom(buf *audio.IntBuffer, e *eq.Equalizer, pos int) (eq.Result, error) {
	if buf == nil {
		return eq.Result{}, ErrNilBuffer
	}
	if d := buf.SourceBitDepth; d != 0 && d != 16 {
		return eq.Result{}, fmt.Errorf("%w: %d", ErrUnsupportedDepth, d)
	}

	v := buffer.Borrow(int16Pool, len(buf.Data))
	defer v.Release()

	samples := v.Samples()
	ToInt16(samples, buf.Data)

	res, err := e.ApplyFrom(samples, pos)
	if err != nil {
		return eq.Result{}, err
	}

	FromInt16(buf.Data, samples)
	return res, nil
}
