package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/pcm"
	"github.com/cwbudde/algo-eq/dsp/splitter"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	modeRoundRobin = "roundrobin"
	modeContiguous = "contiguous"
	modeSpectral   = "spectral"
)

var errInvalidWAV = errors.New("not a valid WAV file")

type job struct {
	in, out string
	mode    string
	bands   string
	frame   int
	block   int
	gains   []int32
	master  int32
	clamp   bool
}

type summary struct {
	sampleRate int
	channels   int
	duration   time.Duration
	result     eq.Result
}

func (j *job) options() []eq.Option {
	opts := []eq.Option{
		eq.WithMasterGain(j.master),
		eq.WithClamping(j.clamp),
	}
	if j.mode == modeContiguous {
		opts = append(opts, eq.WithAssignment(eq.Contiguous{}))
	}
	return opts
}

func (j *job) run() (summary, error) {
	switch j.mode {
	case modeRoundRobin, modeContiguous, modeSpectral:
	default:
		return summary{}, fmt.Errorf("unknown mode %q", j.mode)
	}

	e, err := eq.New(j.gains, j.options()...)
	if err != nil {
		return summary{}, err
	}

	in, err := os.Open(j.in)
	if err != nil {
		return summary{}, err
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		return summary{}, fmt.Errorf("%s: %w", j.in, errInvalidWAV)
	}
	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return summary{}, fmt.Errorf("%s: %w: %d", j.in, pcm.ErrUnsupportedDepth, dec.BitDepth)
	}

	sum := summary{
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}

	var split *splitter.Splitter
	if j.mode == modeSpectral {
		if split, err = j.newSplitter(e, sum); err != nil {
			return summary{}, err
		}
	}

	if sum.result, err = j.write(dec, e, split, sum); err != nil {
		return summary{}, err
	}

	if sum.channels > 0 && sum.sampleRate > 0 {
		frames := sum.result.Samples / sum.channels
		sum.duration = time.Duration(frames) * time.Second / time.Duration(sum.sampleRate)
	}
	return sum, nil
}

// write equalizes into the output file. A failed run removes the file.
func (j *job) write(dec *wav.Decoder, e *eq.Equalizer, split *splitter.Splitter, sum summary) (res eq.Result, err error) {
	out, err := os.Create(j.out)
	if err != nil {
		return eq.Result{}, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(j.out)
		}
	}()

	enc := wav.NewEncoder(out, sum.sampleRate, 16, sum.channels, 1)
	if j.mode == modeRoundRobin {
		res, err = j.streamBlocks(dec, enc, e, sum)
	} else {
		res, err = j.wholeFile(dec, enc, e, split, sum.channels)
	}
	if err != nil {
		return eq.Result{}, err
	}

	return res, enc.Close()
}

// newSplitter builds the band splitter for spectral mode and checks that it
// has one band per gain.
func (j *job) newSplitter(e *eq.Equalizer, sum summary) (*splitter.Splitter, error) {
	b, err := parseBands(j.bands, float64(sum.sampleRate))
	if err != nil {
		return nil, err
	}
	s, err := splitter.New(b, splitter.WithFrameSize(j.frame))
	if err != nil {
		return nil, err
	}
	if s.NumBands() != e.Bands() {
		return nil, fmt.Errorf("%w: %d gains for %d %s bands", eq.ErrInvalidArgument, e.Bands(), s.NumBands(), j.bands)
	}
	return s, nil
}

// streamBlocks equalizes the file block by block. Round-robin assignment
// carries its position across blocks.
func (j *job) streamBlocks(dec *wav.Decoder, enc *wav.Encoder, e *eq.Equalizer, sum summary) (eq.Result, error) {
	cfg := processorConfig(sum.sampleRate, sum.channels, j.block)
	data := make([]int, cfg.BlockSamples())
	buf := &audio.IntBuffer{
		Format:         dec.Format(),
		SourceBitDepth: 16,
	}

	var total eq.Result
	for {
		buf.Data = data
		n, err := dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		buf.Data = data[:n]

		res, err := pcm.EqualizeFrom(buf, e, total.Samples)
		if err != nil {
			return total, err
		}
		total.Samples += res.Samples
		total.Clamped += res.Clamped

		if err := enc.Write(buf); err != nil {
			return total, err
		}
	}
}

// wholeFile loads the full file for assignments that depend on its length
// and for spectral processing.
func (j *job) wholeFile(dec *wav.Decoder, enc *wav.Encoder, e *eq.Equalizer, split *splitter.Splitter, channels int) (eq.Result, error) {
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return eq.Result{}, err
	}
	buf.SourceBitDepth = 16

	var res eq.Result
	if split != nil {
		res, err = spectral(buf, e, split, channels)
	} else {
		res, err = pcm.Equalize(buf, e)
	}
	if err != nil {
		return eq.Result{}, err
	}

	return res, enc.Write(buf)
}

// spectral equalizes each channel of buf separately through a band splitter.
func spectral(buf *audio.IntBuffer, e *eq.Equalizer, s *splitter.Splitter, channels int) (eq.Result, error) {
	ch := max(channels, 1)
	frames := len(buf.Data) / ch
	src := make([]int, frames)
	channel := make([]int16, frames)

	var total eq.Result
	for c := range ch {
		for i := range frames {
			src[i] = buf.Data[i*ch+c]
		}
		pcm.ToInt16(channel, src)

		res, err := s.EqualizeWith(channel, e)
		if err != nil {
			return eq.Result{}, fmt.Errorf("channel %d: %w", c, err)
		}
		total.Samples += res.Samples
		total.Clamped += res.Clamped

		pcm.FromInt16(src, channel)
		for i := range frames {
			buf.Data[i*ch+c] = src[i]
		}
	}
	return total, nil
}
