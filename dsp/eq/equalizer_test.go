package eq

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestNewValidatesGains(t *testing.T) {
	if _, err := New([]int32{1000, -3}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if _, err := New([]int32{1000, -3}, WithGainRange(-1000, 1000)); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestEqualizerCopiesBandTable(t *testing.T) {
	table := Table{0, 0}

	e, err := New([]int32{1000, 2000}, WithAssignment(table))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	table[0], table[1] = 1, 1

	buf := []int16{10, 10}
	if _, err := e.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	testutil.RequireSamplesEqual(t, buf, []int16{10, 10})
}

func TestEqualizerCopiesGainTable(t *testing.T) {
	gains := []int32{1000, 2000}

	e, err := New(gains)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	gains[1] = 0
	if g, _ := e.Gain(1); g != 2000 {
		t.Fatalf("Gain(1) = %d after caller mutation, want 2000", g)
	}

	got := e.Gains()
	got[0] = 7
	if g, _ := e.Gain(0); g != 1000 {
		t.Fatalf("Gain(0) = %d after mutating Gains(), want 1000", g)
	}

	if _, ok := e.Gain(2); ok {
		t.Fatal("Gain(2) reported ok for a two-band table")
	}
	if e.Bands() != 2 {
		t.Fatalf("Bands() = %d, want 2", e.Bands())
	}
}

func TestEqualizerApplyMatchesPackageApply(t *testing.T) {
	in := testutil.NoiseInt16(21, 999)
	gains := []int32{250, 1000, 1750, 4000}
	opts := []Option{WithAssignment(Contiguous{}), WithMasterGain(900)}

	want := slices.Clone(in)
	if _, err := Apply(want, gains, opts...); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	e, err := New(gains, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := make([]int16, len(in))
	if _, err := e.Process(got, in); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	testutil.RequireSamplesEqual(t, got, want)

	got = slices.Clone(in)
	if _, err := e.Apply(got); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	testutil.RequireSamplesEqual(t, got, want)
}

func TestEqualizerApplyFromIsChunkIndependent(t *testing.T) {
	in := testutil.NoiseInt16(9, 300)

	e, err := New([]int32{500, 1000, 1500})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	whole := slices.Clone(in)
	if _, err := e.Apply(whole); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	chunked := slices.Clone(in)
	for pos := 0; pos < len(chunked); pos += 64 {
		end := min(pos+64, len(chunked))
		if _, err := e.ApplyFrom(chunked[pos:end], pos); err != nil {
			t.Fatalf("ApplyFrom(%d) error = %v", pos, err)
		}
	}
	testutil.RequireSamplesEqual(t, chunked, whole)
}

func TestEqualizerApplyBands(t *testing.T) {
	e, err := New([]int32{0, 2000}, WithClamping(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dst := make([]int16, 2)
	if _, err := e.ApplyBands(dst, [][]float64{{5, 5}, {1, -1}}); err != nil {
		t.Fatalf("ApplyBands() error = %v", err)
	}
	testutil.RequireSamplesEqual(t, dst, []int16{2, -2})

	_, err = e.ApplyBands(dst, [][]float64{{0, 0}, {20000, 0}})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("err = %v, want ErrOverflow", err)
	}
}

func TestEqualizerConcurrentUse(t *testing.T) {
	e, err := New([]int32{500, 2000})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	in := testutil.NoiseInt16(4, 2048)
	want := slices.Clone(in)
	if _, err := e.Apply(want); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := slices.Clone(in)
			if _, err := e.Apply(buf); err != nil {
				errs <- err
				return
			}
			if !slices.Equal(buf, want) {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}
