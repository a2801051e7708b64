package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSamplesEqual fails t unless got and want hold the same int16
// samples. The message names the first differing index and how many differ.
func RequireSamplesEqual(t *testing.T, got, want []int16) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}

	first, diffs := -1, 0
	for i := range got {
		if got[i] != want[i] {
			if first < 0 {
				first = i
			}
			diffs++
		}
	}
	if diffs > 0 {
		t.Fatalf("%d of %d samples differ; first at %d: got %d, want %d",
			diffs, len(got), first, got[first], want[first])
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest |a[i]-b[i]|. Slices of different length
// are an error.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: comparing %d samples with %d", len(a), len(b))
	}

	worst := 0.0
	for i, x := range a {
		worst = math.Max(worst, math.Abs(x-b[i]))
	}
	return worst, nil
}
