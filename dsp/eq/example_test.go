package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func ExampleApply() {
	samples := []int16{100, -100, 32767}

	res, err := eq.Apply(samples, []int32{500})
	if err != nil {
		panic(err)
	}

	fmt.Println(samples, res.Samples)

	// Output:
	// [50 -50 16384] 3
}

func ExampleApply_stereo() {
	// Two round-robin bands over interleaved L/R act as per-channel gains.
	frames := []int16{1000, 1000, -2000, -2000}

	if _, err := eq.Apply(frames, []int32{eq.Unity, 250}); err != nil {
		panic(err)
	}

	fmt.Println(frames)

	// Output:
	// [1000 250 -2000 -500]
}

func ExampleNew() {
	e, err := eq.New([]int32{2000}, eq.WithClamping(true))
	if err != nil {
		panic(err)
	}

	samples := []int16{20000, -100}
	res, _ := e.Apply(samples)

	fmt.Println(samples, res.Clamped)

	// Output:
	// [32767 -200] 1
}
