package splitter_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/splitter"
)

func ExampleSplitter_Equalize() {
	s, err := splitter.New(bank.Uniform(2, 8000), splitter.WithFrameSize(64))
	if err != nil {
		panic(err)
	}

	samples := []int16{1000, -1000, 500, -500}

	if _, err := s.Equalize(samples, []int32{1000, 1000}); err != nil {
		panic(err)
	}
	fmt.Println(samples)

	if _, err := s.Equalize(samples, []int32{2000, 2000}); err != nil {
		panic(err)
	}
	fmt.Println(samples)

	// Output:
	// [1000 -1000 500 -500]
	// [2000 -2000 1000 -1000]
}

func ExampleSplitter_Split() {
	s, err := splitter.New(bank.Uniform(4, 8000), splitter.WithFrameSize(64))
	if err != nil {
		panic(err)
	}

	bands, err := s.Split([]float64{1, 0, -1, 0})
	if err != nil {
		panic(err)
	}

	sum := 0.0
	for _, band := range bands {
		sum += band[0]
	}
	fmt.Printf("%d bands, band sum at t=0: %.3f\n", len(bands), sum)

	// Output:
	// 4 bands, band sum at t=0: 1.000
}
