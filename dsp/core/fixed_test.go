package core

import (
	"math"
	"testing"
)

func TestMillisToLinear(t *testing.T) {
	tests := []struct {
		name string
		g    int32
		want float64
	}{
		{name: "unity", g: 1000, want: 1},
		{name: "half", g: 500, want: 0.5},
		{name: "double", g: 2000, want: 2},
		{name: "mute", g: 0, want: 0},
		{name: "invert", g: -1000, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MillisToLinear(tt.g); got != tt.want {
				t.Fatalf("MillisToLinear(%d) = %v, want %v", tt.g, got, tt.want)
			}
		})
	}
}

func TestLinearToMillisSaturates(t *testing.T) {
	if got := LinearToMillis(1e12); got != math.MaxInt32 {
		t.Fatalf("LinearToMillis(1e12) = %d, want %d", got, int32(math.MaxInt32))
	}
	if got := LinearToMillis(-1e12); got != math.MinInt32 {
		t.Fatalf("LinearToMillis(-1e12) = %d, want %d", got, int32(math.MinInt32))
	}
	if got := LinearToMillis(math.NaN()); got != 0 {
		t.Fatalf("LinearToMillis(NaN) = %d, want 0", got)
	}
}

func TestMillisDBRoundTrip(t *testing.T) {
	// 500 and 2000 are the nominal -6 dB / +6 dB steps.
	if db := MillisToDB(500); math.Abs(db+6.0206) > 1e-4 {
		t.Fatalf("MillisToDB(500) = %v, want ~-6.02", db)
	}
	if db := MillisToDB(2000); math.Abs(db-6.0206) > 1e-4 {
		t.Fatalf("MillisToDB(2000) = %v, want ~6.02", db)
	}
	if !math.IsInf(MillisToDB(0), -1) {
		t.Fatal("expected -Inf for mute gain")
	}
	for _, g := range []int32{1, 250, 1000, 1414, 4000} {
		if got := DBToMillis(MillisToDB(g)); got != g {
			t.Fatalf("DBToMillis(MillisToDB(%d)) = %d", g, got)
		}
	}
}

func TestQuantizeInt16(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		want    int16
		clipped bool
	}{
		{name: "exact", x: 100, want: 100},
		{name: "half up", x: 16383.5, want: 16384},
		{name: "half down negative", x: -16383.5, want: -16384},
		{name: "below half", x: 2.49, want: 2},
		{name: "max", x: 32767, want: 32767},
		{name: "rounds to max", x: 32767.4, want: 32767},
		{name: "over", x: 65534, want: 32767, clipped: true},
		{name: "min", x: -32768, want: -32768},
		{name: "under", x: -40000, want: -32768, clipped: true},
		{name: "nan", x: math.NaN(), want: 0, clipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clipped := QuantizeInt16(tt.x)
			if got != tt.want || clipped != tt.clipped {
				t.Fatalf("QuantizeInt16(%v) = (%d, %v), want (%d, %v)",
					tt.x, got, clipped, tt.want, tt.clipped)
			}
		})
	}
}

func TestWiden(t *testing.T) {
	dst := make([]float64, 2)

	n := Widen(dst, []int16{-3, 7, 9})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if dst[0] != -3 || dst[1] != 7 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestUnitConversions(t *testing.T) {
	if got := Int16ToUnit(-32768); got != -1 {
		t.Fatalf("Int16ToUnit(-32768) = %v, want -1", got)
	}
	if got := UnitToInt16(1); got != 32767 {
		t.Fatalf("UnitToInt16(1) = %d, want 32767", got)
	}
	if got := UnitToInt16(-1); got != -32768 {
		t.Fatalf("UnitToInt16(-1) = %d, want -32768", got)
	}
	for _, v := range []int16{-32768, -1, 0, 1, 12345, 32767} {
		if got := UnitToInt16(Int16ToUnit(v)); got != v {
			t.Fatalf("UnitToInt16(Int16ToUnit(%d)) = %d", v, got)
		}
	}
}
