package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeMatchesCmplxAbs(t *testing.T) {
	in := []complex128{
		complex(3, 4),
		complex(-1, 1),
		complex(0, 0),
		complex(0.5, -2.5),
		complex(-7, 0),
	}

	got := Magnitude(in)
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i, c := range in {
		want := cmplx.Abs(c)
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("index %d: %v, want %v", i, got[i], want)
		}
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, 0, -5}
	im := []float64{4, 1, 12}
	dst := make([]float64, 3)

	MagnitudeFromParts(dst, re, im)

	want := []float64{5, 1, 13}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMagnitudeReusedScratch(t *testing.T) {
	// Exercise the pooled scratch path with mismatched sizes back to back.
	a := Magnitude(make([]complex128, 1024))
	b := Magnitude([]complex128{complex(6, 8)})
	if len(a) != 1024 || len(b) != 1 {
		t.Fatalf("lengths %d, %d", len(a), len(b))
	}
	if math.Abs(b[0]-10) > 1e-12 {
		t.Fatalf("b[0]=%v, want 10", b[0])
	}
}
