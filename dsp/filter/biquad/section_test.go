package biquad

import (
	"testing"
)

func TestSectionPassthrough(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})
	for _, x := range []float64{1, -0.5, 0.25, 0} {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v)=%v, want identity", x, y)
		}
	}
}

func TestSectionProcessBlockMatchesPerSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.25}
	in := []float64{1, 0, -1, 0.5, 0.25, -0.75, 0, 1}

	perSample := NewSection(c)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = perSample.ProcessSample(x)
	}

	block := NewSection(c)
	got := make([]float64, len(in))
	copy(got, in)
	block.ProcessBlock(got)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: block=%v, per-sample=%v", i, got[i], want[i])
		}
	}
	if block.State() != perSample.State() {
		t.Fatalf("state mismatch: %v != %v", block.State(), perSample.State())
	}
}

func TestSectionProcessBlockTo(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.5, A1: -0.1}
	src := []float64{1, 2, 3, 4}

	inPlace := NewSection(c)
	want := make([]float64, len(src))
	copy(want, src)
	inPlace.ProcessBlock(want)

	toDst := NewSection(c)
	got := make([]float64, len(src))
	toDst.ProcessBlockTo(got, src)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSectionResetClearsState(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, B1: 1, A1: -0.9})
	s.ProcessSample(1)
	if s.State() == [2]float64{} {
		t.Fatal("expected non-zero state after processing")
	}

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state after Reset = %v, want zeros", s.State())
	}
}

func TestSectionStateRoundTrip(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.3, B1: 0.1, A1: -0.4})
	s.ProcessSample(1)
	s.ProcessSample(-1)
	saved := s.State()

	y1 := s.ProcessSample(0.5)
	s.SetState(saved)
	y2 := s.ProcessSample(0.5)
	if y1 != y2 {
		t.Fatalf("restored state produced %v, want %v", y2, y1)
	}
}
