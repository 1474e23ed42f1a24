package biquad

import "testing"

func testCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1},
		{B0: 0.5, B1: 0.1, B2: 0.05, A1: -0.2, A2: 0.05},
	}
}

func TestChainOrderAndSections(t *testing.T) {
	c := NewChain(testCoeffs())
	if c.NumSections() != 2 {
		t.Fatalf("NumSections=%d, want 2", c.NumSections())
	}
	if c.Order() != 4 {
		t.Fatalf("Order=%d, want 4", c.Order())
	}
}

func TestChainMatchesManualCascade(t *testing.T) {
	coeffs := testCoeffs()
	in := []float64{1, -0.5, 0.25, 0.75, -1, 0.5, 0, 0.1}

	chain := NewChain(coeffs)
	got := make([]float64, len(in))
	copy(got, in)
	chain.ProcessBlock(got)

	s0 := NewSection(coeffs[0])
	s1 := NewSection(coeffs[1])
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = s1.ProcessSample(s0.ProcessSample(x))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: chain=%v, manual=%v", i, got[i], want[i])
		}
	}
}

func TestChainProcessSampleMatchesBlock(t *testing.T) {
	coeffs := testCoeffs()
	in := []float64{0.5, 1, -1, 0.25}

	block := NewChain(coeffs)
	got := make([]float64, len(in))
	copy(got, in)
	block.ProcessBlock(got)

	perSample := NewChain(coeffs)
	for i, x := range in {
		if y := perSample.ProcessSample(x); y != got[i] {
			t.Fatalf("index %d: per-sample=%v, block=%v", i, y, got[i])
		}
	}
}

func TestChainResetGivesZeroState(t *testing.T) {
	c := NewChain(testCoeffs())
	c.ProcessSample(1)
	c.ProcessSample(-1)
	c.Reset()

	for i, st := range c.State() {
		if st != [2]float64{} {
			t.Fatalf("section %d state after Reset = %v, want zeros", i, st)
		}
	}

	// A reset chain behaves like a fresh one.
	fresh := NewChain(testCoeffs())
	for _, x := range []float64{1, 0.5, -0.25} {
		if a, b := c.ProcessSample(x), fresh.ProcessSample(x); a != b {
			t.Fatalf("reset chain diverged: %v != %v", a, b)
		}
	}
}

func TestChainStateRoundTrip(t *testing.T) {
	c := NewChain(testCoeffs())
	c.ProcessSample(1)
	saved := c.State()

	y1 := c.ProcessSample(0.5)
	c.SetState(saved)
	y2 := c.ProcessSample(0.5)
	if y1 != y2 {
		t.Fatalf("restored state produced %v, want %v", y2, y1)
	}
}
