package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/internal/testutil"
)

func TestAnalyzeExactBinSine(t *testing.T) {
	// 32 Hz at 1024 Hz over 1024 samples lands exactly on bin 32.
	a := NewAnalyzer(core.WithSampleRate(1024))
	sig := testutil.Sine(32, 1024, 1, 1024)

	sp, err := a.Analyze(sig)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if sp.Len() != 513 {
		t.Fatalf("bins = %d, want 513", sp.Len())
	}

	freq, mag := sp.Peak()
	if freq != 32 {
		t.Fatalf("peak at %v Hz, want 32", freq)
	}
	// A unit sine on an exact bin carries N/2 in the half-spectrum bin.
	if math.Abs(mag-512) > 1e-6 {
		t.Fatalf("peak magnitude %v, want 512", mag)
	}
}

func TestAnalyzeFullWindowBinMapping(t *testing.T) {
	// The 2000-sample display window is transformed at its own length,
	// giving 0.5 Hz bins; a 10 Hz tone spans whole periods and lands
	// exactly on bin 20 with no leakage.
	a := NewAnalyzer(core.WithSampleRate(1000))
	sig := testutil.Sine(10, 1000, 1, 2000)

	sp, err := a.Analyze(sig)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if sp.Len() != 1001 {
		t.Fatalf("bins = %d, want 1001", sp.Len())
	}
	if bw := sp.BinWidth(); math.Abs(bw-0.5) > 1e-12 {
		t.Fatalf("bin width %v, want 0.5", bw)
	}

	freq, mag := sp.Peak()
	if freq != 10 {
		t.Fatalf("peak at %v Hz, want exactly 10", freq)
	}
	if math.Abs(mag-1000) > 1e-6 {
		t.Fatalf("peak magnitude %v, want 1000", mag)
	}
}

func TestAnalyzeFreqAxis(t *testing.T) {
	a := NewAnalyzer(core.WithSampleRate(1000))
	sp, err := a.Analyze(make([]float64, 256))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if sp.Freqs[0] != 0 {
		t.Fatalf("first bin at %v Hz, want 0", sp.Freqs[0])
	}
	if last := sp.Freqs[len(sp.Freqs)-1]; math.Abs(last-500) > 1e-9 {
		t.Fatalf("last bin at %v Hz, want Nyquist 500", last)
	}
	for i := 1; i < len(sp.Freqs); i++ {
		if sp.Freqs[i] <= sp.Freqs[i-1] {
			t.Fatalf("frequency axis not strictly ascending at %d", i)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer(core.WithSampleRate(1000))
	sig := testutil.Sine(12.5, 1000, 1.5, 500)

	s1, err := a.Analyze(sig)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	s2, err := a.Analyze(sig)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	testutil.RequireSliceIdentical(t, s1.Mags, s2.Mags)
	testutil.RequireSliceIdentical(t, s1.Freqs, s2.Freqs)
}

func TestAnalyzeDoesNotModifyInput(t *testing.T) {
	a := NewAnalyzer(core.WithSampleRate(1000))
	sig := testutil.Sine(10, 1000, 1, 300)
	orig := make([]float64, len(sig))
	copy(orig, sig)

	if _, err := a.Analyze(sig); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	testutil.RequireSliceIdentical(t, sig, orig)
}

func TestAnalyzeErrors(t *testing.T) {
	a := NewAnalyzer(core.WithSampleRate(1000))

	if _, err := a.Analyze(nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("empty input: error = %v, want ErrInvalidParameter", err)
	}
	if _, err := a.Analyze([]float64{1, math.NaN(), 0}); !errors.Is(err, core.ErrNumericFault) {
		t.Fatalf("NaN input: error = %v, want ErrNumericFault", err)
	}
	if _, err := a.Analyze([]float64{1, math.Inf(1), 0}); !errors.Is(err, core.ErrNumericFault) {
		t.Fatalf("Inf input: error = %v, want ErrNumericFault", err)
	}
}
