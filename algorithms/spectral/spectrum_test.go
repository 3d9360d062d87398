package spectral

import (
	"math"
	"math/rand"
	"testing"
)

func TestComputeMatchesDirectDFT(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	frame := randomSignal(64, 3)

	fast := sa.Compute(frame)
	direct := sa.ComputeDirect(frame)

	if len(fast) != len(direct) {
		t.Fatalf("bin count mismatch: fft %d, direct %d", len(fast), len(direct))
	}
	for k := range fast {
		if math.Abs(fast[k]-direct[k]) > 1e-6 {
			t.Fatalf("bin %d: fft %.12f, direct %.12f", k, fast[k], direct[k])
		}
	}
}

func TestComputeBinCount(t *testing.T) {
	sa := NewSpectrumAnalyzer()

	if got := len(sa.Compute(randomSignal(2048, 1))); got != 1024 {
		t.Fatalf("2048-sample frame: got %d bins, want 1024", got)
	}
	if got := len(sa.Compute(randomSignal(255, 1))); got != 127 {
		t.Fatalf("255-sample frame: got %d bins, want 127", got)
	}
}

func TestComputeEmptyFrame(t *testing.T) {
	sa := NewSpectrumAnalyzer()
	if got := sa.Compute(nil); got != nil {
		t.Fatalf("expected nil spectrum for empty frame, got %v", got)
	}
	if got := sa.ComputeDirect(nil); got != nil {
		t.Fatalf("expected nil direct spectrum for empty frame, got %v", got)
	}
}

func TestComputeBinCenteredTonePeak(t *testing.T) {
	const (
		sr   = 44100
		n    = 2048
		bin  = 64
		freq = float64(bin) * sr / n
	)
	frame := makeSineFrame(sr, freq, n, 1.0)

	spectrum := NewSpectrumAnalyzer().Compute(frame)

	peak := 0
	for k, mag := range spectrum {
		if mag > spectrum[peak] {
			peak = k
		}
	}
	if peak != bin {
		t.Fatalf("peak at bin %d, want %d", peak, bin)
	}

	// An unwindowed bin-centered tone concentrates amplitude*N/2 in its bin
	if math.Abs(spectrum[bin]-n/2.0) > 1e-6*n {
		t.Fatalf("peak magnitude %.3f, want about %.1f", spectrum[bin], n/2.0)
	}
}

func TestFrequencyForBin(t *testing.T) {
	// 1024 bins from a 2048-sample frame at 44100 Hz: 21.533 Hz per bin
	if got := FrequencyForBin(0, 1024, 44100); got != 0 {
		t.Fatalf("bin 0: got %f, want 0", got)
	}
	want := 64.0 * 44100.0 / 2048.0
	if got := FrequencyForBin(64, 1024, 44100); math.Abs(got-want) > 1e-9 {
		t.Fatalf("bin 64: got %f, want %f", got, want)
	}

	bins := FrequencyBins(1024, 44100)
	if len(bins) != 1024 {
		t.Fatalf("got %d bins, want 1024", len(bins))
	}
	if math.Abs(bins[1023]-FrequencyForBin(1023, 1024, 44100)) > 1e-9 {
		t.Fatalf("last bin mismatch: %f", bins[1023])
	}
}

func makeSineFrame(sr int, freq float64, n int, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
	}
	return out
}

func randomSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}
