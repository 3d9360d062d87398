package spectral

import (
	"math"
	"testing"
)

func TestDescriptorsOnSilentSpectrum(t *testing.T) {
	const sr = 44100
	spectrum := make([]float64, 1024)

	if got := NewSpectralCentroid(sr).Compute(spectrum); got != 0 {
		t.Fatalf("centroid of silence = %f, want 0", got)
	}
	if got := NewSpectralBandwidth(sr).Compute(spectrum, 0); got != 0 {
		t.Fatalf("bandwidth of silence = %f, want 0", got)
	}
	if got := NewSpectralFlatness().Compute(spectrum); got != 0 {
		t.Fatalf("flatness of silence = %f, want 0", got)
	}
	if got := NewSpectralRolloff(sr).Compute(spectrum, 0.85); got != sr/2.0 {
		t.Fatalf("rolloff of silence = %f, want Nyquist %f", got, sr/2.0)
	}
}

func TestCentroidSingleBin(t *testing.T) {
	const sr = 44100
	spectrum := make([]float64, 1024)
	spectrum[100] = 1.0

	want := FrequencyForBin(100, 1024, sr)
	if got := NewSpectralCentroid(sr).Compute(spectrum); math.Abs(got-want) > 1e-9 {
		t.Fatalf("centroid = %f, want %f", got, want)
	}
	if got := NewSpectralBandwidth(sr).Compute(spectrum, want); got != 0 {
		t.Fatalf("bandwidth of single bin = %f, want 0", got)
	}
}

func TestCentroidTwoEqualBins(t *testing.T) {
	const sr = 44100
	spectrum := make([]float64, 1024)
	spectrum[100] = 1.0
	spectrum[200] = 1.0

	want := (FrequencyForBin(100, 1024, sr) + FrequencyForBin(200, 1024, sr)) / 2.0
	if got := NewSpectralCentroid(sr).Compute(spectrum); math.Abs(got-want) > 1e-9 {
		t.Fatalf("centroid = %f, want midpoint %f", got, want)
	}
}

func TestCentroidAndRolloffTrackBinCenteredTone(t *testing.T) {
	const (
		sr   = 44100
		n    = 2048
		freq = 64.0 * sr / n
	)
	spectrum := NewSpectrumAnalyzer().Compute(makeSineFrame(sr, freq, n, 1.0))
	binWidth := float64(sr) / n

	if got := NewSpectralCentroid(sr).Compute(spectrum); math.Abs(got-freq) > binWidth {
		t.Fatalf("centroid = %f, want within one bin of %f", got, freq)
	}
	if got := NewSpectralRolloff(sr).Compute(spectrum, 0.85); math.Abs(got-freq) > binWidth {
		t.Fatalf("rolloff = %f, want within one bin of %f", got, freq)
	}
}

func TestFlatnessSeparatesToneFromNoise(t *testing.T) {
	const (
		sr = 44100
		n  = 2048
	)
	sf := NewSpectralFlatness()
	sa := NewSpectrumAnalyzer()

	// 440 Hz is not bin-centered, so leakage populates every bin; the
	// spectrum is still strongly peaked and should read as tonal
	tone := sf.Compute(sa.Compute(makeSineFrame(sr, 440, n, 0.5)))
	noise := sf.Compute(sa.Compute(randomSignal(n, 7)))

	if tone >= 0.3 {
		t.Fatalf("tone flatness = %f, want < 0.3", tone)
	}
	if noise <= 0.5 {
		t.Fatalf("noise flatness = %f, want > 0.5", noise)
	}
}

func TestRolloffAccumulatesEnergy(t *testing.T) {
	const sr = 44100
	spectrum := make([]float64, 1024)
	// Equal energy in four bins; the 85th percentile falls on the last
	for _, k := range []int{10, 20, 30, 40} {
		spectrum[k] = 1.0
	}

	want := FrequencyForBin(40, 1024, sr)
	if got := NewSpectralRolloff(sr).Compute(spectrum, 0.85); math.Abs(got-want) > 1e-9 {
		t.Fatalf("rolloff = %f, want %f", got, want)
	}
}
