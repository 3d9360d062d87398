package spectral

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// SpectrumAnalyzer computes single-sided magnitude spectra from real-valued frames.
// A frame of N samples yields N/2 bins; bin k corresponds to k*sampleRate/N Hz.
// No window is applied to the frame, so spectral leakage is expected on
// frequencies that do not land on a bin center.
type SpectrumAnalyzer struct {
	// No state needed; spectra are recomputed per frame
}

// NewSpectrumAnalyzer creates a new magnitude spectrum calculator
func NewSpectrumAnalyzer() *SpectrumAnalyzer {
	return &SpectrumAnalyzer{}
}

// Compute computes the magnitude spectrum of a frame using mjibson/go-dsp.
// The FFT is an optimization over the direct transform; ComputeDirect defines
// the reference output and both agree within floating-point tolerance.
func (sa *SpectrumAnalyzer) Compute(frame []float64) []float64 {
	if len(frame) == 0 {
		return nil
	}

	// go-dsp handles all sizes, including non-power-of-2 frames
	bins := fft.FFTReal(frame)

	spectrum := make([]float64, len(frame)/2)
	for k := range spectrum {
		spectrum[k] = math.Hypot(real(bins[k]), imag(bins[k]))
	}

	return spectrum
}

// ComputeDirect computes the magnitude spectrum with the direct O(N^2) discrete
// Fourier sum. Kept as the reference implementation for verifying Compute.
func (sa *SpectrumAnalyzer) ComputeDirect(frame []float64) []float64 {
	if len(frame) == 0 {
		return nil
	}

	n := len(frame)
	spectrum := make([]float64, n/2)

	for k := range spectrum {
		realPart := 0.0
		imagPart := 0.0
		for i, x := range frame {
			angle := -2.0 * math.Pi * float64(k) * float64(i) / float64(n)
			realPart += x * math.Cos(angle)
			imagPart += x * math.Sin(angle)
		}
		spectrum[k] = math.Hypot(realPart, imagPart)
	}

	return spectrum
}

// FrequencyForBin returns the center frequency in Hz of bin k for a spectrum
// with numBins bins derived from a frame sampled at sampleRate
func FrequencyForBin(k, numBins, sampleRate int) float64 {
	if numBins <= 0 {
		return 0.0
	}
	return float64(k) * float64(sampleRate) / float64(2*numBins)
}

// FrequencyBins returns the center frequency of every bin
func FrequencyBins(numBins, sampleRate int) []float64 {
	bins := make([]float64, numBins)
	for k := range bins {
		bins[k] = FrequencyForBin(k, numBins, sampleRate)
	}
	return bins
}
