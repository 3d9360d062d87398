package spectral

import (
	"math"
)

// SpectralBandwidth computes the magnitude-weighted spread around the centroid
type SpectralBandwidth struct {
	sampleRate int
	freqBins   []float64 // Pre-calculated frequency bins
}

// NewSpectralBandwidth creates a new spectral bandwidth calculator
func NewSpectralBandwidth(sampleRate int) *SpectralBandwidth {
	return &SpectralBandwidth{
		sampleRate: sampleRate,
	}
}

// Compute calculates spectral bandwidth in Hz for a spectrum given its centroid.
// Returns 0 for a degenerate (silent) spectrum.
func (sb *SpectralBandwidth) Compute(spectrum []float64, centroid float64) float64 {
	if len(spectrum) == 0 {
		return 0.0
	}

	if len(sb.freqBins) != len(spectrum) {
		sb.freqBins = FrequencyBins(len(spectrum), sb.sampleRate)
	}

	numerator := 0.0
	denominator := 0.0

	for i, mag := range spectrum {
		diff := sb.freqBins[i] - centroid
		numerator += diff * diff * mag
		denominator += mag
	}

	if denominator == 0 {
		return 0
	}

	return math.Sqrt(numerator / denominator)
}
