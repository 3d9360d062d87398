package spectral

import (
	"math"
)

// SpectralFlatness computes spectral flatness (Wiener entropy).
// Values near 1 indicate noise-like content, values near 0 tonal content.
type SpectralFlatness struct {
	minThreshold float64 // Minimum magnitude to count a bin, avoids log(0)
}

// NewSpectralFlatness creates a new spectral flatness calculator
func NewSpectralFlatness() *SpectralFlatness {
	return &SpectralFlatness{
		minThreshold: 1e-10,
	}
}

// Compute calculates flatness as the ratio of geometric to arithmetic mean
// over the non-DC, non-zero bins. Returns 0 when no bin qualifies.
func (sf *SpectralFlatness) Compute(spectrum []float64) float64 {
	if len(spectrum) < 2 {
		return 0.0
	}

	// DC (bin 0) is excluded; it carries offset, not tonal balance
	logSum := 0.0
	linearSum := 0.0
	validCount := 0

	for _, mag := range spectrum[1:] {
		if mag > sf.minThreshold {
			logSum += math.Log(mag)
			linearSum += mag
			validCount++
		}
	}

	if validCount == 0 {
		return 0.0
	}

	geometricMean := math.Exp(logSum / float64(validCount))
	arithmeticMean := linearSum / float64(validCount)

	if arithmeticMean <= sf.minThreshold {
		return 0.0
	}

	flatness := geometricMean / arithmeticMean
	if flatness > 1.0 {
		flatness = 1.0
	}

	return flatness
}
