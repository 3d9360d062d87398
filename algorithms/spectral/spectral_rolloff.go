package spectral

// SpectralRolloff computes the spectral rolloff frequency
type SpectralRolloff struct {
	sampleRate int
	freqBins   []float64 // Pre-calculated frequency bins
}

// NewSpectralRolloff creates a new spectral rolloff calculator
func NewSpectralRolloff(sampleRate int) *SpectralRolloff {
	return &SpectralRolloff{
		sampleRate: sampleRate,
	}
}

// Compute returns the lowest frequency below which the cumulative squared
// magnitude reaches threshold (typically 0.85) of the total. Falls back to
// the Nyquist frequency when the threshold is never reached, including the
// all-zero spectrum.
func (sr *SpectralRolloff) Compute(spectrum []float64, threshold float64) float64 {
	nyquist := float64(sr.sampleRate) / 2.0

	if len(spectrum) == 0 {
		return nyquist
	}

	if len(sr.freqBins) != len(spectrum) {
		sr.freqBins = FrequencyBins(len(spectrum), sr.sampleRate)
	}

	totalEnergy := 0.0
	for _, mag := range spectrum {
		totalEnergy += mag * mag
	}

	if totalEnergy == 0 {
		return nyquist
	}

	targetEnergy := threshold * totalEnergy
	cumulativeEnergy := 0.0

	for i, mag := range spectrum {
		cumulativeEnergy += mag * mag
		if cumulativeEnergy >= targetEnergy {
			return sr.freqBins[i]
		}
	}

	return nyquist
}
