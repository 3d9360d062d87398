package spectral

import (
	"fmt"
	"math"
)

const logEpsilon = 1e-10

// MFCC computes Mel-Frequency Cepstral Coefficients from a magnitude spectrum.
// This is a deliberately plain pipeline (mel bank -> log -> DCT-II, no
// liftering), intended as a compact spectral-shape descriptor rather than a
// production speech front end.
type MFCC struct {
	numCoefficients int
	numMelFilters   int
	sampleRate      int
	melScale        *MelScale
}

// NewMFCC creates a new MFCC computer.
// Non-positive counts fall back to the defaults of 13 coefficients and 26 filters.
func NewMFCC(sampleRate, numCoefficients, numMelFilters int) *MFCC {
	if numCoefficients <= 0 {
		numCoefficients = 13
	}
	if numMelFilters <= 0 {
		numMelFilters = 26
	}

	return &MFCC{
		numCoefficients: numCoefficients,
		numMelFilters:   numMelFilters,
		sampleRate:      sampleRate,
		melScale:        NewMelScale(),
	}
}

// Compute calculates MFCC coefficients from a magnitude spectrum.
// The filter bank is rebuilt per call from the spectrum's bin count, so one
// computer handles spectra of varying size. Output length always equals the
// configured coefficient count.
func (m *MFCC) Compute(spectrum []float64) ([]float64, error) {
	if len(spectrum) == 0 {
		return nil, fmt.Errorf("empty magnitude spectrum")
	}

	filterBank := m.melScale.CreateFilterBank(m.numMelFilters, len(spectrum), m.sampleRate)
	if len(filterBank) == 0 {
		return nil, fmt.Errorf("failed to create mel filter bank for %d bins", len(spectrum))
	}

	melSpectrum := m.melScale.ApplyFilterBank(spectrum, filterBank)

	logMel := make([]float64, len(melSpectrum))
	for i, mel := range melSpectrum {
		logMel[i] = math.Log(mel + logEpsilon)
	}

	return m.applyDCT(logMel), nil
}

// applyDCT applies the type-II discrete cosine transform and keeps the first
// numCoefficients outputs
func (m *MFCC) applyDCT(logMel []float64) []float64 {
	coeffs := make([]float64, m.numCoefficients)

	for k := range coeffs {
		sum := 0.0
		for n, v := range logMel {
			sum += v * math.Cos(math.Pi*float64(k)*(2.0*float64(n)+1.0)/(2.0*float64(len(logMel))))
		}
		coeffs[k] = sum
	}

	return coeffs
}

// NumCoefficients returns the configured coefficient count
func (m *MFCC) NumCoefficients() int {
	return m.numCoefficients
}
