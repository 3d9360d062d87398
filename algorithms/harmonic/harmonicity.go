package harmonic

import (
	"math"

	"github.com/lagooneration/noaudio/algorithms/spectral"
)

// HarmonicityAnalyzer scores how much of a spectrum's energy sits on integer
// multiples of a fundamental frequency
type HarmonicityAnalyzer struct {
	sampleRate  int
	toleranceHz float64
}

// NewHarmonicityAnalyzer creates an analyzer with the given Hz tolerance
// around each harmonic
func NewHarmonicityAnalyzer(sampleRate int, toleranceHz float64) *HarmonicityAnalyzer {
	return &HarmonicityAnalyzer{
		sampleRate:  sampleRate,
		toleranceHz: toleranceHz,
	}
}

// Compute returns harmonicity and inharmonicity for a magnitude spectrum and
// an estimated fundamental. Harmonicity is the fraction of total spectral
// energy within the tolerance of an integer harmonic; inharmonicity is its
// strict complement, so the two always sum to 1.
func (ha *HarmonicityAnalyzer) Compute(spectrum []float64, fundamental float64) (harmonicity, inharmonicity float64) {
	if fundamental <= 0 || len(spectrum) == 0 {
		return 0.0, 1.0
	}

	totalEnergy := 0.0
	harmonicEnergy := 0.0

	for k, mag := range spectrum {
		energy := mag * mag
		totalEnergy += energy

		freq := spectral.FrequencyForBin(k, len(spectrum), ha.sampleRate)
		if freq <= 0 {
			continue
		}

		harmonicNumber := math.Round(freq / fundamental)
		if harmonicNumber < 1 {
			continue
		}

		if math.Abs(freq-harmonicNumber*fundamental) <= ha.toleranceHz {
			harmonicEnergy += energy
		}
	}

	if totalEnergy == 0 {
		return 0.0, 1.0
	}

	harmonicity = harmonicEnergy / totalEnergy
	return harmonicity, 1.0 - harmonicity
}
