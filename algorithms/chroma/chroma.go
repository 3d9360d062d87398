package chroma

import (
	"math"

	"github.com/lagooneration/noaudio/algorithms/spectral"
)

// NumPitchClasses is the number of chroma bins (C, C#, D, ..., B)
const NumPitchClasses = 12

// Extractor folds spectral magnitude into 12 pitch classes using a MIDI-style
// logarithmic frequency mapping. Only the musical range [minFreq, maxFreq] is
// considered so low-frequency rumble and high-frequency noise do not distort
// the distribution.
type Extractor struct {
	sampleRate int
	tuningFreq float64 // A4 reference frequency
	minFreq    float64
	maxFreq    float64
}

// NewExtractor creates a chroma extractor with standard A4=440 Hz tuning over
// the 80-8000 Hz band
func NewExtractor(sampleRate int) *Extractor {
	return &Extractor{
		sampleRate: sampleRate,
		tuningFreq: 440.0,
		minFreq:    80.0,
		maxFreq:    8000.0,
	}
}

// NewExtractorWithRange creates a chroma extractor with a custom tuning
// frequency and band
func NewExtractorWithRange(sampleRate int, tuningFreq, minFreq, maxFreq float64) *Extractor {
	return &Extractor{
		sampleRate: sampleRate,
		tuningFreq: tuningFreq,
		minFreq:    minFreq,
		maxFreq:    maxFreq,
	}
}

// Compute accumulates magnitude per pitch class and normalizes the 12-vector
// to sum 1. The vector stays all-zero when the band holds no energy.
func (e *Extractor) Compute(spectrum []float64) []float64 {
	chromaVector := make([]float64, NumPitchClasses)

	for k, mag := range spectrum {
		freq := spectral.FrequencyForBin(k, len(spectrum), e.sampleRate)
		if freq < e.minFreq || freq > e.maxFreq {
			continue
		}

		pitchClass := e.pitchClassForFrequency(freq)
		chromaVector[pitchClass] += mag
	}

	total := 0.0
	for _, v := range chromaVector {
		total += v
	}

	if total > 0 {
		for i := range chromaVector {
			chromaVector[i] /= total
		}
	}

	return chromaVector
}

// pitchClassForFrequency maps a frequency to a pitch class via the MIDI note
// number 12*log2(f/tuning) + 69
func (e *Extractor) pitchClassForFrequency(freq float64) int {
	midiNote := 12.0*math.Log2(freq/e.tuningFreq) + 69.0
	pitchClass := int(math.Round(midiNote)) % NumPitchClasses
	if pitchClass < 0 {
		pitchClass += NumPitchClasses
	}
	return pitchClass
}
