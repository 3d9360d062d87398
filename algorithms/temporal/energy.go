package temporal

import (
	"math"
)

// loudnessFloorDB is reported for silent material instead of -Inf
const loudnessFloorDB = -100.0

// Energy computes whole-buffer energy measures
type Energy struct{}

// NewEnergy creates a new energy calculator
func NewEnergy() *Energy {
	return &Energy{}
}

// Compute returns the mean of squared samples (unit energy per sample)
func (e *Energy) Compute(signal []float64) float64 {
	if len(signal) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	for _, s := range signal {
		sumSquares += s * s
	}

	return sumSquares / float64(len(signal))
}

// RMS returns the root mean square of the signal
func (e *Energy) RMS(signal []float64) float64 {
	return math.Sqrt(e.Compute(signal))
}

// LoudnessDB returns a simplified loudness measure derived from RMS,
// 20*log10(rms) clamped to a -100 dB floor. This is not a true LUFS
// measurement.
func (e *Energy) LoudnessDB(signal []float64) float64 {
	rms := e.RMS(signal)
	if rms <= 0 {
		return loudnessFloorDB
	}

	db := 20.0 * math.Log10(rms)
	if db < loudnessFloorDB {
		return loudnessFloorDB
	}
	return db
}
