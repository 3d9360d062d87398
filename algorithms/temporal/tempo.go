package temporal

import (
	"github.com/lagooneration/noaudio/algorithms/common"
)

// TempoEstimator estimates tempo in BPM from the periodicity of an onset
// strength envelope. Short-time energy is computed over the signal, the
// half-wave rectified energy flux forms the onset envelope, and the envelope
// autocorrelation is searched over the configured BPM range.
type TempoEstimator struct {
	sampleRate int
	frameSize  int
	hopSize    int
	minBPM     float64
	maxBPM     float64
}

// NewTempoEstimator creates a tempo estimator with a 60-180 BPM search range
func NewTempoEstimator(sampleRate int) *TempoEstimator {
	return &TempoEstimator{
		sampleRate: sampleRate,
		frameSize:  1024,
		hopSize:    512,
		minBPM:     60.0,
		maxBPM:     180.0,
	}
}

// Estimate returns the estimated tempo in BPM, or 0 when the signal is too
// short to expose a beat period
func (te *TempoEstimator) Estimate(signal []float64) float64 {
	envelope := te.onsetEnvelope(signal)
	if len(envelope) == 0 {
		return 0.0
	}

	framesPerSecond := float64(te.sampleRate) / float64(te.hopSize)
	minLag := int(60.0 * framesPerSecond / te.maxBPM)
	maxLag := int(60.0 * framesPerSecond / te.minBPM)

	if minLag < 1 {
		minLag = 1
	}
	// Need at least two beat periods worth of envelope
	if maxLag >= len(envelope)/2 {
		maxLag = len(envelope)/2 - 1
	}
	if maxLag < minLag {
		return 0.0
	}

	bestLag := 0
	bestScore := 0.0

	for lag := minLag; lag <= maxLag; lag++ {
		score := 0.0
		count := len(envelope) - lag
		for i := 0; i < count; i++ {
			score += envelope[i] * envelope[i+lag]
		}
		score /= float64(count)

		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}

	if bestLag == 0 || bestScore <= 0 {
		return 0.0
	}

	return 60.0 * framesPerSecond / float64(bestLag)
}

// onsetEnvelope computes the half-wave rectified short-time energy flux,
// with the mean removed so steady energy does not dominate the autocorrelation
func (te *TempoEstimator) onsetEnvelope(signal []float64) []float64 {
	if len(signal) < te.frameSize || te.hopSize <= 0 {
		return nil
	}

	numFrames := (len(signal)-te.frameSize)/te.hopSize + 1
	energies := make([]float64, numFrames)

	for i := range numFrames {
		start := i * te.hopSize
		frame := signal[start : start+te.frameSize]

		sumSquares := 0.0
		for _, s := range frame {
			sumSquares += s * s
		}
		energies[i] = sumSquares / float64(te.frameSize)
	}

	if numFrames < 2 {
		return nil
	}

	flux := make([]float64, numFrames-1)
	for i := 1; i < numFrames; i++ {
		diff := energies[i] - energies[i-1]
		if diff > 0 {
			flux[i-1] = diff
		}
	}

	mean := common.Mean(flux)
	for i := range flux {
		flux[i] -= mean
	}

	return flux
}
