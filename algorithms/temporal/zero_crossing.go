package temporal

// ZeroCrossingRate calculates the zero crossing rate of a signal.
// High rates indicate noisy or high-frequency content, low rates tonal content.
type ZeroCrossingRate struct {
	sampleRate int
}

// NewZeroCrossingRate creates a new zero crossing rate calculator
func NewZeroCrossingRate(sampleRate int) *ZeroCrossingRate {
	return &ZeroCrossingRate{
		sampleRate: sampleRate,
	}
}

// Compute counts sign changes between consecutive samples over the whole
// buffer and returns the rate in crossings per second (Hz)
func (zcr *ZeroCrossingRate) Compute(signal []float64) float64 {
	if len(signal) < 2 || zcr.sampleRate <= 0 {
		return 0.0
	}

	crossings := 0
	for i := 1; i < len(signal); i++ {
		if (signal[i-1] >= 0 && signal[i] < 0) || (signal[i-1] < 0 && signal[i] >= 0) {
			crossings++
		}
	}

	duration := float64(len(signal)) / float64(zcr.sampleRate)
	return float64(crossings) / duration
}
