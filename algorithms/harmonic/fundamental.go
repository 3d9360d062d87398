package harmonic

// FundamentalEstimator estimates the fundamental frequency (F0) of a signal
// by brute-force normalized autocorrelation over the candidate period range.
// The search is bounded to [minF0, maxF0] by design; non-pitched material
// will still report the best-scoring period in that range, so callers should
// weigh the result against harmonicity.
type FundamentalEstimator struct {
	sampleRate int
	minF0      float64
	maxF0      float64
}

// NewFundamentalEstimator creates an F0 estimator for the given search range
func NewFundamentalEstimator(sampleRate int, minF0, maxF0 float64) *FundamentalEstimator {
	return &FundamentalEstimator{
		sampleRate: sampleRate,
		minF0:      minF0,
		maxF0:      maxF0,
	}
}

// Estimate returns the estimated fundamental in Hz, or 0 when no candidate
// period correlates positively (e.g. silence)
func (fe *FundamentalEstimator) Estimate(signal []float64) float64 {
	if len(signal) < 2 || fe.minF0 <= 0 || fe.maxF0 <= fe.minF0 {
		return 0.0
	}

	minPeriod := int(float64(fe.sampleRate) / fe.maxF0)
	maxPeriod := int(float64(fe.sampleRate) / fe.minF0)

	if minPeriod < 1 {
		minPeriod = 1
	}
	if maxPeriod >= len(signal) {
		maxPeriod = len(signal) - 1
	}
	if maxPeriod < minPeriod {
		return 0.0
	}

	scores := make([]float64, maxPeriod+1)
	bestScore := 0.0

	for period := minPeriod; period <= maxPeriod; period++ {
		score := 0.0
		count := len(signal) - period
		for i := 0; i < count; i++ {
			score += signal[i] * signal[i+period]
		}
		score /= float64(count)
		scores[period] = score

		if score > bestScore {
			bestScore = score
		}
	}

	if bestScore <= 0 {
		return 0.0
	}

	// An integer multiple of the true period can align fractionally better
	// than the period itself, which would report a subharmonic. Take the
	// shortest period whose correlation is within tolerance of the best.
	const peakTolerance = 0.999
	for period := minPeriod; period <= maxPeriod; period++ {
		if scores[period] >= peakTolerance*bestScore {
			return float64(fe.sampleRate) / float64(period)
		}
	}

	return 0.0
}
