package analysis

// SpectralFeatures contains frequency domain descriptors computed from one
// analysis frame's magnitude spectrum
type SpectralFeatures struct {
	Centroid  float64 `json:"centroid"`  // Center of spectral mass (Hz)
	Bandwidth float64 `json:"bandwidth"` // Spread around the centroid (Hz)
	Rolloff   float64 `json:"rolloff"`   // 85th-percentile energy frequency (Hz)
	Flatness  float64 `json:"flatness"`  // Tonal (0) vs noise-like (1)
}

// TemporalFeatures contains time domain descriptors computed over the whole
// buffer, not just the analysis frame
type TemporalFeatures struct {
	ZeroCrossingRate float64 `json:"zero_crossing_rate"` // Sign changes per second (Hz)
	Energy           float64 `json:"energy"`             // Mean squared sample value
	RMS              float64 `json:"rms"`                // Root mean square
	Loudness         float64 `json:"loudness"`           // Simplified loudness (dB, RMS-derived)
}

// HarmonicFeatures contains pitch and harmonic-content descriptors.
// Harmonicity and inharmonicity always sum to 1.
type HarmonicFeatures struct {
	Pitch         float64 `json:"pitch"`         // Estimated fundamental (Hz), searched in [80, 800]
	Harmonicity   float64 `json:"harmonicity"`   // Energy fraction on integer harmonics
	Inharmonicity float64 `json:"inharmonicity"` // 1 - harmonicity
}

// FeatureRecord is the composite analysis result for one audio file.
// Records are created once per extraction and never mutated afterwards.
type FeatureRecord struct {
	Spectral SpectralFeatures `json:"spectral"`
	Temporal TemporalFeatures `json:"temporal"`
	Harmonic HarmonicFeatures `json:"harmonic"`

	MFCC    []float64 `json:"mfcc"`    // Fixed-length cepstral coefficients
	Chroma  []float64 `json:"chroma"`  // 12 pitch classes, sum 1 when any in-band energy
	Tonnetz []float64 `json:"tonnetz"` // 3-dimensional harmonic-network projection

	Tempo float64 `json:"tempo_bpm"` // Estimated tempo, 0 when unestimable

	SampleRate int     `json:"sample_rate"`
	Duration   float64 `json:"duration"` // Seconds
}
