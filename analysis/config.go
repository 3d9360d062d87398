package analysis

// Config contains analysis parameters
type Config struct {
	// Frame and spectrum
	FrameSize int `json:"frame_size"` // Analysis frame length in samples

	// Cepstral/tonal parameters
	MFCCCoefficients int     `json:"mfcc_coefficients"`
	MelFilters       int     `json:"mel_filters"`
	TuningFreq       float64 `json:"tuning_freq"`     // A4 reference (Hz)
	ChromaMinFreq    float64 `json:"chroma_min_freq"` // Lower bound of the chroma band (Hz)
	ChromaMaxFreq    float64 `json:"chroma_max_freq"` // Upper bound of the chroma band (Hz)

	// Spectral descriptor parameters
	RolloffThreshold float64 `json:"rolloff_threshold"`

	// Harmonic parameters
	MinPitch          float64 `json:"min_pitch"`          // F0 search floor (Hz)
	MaxPitch          float64 `json:"max_pitch"`          // F0 search ceiling (Hz)
	HarmonicTolerance float64 `json:"harmonic_tolerance"` // Hz tolerance around harmonics
}

// DefaultConfig returns the standard analysis parameters
func DefaultConfig() Config {
	return Config{
		FrameSize:         2048,
		MFCCCoefficients:  13,
		MelFilters:        26,
		TuningFreq:        440.0,
		ChromaMinFreq:     80.0,
		ChromaMaxFreq:     8000.0,
		RolloffThreshold:  0.85,
		MinPitch:          80.0,
		MaxPitch:          800.0,
		HarmonicTolerance: 20.0,
	}
}

// withDefaults replaces zero values with the defaults
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.FrameSize <= 0 {
		c.FrameSize = def.FrameSize
	}
	if c.MFCCCoefficients <= 0 {
		c.MFCCCoefficients = def.MFCCCoefficients
	}
	if c.MelFilters <= 0 {
		c.MelFilters = def.MelFilters
	}
	if c.TuningFreq <= 0 {
		c.TuningFreq = def.TuningFreq
	}
	if c.ChromaMinFreq <= 0 {
		c.ChromaMinFreq = def.ChromaMinFreq
	}
	if c.ChromaMaxFreq <= 0 {
		c.ChromaMaxFreq = def.ChromaMaxFreq
	}
	if c.RolloffThreshold <= 0 {
		c.RolloffThreshold = def.RolloffThreshold
	}
	if c.MinPitch <= 0 {
		c.MinPitch = def.MinPitch
	}
	if c.MaxPitch <= 0 {
		c.MaxPitch = def.MaxPitch
	}
	if c.HarmonicTolerance <= 0 {
		c.HarmonicTolerance = def.HarmonicTolerance
	}

	return c
}
