package analysis

import (
	"fmt"

	"github.com/lagooneration/noaudio/algorithms/chroma"
	"github.com/lagooneration/noaudio/algorithms/harmonic"
	"github.com/lagooneration/noaudio/algorithms/spectral"
	"github.com/lagooneration/noaudio/algorithms/temporal"
	"github.com/lagooneration/noaudio/logging"
)

// Analyzer turns decoded PCM into a FeatureRecord. One magnitude spectrum is
// computed per extraction from the leading analysis frame; spectral, cepstral
// and tonal descriptors derive from that shared spectrum, while temporal and
// harmonic descriptors run over the entire buffer.
//
// Extraction is a pure function of its input: no shared mutable state, no
// I/O. Concurrent extractions on independent buffers are safe.
type Analyzer struct {
	config   Config
	spectrum *spectral.SpectrumAnalyzer
	logger   logging.Logger
}

// NewAnalyzer creates an analyzer; zero config values fall back to defaults
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{
		config:   config.withDefaults(),
		spectrum: spectral.NewSpectrumAnalyzer(),
		logger: logging.WithFields(logging.Fields{
			"component": "analyzer",
		}),
	}
}

// Config returns the effective analysis parameters
func (a *Analyzer) Config() Config {
	return a.config
}

// ExtractFeatures analyzes a sample buffer and returns one immutable feature
// record. The contract is all-or-nothing: a structurally invalid buffer
// yields an error and no partial record.
func (a *Analyzer) ExtractFeatures(buffer *SampleBuffer) (*FeatureRecord, error) {
	if buffer == nil {
		return nil, fmt.Errorf("unable to analyze: nil sample buffer")
	}
	if len(buffer.Samples) == 0 {
		return nil, fmt.Errorf("unable to analyze: empty sample buffer")
	}
	if buffer.SampleRate <= 0 {
		return nil, fmt.Errorf("unable to analyze: invalid sample rate %d", buffer.SampleRate)
	}

	sr := buffer.SampleRate
	samples := buffer.Samples

	// Leading frame only; shorter buffers are analyzed at their full length
	// without padding
	frameLen := min(a.config.FrameSize, len(samples))
	frame := samples[:frameLen]

	magnitudeSpectrum := a.spectrum.Compute(frame)

	a.logger.Debug("computed analysis spectrum", logging.Fields{
		"frame_size":  frameLen,
		"num_bins":    len(magnitudeSpectrum),
		"sample_rate": sr,
	})

	record := &FeatureRecord{
		Spectral:   a.spectralFeatures(magnitudeSpectrum, sr),
		Temporal:   a.temporalFeatures(samples, sr),
		SampleRate: sr,
		Duration:   buffer.Duration(),
	}

	record.Harmonic = a.harmonicFeatures(samples, magnitudeSpectrum, sr)

	if len(magnitudeSpectrum) > 0 {
		mfcc, err := spectral.NewMFCC(sr, a.config.MFCCCoefficients, a.config.MelFilters).Compute(magnitudeSpectrum)
		if err != nil {
			return nil, fmt.Errorf("unable to analyze: %w", err)
		}
		record.MFCC = mfcc
	} else {
		// Single-sample buffers yield a binless spectrum; cepstral features
		// degrade to zero vectors instead of failing the whole extraction
		record.MFCC = make([]float64, a.config.MFCCCoefficients)
	}

	chromaExtractor := chroma.NewExtractorWithRange(sr, a.config.TuningFreq, a.config.ChromaMinFreq, a.config.ChromaMaxFreq)
	record.Chroma = chromaExtractor.Compute(magnitudeSpectrum)
	record.Tonnetz = chroma.NewProjector().Compute(record.Chroma)

	record.Tempo = temporal.NewTempoEstimator(sr).Estimate(samples)

	a.logger.Debug("feature extraction complete", logging.Fields{
		"duration": record.Duration,
		"pitch":    record.Harmonic.Pitch,
		"tempo":    record.Tempo,
	})

	return record, nil
}

func (a *Analyzer) spectralFeatures(spectrum []float64, sampleRate int) SpectralFeatures {
	centroid := spectral.NewSpectralCentroid(sampleRate).Compute(spectrum)

	return SpectralFeatures{
		Centroid:  centroid,
		Bandwidth: spectral.NewSpectralBandwidth(sampleRate).Compute(spectrum, centroid),
		Rolloff:   spectral.NewSpectralRolloff(sampleRate).Compute(spectrum, a.config.RolloffThreshold),
		Flatness:  spectral.NewSpectralFlatness().Compute(spectrum),
	}
}

func (a *Analyzer) temporalFeatures(samples []float64, sampleRate int) TemporalFeatures {
	energy := temporal.NewEnergy()

	return TemporalFeatures{
		ZeroCrossingRate: temporal.NewZeroCrossingRate(sampleRate).Compute(samples),
		Energy:           energy.Compute(samples),
		RMS:              energy.RMS(samples),
		Loudness:         energy.LoudnessDB(samples),
	}
}

func (a *Analyzer) harmonicFeatures(samples, spectrum []float64, sampleRate int) HarmonicFeatures {
	pitch := harmonic.NewFundamentalEstimator(sampleRate, a.config.MinPitch, a.config.MaxPitch).Estimate(samples)
	harmonicity, inharmonicity := harmonic.NewHarmonicityAnalyzer(sampleRate, a.config.HarmonicTolerance).Compute(spectrum, pitch)

	return HarmonicFeatures{
		Pitch:         pitch,
		Harmonicity:   harmonicity,
		Inharmonicity: inharmonicity,
	}
}

// ExtractFeatures analyzes multi-channel PCM with default parameters, taking
// the first channel. This mirrors the upload-analysis flow of the embedding
// application: decoded channel data in, one feature record out.
func ExtractFeatures(channelData [][]float64, sampleRate int) (*FeatureRecord, error) {
	buffer, err := NewSampleBufferFromChannels(channelData, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("unable to analyze: %w", err)
	}

	return NewAnalyzer(DefaultConfig()).ExtractFeatures(buffer)
}
