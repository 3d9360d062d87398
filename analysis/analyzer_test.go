package analysis

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func makeSineBuffer(t *testing.T, sr int, freq float64, n int, amp float64) *SampleBuffer {
	t.Helper()
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
	}
	buffer, err := NewSampleBuffer(samples, sr)
	if err != nil {
		t.Fatalf("NewSampleBuffer: %v", err)
	}
	return buffer
}

func TestExtractFeaturesSilence(t *testing.T) {
	const sr = 44100
	buffer, err := NewSampleBuffer(make([]float64, sr), sr)
	if err != nil {
		t.Fatalf("NewSampleBuffer: %v", err)
	}

	record, err := NewAnalyzer(DefaultConfig()).ExtractFeatures(buffer)
	if err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}

	if record.Spectral.Centroid != 0 {
		t.Fatalf("centroid = %f, want 0", record.Spectral.Centroid)
	}
	if record.Spectral.Flatness != 0 {
		t.Fatalf("flatness = %f, want 0", record.Spectral.Flatness)
	}
	if record.Spectral.Rolloff != sr/2.0 {
		t.Fatalf("rolloff = %f, want Nyquist %f", record.Spectral.Rolloff, sr/2.0)
	}
	if record.Temporal.RMS != 0 || record.Temporal.ZeroCrossingRate != 0 {
		t.Fatalf("temporal features of silence not zero: %+v", record.Temporal)
	}
	if record.Temporal.Loudness != -100.0 {
		t.Fatalf("loudness = %f, want -100", record.Temporal.Loudness)
	}
	if record.Harmonic.Pitch != 0 {
		t.Fatalf("pitch = %f, want 0", record.Harmonic.Pitch)
	}
	if record.Harmonic.Harmonicity != 0 || record.Harmonic.Inharmonicity != 1 {
		t.Fatalf("harmonicity of silence = %+v, want (0, 1)", record.Harmonic)
	}
	for pc, v := range record.Chroma {
		if v != 0 {
			t.Fatalf("chroma[%d] = %f for silence, want 0", pc, v)
		}
	}
	if record.Duration != 1.0 {
		t.Fatalf("duration = %f, want 1", record.Duration)
	}
	if record.SampleRate != sr {
		t.Fatalf("sample rate = %d, want %d", record.SampleRate, sr)
	}
}

func TestExtractFeaturesTone(t *testing.T) {
	const sr = 44100
	buffer := makeSineBuffer(t, sr, 440, sr, 0.5)

	record, err := NewAnalyzer(DefaultConfig()).ExtractFeatures(buffer)
	if err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}

	if math.Abs(record.Harmonic.Pitch-440) > 5 {
		t.Fatalf("pitch = %f, want 440 within 5 Hz", record.Harmonic.Pitch)
	}
	if record.Harmonic.Harmonicity < 0.8 {
		t.Fatalf("harmonicity = %f, want > 0.8", record.Harmonic.Harmonicity)
	}
	if record.Spectral.Flatness >= 0.3 {
		t.Fatalf("flatness = %f, want < 0.3 for pure tone", record.Spectral.Flatness)
	}
	wantRMS := 0.5 / math.Sqrt2
	if math.Abs(record.Temporal.RMS-wantRMS) > 1e-3 {
		t.Fatalf("rms = %f, want %f", record.Temporal.RMS, wantRMS)
	}
	if len(record.MFCC) != 13 {
		t.Fatalf("got %d MFCC coefficients, want 13", len(record.MFCC))
	}
	if len(record.Chroma) != 12 || len(record.Tonnetz) != 3 {
		t.Fatalf("chroma/tonnetz lengths = %d/%d, want 12/3", len(record.Chroma), len(record.Tonnetz))
	}

	argmax := 0
	for pc, v := range record.Chroma {
		if v > record.Chroma[argmax] {
			argmax = pc
		}
	}
	if argmax != 9 {
		t.Fatalf("strongest pitch class = %d, want 9 (A)", argmax)
	}
}

func TestExtractFeaturesNoiseVersusTone(t *testing.T) {
	const sr = 44100
	rng := rand.New(rand.NewSource(7))
	noise := make([]float64, sr)
	for i := range noise {
		noise[i] = rng.Float64()*2 - 1
	}
	noiseBuffer, err := NewSampleBuffer(noise, sr)
	if err != nil {
		t.Fatalf("NewSampleBuffer: %v", err)
	}

	analyzer := NewAnalyzer(DefaultConfig())
	noiseRecord, err := analyzer.ExtractFeatures(noiseBuffer)
	if err != nil {
		t.Fatalf("ExtractFeatures(noise): %v", err)
	}
	toneRecord, err := analyzer.ExtractFeatures(makeSineBuffer(t, sr, 440, sr, 0.5))
	if err != nil {
		t.Fatalf("ExtractFeatures(tone): %v", err)
	}

	if noiseRecord.Spectral.Flatness <= toneRecord.Spectral.Flatness {
		t.Fatalf("noise flatness %f not above tone flatness %f",
			noiseRecord.Spectral.Flatness, toneRecord.Spectral.Flatness)
	}
	if noiseRecord.Temporal.ZeroCrossingRate <= toneRecord.Temporal.ZeroCrossingRate {
		t.Fatalf("noise zcr %f not above tone zcr %f",
			noiseRecord.Temporal.ZeroCrossingRate, toneRecord.Temporal.ZeroCrossingRate)
	}
	if noiseRecord.Spectral.Centroid <= toneRecord.Spectral.Centroid {
		t.Fatalf("noise centroid %f not above tone centroid %f",
			noiseRecord.Spectral.Centroid, toneRecord.Spectral.Centroid)
	}
}

func TestExtractFeaturesInvalidBuffers(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	if _, err := analyzer.ExtractFeatures(nil); err == nil {
		t.Fatal("expected error for nil buffer")
	}
	if _, err := analyzer.ExtractFeatures(&SampleBuffer{Samples: nil, SampleRate: 44100}); err == nil {
		t.Fatal("expected error for empty buffer")
	}
	if _, err := analyzer.ExtractFeatures(&SampleBuffer{Samples: []float64{0.1}, SampleRate: 0}); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}
}

func TestExtractFeaturesDeterministic(t *testing.T) {
	const sr = 44100
	buffer := makeSineBuffer(t, sr, 440, sr, 0.5)
	analyzer := NewAnalyzer(DefaultConfig())

	a, err := analyzer.ExtractFeatures(buffer)
	if err != nil {
		t.Fatalf("first ExtractFeatures: %v", err)
	}
	b, err := analyzer.ExtractFeatures(buffer)
	if err != nil {
		t.Fatalf("second ExtractFeatures: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("records differ between runs:\n%+v\n%+v", a, b)
	}
}

func TestExtractFeaturesShortBuffer(t *testing.T) {
	const sr = 44100
	// Shorter than the 2048-sample analysis frame
	buffer := makeSineBuffer(t, sr, 441, 512, 0.5)

	record, err := NewAnalyzer(DefaultConfig()).ExtractFeatures(buffer)
	if err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}
	if len(record.MFCC) != 13 {
		t.Fatalf("got %d MFCC coefficients, want 13", len(record.MFCC))
	}
	if record.Tempo != 0 {
		t.Fatalf("tempo of 512-sample buffer = %f, want 0", record.Tempo)
	}
}

func TestPackageExtractFeaturesFirstChannel(t *testing.T) {
	const sr = 44100
	left := make([]float64, sr)
	for i := range left {
		left[i] = 0.5 * math.Sin(2*math.Pi*441*float64(i)/float64(sr))
	}
	right := make([]float64, sr) // silent

	record, err := ExtractFeatures([][]float64{left, right}, sr)
	if err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}
	// Only the first channel is analyzed, so the tone must be visible
	if record.Temporal.RMS < 0.3 {
		t.Fatalf("rms = %f, want the left-channel tone level", record.Temporal.RMS)
	}

	if _, err := ExtractFeatures(nil, sr); err == nil {
		t.Fatal("expected error for empty channel data")
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("zero config did not fall back to defaults: %+v", cfg)
	}

	cfg = Config{FrameSize: 4096}.withDefaults()
	if cfg.FrameSize != 4096 {
		t.Fatalf("frame size = %d, want 4096 preserved", cfg.FrameSize)
	}
	if cfg.MFCCCoefficients != 13 {
		t.Fatalf("mfcc coefficients = %d, want default 13", cfg.MFCCCoefficients)
	}

	analyzer := NewAnalyzer(Config{})
	if analyzer.Config().FrameSize != 2048 {
		t.Fatalf("analyzer frame size = %d, want 2048", analyzer.Config().FrameSize)
	}
}

func TestSampleBufferValidation(t *testing.T) {
	if _, err := NewSampleBuffer(nil, 44100); err == nil {
		t.Fatal("expected error for empty samples")
	}
	if _, err := NewSampleBuffer([]float64{0.1}, -1); err == nil {
		t.Fatal("expected error for negative sample rate")
	}

	buffer, err := NewSampleBuffer(make([]float64, 22050), 44100)
	if err != nil {
		t.Fatalf("NewSampleBuffer: %v", err)
	}
	if buffer.Duration() != 0.5 {
		t.Fatalf("duration = %f, want 0.5", buffer.Duration())
	}
}
