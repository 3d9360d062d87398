package analysis

import (
	"fmt"
)

// SampleBuffer holds decoded single-channel PCM audio. Samples are expected
// in the [-1, 1] range. Buffers are treated as read-only by every analysis
// routine.
type SampleBuffer struct {
	Samples    []float64
	SampleRate int
}

// NewSampleBuffer validates and wraps a mono sample slice
func NewSampleBuffer(samples []float64, sampleRate int) (*SampleBuffer, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("sample buffer is empty")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	return &SampleBuffer{
		Samples:    samples,
		SampleRate: sampleRate,
	}, nil
}

// NewSampleBufferFromChannels builds a mono buffer from multi-channel PCM by
// taking the first channel. Proper downmixing is intentionally out of scope.
func NewSampleBufferFromChannels(channelData [][]float64, sampleRate int) (*SampleBuffer, error) {
	if len(channelData) == 0 {
		return nil, fmt.Errorf("no channels in sample buffer")
	}
	return NewSampleBuffer(channelData[0], sampleRate)
}

// Duration returns the buffer duration in seconds
func (b *SampleBuffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0.0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}
