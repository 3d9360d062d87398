package spectral

import (
	"math"
)

// MelScale provides mel frequency conversion and filter bank construction
type MelScale struct{}

// NewMelScale creates a new mel scale converter
func NewMelScale() *MelScale {
	return &MelScale{}
}

// HzToMel converts frequency in Hz to mel scale
func (ms *MelScale) HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts mel scale to frequency in Hz
func (ms *MelScale) MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// CreateFilterBank builds numFilters triangular filters spaced evenly in mel
// frequency between 0 Hz and Nyquist, each covering numBins spectrum bins
func (ms *MelScale) CreateFilterBank(numFilters, numBins, sampleRate int) [][]float64 {
	if numFilters <= 0 || numBins <= 0 {
		return nil
	}

	nyquist := float64(sampleRate) / 2.0
	lowMel := ms.HzToMel(0.0)
	highMel := ms.HzToMel(nyquist)

	// Equally spaced mel points, converted back to spectrum bin indices
	binWidth := float64(sampleRate) / float64(2*numBins)
	melStep := (highMel - lowMel) / float64(numFilters+1)

	binPoints := make([]int, numFilters+2)
	for i := range binPoints {
		hz := ms.MelToHz(lowMel + float64(i)*melStep)
		bin := int(math.Floor(hz/binWidth + 0.5))
		binPoints[i] = min(bin, numBins-1)
	}

	filterBank := make([][]float64, numFilters)
	for m := range filterBank {
		filterBank[m] = make([]float64, numBins)

		leftBin := binPoints[m]
		centerBin := binPoints[m+1]
		rightBin := binPoints[m+2]

		// Rising edge
		for k := leftBin; k < centerBin && k < numBins; k++ {
			if centerBin != leftBin {
				filterBank[m][k] = float64(k-leftBin) / float64(centerBin-leftBin)
			}
		}

		// Falling edge
		for k := centerBin; k < rightBin && k < numBins; k++ {
			if rightBin != centerBin {
				filterBank[m][k] = float64(rightBin-k) / float64(rightBin-centerBin)
			}
		}
	}

	return filterBank
}

// ApplyFilterBank applies a filter bank to a magnitude spectrum
func (ms *MelScale) ApplyFilterBank(spectrum []float64, filterBank [][]float64) []float64 {
	if len(filterBank) == 0 || len(spectrum) == 0 {
		return []float64{}
	}

	melSpectrum := make([]float64, len(filterBank))

	for i, filter := range filterBank {
		sum := 0.0
		for j := 0; j < len(filter) && j < len(spectrum); j++ {
			sum += spectrum[j] * filter[j]
		}
		melSpectrum[i] = sum
	}

	return melSpectrum
}
