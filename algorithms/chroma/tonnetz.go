package chroma

import (
	"math"
)

// TonnetzDimensions is the size of the projection produced by Projector
const TonnetzDimensions = 3

// Projector maps a chroma vector into a small harmonic-network embedding.
// Three fixed projections approximate position in tonal space: a cosine and a
// sine basis at period 3 capture third relationships, and a cosine basis at
// period 12/7 follows the circle of fifths. This is a compact approximation,
// not the canonical 6-dimensional tonnetz.
type Projector struct {
	majorThirdBasis []float64
	minorThirdBasis []float64
	fifthBasis      []float64
}

// NewProjector creates a tonnetz projector for 12-element chroma vectors
func NewProjector() *Projector {
	p := &Projector{
		majorThirdBasis: make([]float64, NumPitchClasses),
		minorThirdBasis: make([]float64, NumPitchClasses),
		fifthBasis:      make([]float64, NumPitchClasses),
	}

	for pc := range NumPitchClasses {
		p.majorThirdBasis[pc] = math.Cos(2.0 * math.Pi * float64(pc) / 3.0)
		p.minorThirdBasis[pc] = math.Sin(2.0 * math.Pi * float64(pc) / 3.0)
		p.fifthBasis[pc] = math.Cos(2.0 * math.Pi * 7.0 * float64(pc) / 12.0)
	}

	return p
}

// Compute projects a chroma vector onto the three bases. Each output is a
// plain linear combination and is not independently normalized.
func (p *Projector) Compute(chromaVector []float64) []float64 {
	projection := make([]float64, TonnetzDimensions)

	for pc := 0; pc < len(chromaVector) && pc < NumPitchClasses; pc++ {
		projection[0] += chromaVector[pc] * p.majorThirdBasis[pc]
		projection[1] += chromaVector[pc] * p.minorThirdBasis[pc]
		projection[2] += chromaVector[pc] * p.fifthBasis[pc]
	}

	return projection
}
