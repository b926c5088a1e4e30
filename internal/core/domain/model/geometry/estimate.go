package geometry

import "math"

const (
	// minutesPerCM3 is the base print duration per cubic centimeter of material.
	minutesPerCM3 = 2.0

	// maxComplexityScore caps the triangle-count derived complexity so that a
	// huge mesh cannot inflate the print time without bound.
	maxComplexityScore = 3.0
)

// Difficulty tiers a print job by mesh complexity.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the lowercase name of the difficulty tier.
func (d Difficulty) String() string {
	switch d {
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "easy"
	}
}

// PrintEstimate holds physical production estimates derived from a mesh
// analysis and a material density.
type PrintEstimate struct {
	WeightG          float64
	PrintTimeMinutes float64
	ComplexityScore  float64
	Difficulty       Difficulty
}

// EstimatePrintProperties derives weight, print duration and a difficulty tier
// from an analysis and a material density in g/cm³. It is a pure function with
// no failure modes: a nil or empty analysis yields a zeroed estimate.
func EstimatePrintProperties(analysis *Analysis, densityGPerCM3 float64) PrintEstimate {
	if analysis == nil {
		return PrintEstimate{Difficulty: DifficultyEasy}
	}

	volumeCM3 := analysis.VolumeMM3 / 1000.0
	complexity := math.Min(float64(analysis.TriangleCount)/1000.0, maxComplexityScore)

	baseTime := volumeCM3 * minutesPerCM3
	printTime := baseTime * (1.0 + 0.5*complexity)

	estimate := PrintEstimate{
		WeightG:          volumeCM3 * densityGPerCM3,
		PrintTimeMinutes: printTime,
		ComplexityScore:  complexity,
	}

	switch {
	case complexity < 1.0:
		estimate.Difficulty = DifficultyEasy
	case complexity < 2.0:
		estimate.Difficulty = DifficultyMedium
	default:
		estimate.Difficulty = DifficultyHard
	}

	return estimate
}
