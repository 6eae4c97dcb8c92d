package quiz

import "math"

// PassingScore is the scaled score needed for a pass verdict.
const PassingScore = 700

// RawToScaled maps a raw correct count onto the 100-1000 scaled range with a
// linear approximation of AWS scaled scoring. Zero attempts scores the floor.
// This is a practice estimate, not the real psychometric model.
func RawToScaled(raw, attempted int) int {
	pct := 0.0
	if attempted > 0 {
		pct = float64(raw) / float64(attempted)
	}
	return int(math.Round(100 + 900*pct))
}

// Passed reports whether a scaled score meets the passing bar.
func Passed(scaled int) bool { return scaled >= PassingScore }
