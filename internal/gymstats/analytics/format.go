package analytics

import (
	"fmt"
	"math"
)

// FormatWorkoutDuration renders minutes as "1h05min", or "45min" under an hour.
func FormatWorkoutDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%dh%02dmin", minutes/60, minutes%60)
}

// FormatPercentage renders an intensity with one decimal, e.g. "75.0%".
func FormatPercentage(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return fmt.Sprintf("%.1f%%", p)
}

// FormatAmount renders an amount with its unit.
func FormatAmount(amount float64, statType StatType) string {
	if statType == StatTypeTime {
		return fmt.Sprintf("%gs", roundTo(amount, 1))
	}
	return fmt.Sprintf("%g %s", roundTo(amount, 1), UnitRepetitions)
}
