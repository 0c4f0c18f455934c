package analytics

import (
	"strings"

	"github.com/2beens/gymstats/internal/gymstats/workouts"
)

// StatType tells how an exercise amount should be rendered.
type StatType string

const (
	StatTypeRepetitions StatType = "repetitions"
	StatTypeTime        StatType = "temps"
)

// legacyHoldKeywords must not change: exercises logged before the explicit
// quantification field existed are classified with it.
var legacyHoldKeywords = []string{"hold", "planche", "l-sit", "handstand"}

// IsHoldBased reports whether the exercise amount is read from the hold duration
// rather than from the repetitions.
func IsHoldBased(ex workouts.Exercise) bool {
	if ex.Quantification != nil {
		return *ex.Quantification == workouts.QuantificationHold
	}
	return LegacyHoldHeuristic(ex.Name, ex.Category)
}

// LegacyHoldHeuristic infers the quantification of exercises with no explicit type.
func LegacyHoldHeuristic(name, category string) bool {
	lowerName := strings.ToLower(name)
	for _, kw := range legacyHoldKeywords {
		if strings.Contains(lowerName, kw) {
			return true
		}
	}
	return category == workouts.CategoryCore
}

// resolveHold looks the exercise up in the catalog, unknown exercises are rep based.
func resolveHold(catalog workouts.Catalog, exerciseID string) bool {
	ex, ok := catalog.Get(exerciseID)
	if !ok {
		return false
	}
	return IsHoldBased(ex)
}

// QuantityOf returns the stat type of the exercise.
func QuantityOf(ex workouts.Exercise) StatType {
	if IsHoldBased(ex) {
		return StatTypeTime
	}
	return StatTypeRepetitions
}

// Amount is the quantity measuring the set performance.
func Amount(set workouts.WorkoutSet, holdBased bool) float64 {
	if holdBased {
		return set.DurationSeconds()
	}
	return float64(set.Repetitions)
}
