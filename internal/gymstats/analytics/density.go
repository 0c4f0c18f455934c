package analytics

import (
	"math"

	"github.com/2beens/gymstats/internal/gymstats/workouts"
)

// SetDensity returns amount per second for a single set of a hold based exercise.
// Rep based sets have no execution time model, so ok is false for them.
func SetDensity(set workouts.WorkoutSet, ex workouts.Exercise) (_ float64, ok bool) {
	if !IsHoldBased(ex) {
		return 0, false
	}
	hold := set.DurationSeconds()
	return ratio(hold, hold+set.RestSeconds()), true
}

// ExerciseGroupDensity is the throughput of all the sets done for one exercise.
func ExerciseGroupDensity(sets []workouts.WorkoutSet, ex workouts.Exercise) float64 {
	if len(sets) == 0 {
		return 0
	}
	holdBased := IsHoldBased(ex)
	var amount, elapsed float64
	for _, s := range sets {
		amount += Amount(s, holdBased)
		elapsed += activeAndRest(s, holdBased)
	}
	return ratio(amount, elapsed)
}

// WorkoutDensity is the workout wide throughput. Exercises are weighted by the
// volume they contribute, not averaged per exercise.
func WorkoutDensity(sets []workouts.WorkoutSet, catalog workouts.Catalog) float64 {
	if len(sets) == 0 {
		return 0
	}
	var amount, elapsed float64
	for _, s := range sets {
		holdBased := resolveHold(catalog, s.ExerciseID)
		amount += Amount(s, holdBased)
		elapsed += activeAndRest(s, holdBased)
	}
	return ratio(amount, elapsed)
}

func activeAndRest(set workouts.WorkoutSet, holdBased bool) float64 {
	if holdBased {
		return set.RestSeconds() + set.DurationSeconds()
	}
	return set.RestSeconds()
}

func ratio(num, denom float64) float64 {
	if denom <= 0 {
		return 0
	}
	return num / denom
}

type DensityDisplay struct {
	PerSecond float64 `json:"perSecond"`
	PerMinute int     `json:"perMinute"`
	Unit      string  `json:"unit"`
}

const (
	UnitRepetitions = "rép"
	UnitSeconds     = "s"
)

// FormatDensity converts a density to its display form.
func FormatDensity(density float64, ex workouts.Exercise) DensityDisplay {
	unit := UnitRepetitions
	if IsHoldBased(ex) {
		unit = UnitSeconds
	}
	return DensityDisplay{
		PerSecond: roundTo(density, 3),
		PerMinute: int(math.Round(density * 60)),
		Unit:      unit,
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
