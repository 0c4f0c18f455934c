package analytics

import (
	"time"

	"github.com/2beens/gymstats/internal/gymstats/workouts"
)

type ExerciseSummary struct {
	ExerciseID string   `json:"exerciseId"`
	Name       string   `json:"name"`
	Type       StatType `json:"type"`
	Sets       int      `json:"sets"`
	Total      float64  `json:"total"`
	Best       float64  `json:"best"`
	Density    float64  `json:"density"`
	// DensityDisplay is Density in the form shown to the user.
	DensityDisplay DensityDisplay `json:"densityDisplay"`
	// Intensity is nil when no personal record exists for the exercise.
	Intensity *float64 `json:"intensity,omitempty"`
	Tier      string   `json:"tier,omitempty"`
}

type WorkoutSummary struct {
	WorkoutID string    `json:"workoutId"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	// DurationMinutes is the workout length as logged by the user.
	DurationMinutes int               `json:"durationMinutes"`
	Density         float64           `json:"density"`
	Intensity       float64           `json:"intensity"`
	IntensityTier   string            `json:"intensityTier"`
	Exercises       []ExerciseSummary `json:"exercises"`
}

// SummarizeWorkout computes density and intensity for a workout and each of its
// exercise groups, in the order the exercises were first logged.
func SummarizeWorkout(
	w workouts.Workout,
	catalog workouts.Catalog,
	records []workouts.PersonalRecord,
	tiers TierTable,
) WorkoutSummary {
	intensity := WorkoutIntensity(w.Sets, catalog, records)
	summary := WorkoutSummary{
		WorkoutID:       w.ID,
		Name:            w.Name,
		Date:            w.Date,
		DurationMinutes: w.DurationMinutes,
		Density:         WorkoutDensity(w.Sets, catalog),
		Intensity:       intensity,
		IntensityTier:   tiers.Tier(intensity),
		Exercises:       make([]ExerciseSummary, 0),
	}

	for _, group := range groupByExercise(w.Sets) {
		ex, ok := catalog.Get(group.exerciseID)
		if !ok {
			// rep based fallback, keep the id so the group stays identifiable
			ex = workouts.Exercise{ID: group.exerciseID, Quantification: ptr(workouts.QuantificationRep)}
		}
		holdBased := IsHoldBased(ex)

		es := ExerciseSummary{
			ExerciseID: group.exerciseID,
			Name:       catalog.Name(group.exerciseID),
			Type:       QuantityOf(ex),
			Sets:       len(group.sets),
			Best:       bestAmount(group.sets, holdBased),
			Density:    ExerciseGroupDensity(group.sets, ex),
		}
		es.DensityDisplay = FormatDensity(es.Density, ex)
		for _, s := range group.sets {
			es.Total += Amount(s, holdBased)
		}
		if _, hasRecord := BaselineFor(group.exerciseID, records); hasRecord {
			v := ExerciseIntensity(group.sets, ex, records)
			es.Intensity = &v
			es.Tier = tiers.Tier(v)
		}
		summary.Exercises = append(summary.Exercises, es)
	}

	return summary
}

func ptr[T any](v T) *T {
	return &v
}
