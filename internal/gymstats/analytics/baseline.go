package analytics

import "github.com/2beens/gymstats/internal/gymstats/workouts"

// BaselineFor returns the personal record value for the exercise.
// ok is false when no record has been established yet.
func BaselineFor(exerciseID string, records []workouts.PersonalRecord) (_ float64, ok bool) {
	best, found := 0.0, false
	for _, r := range records {
		if r.ExerciseID != exerciseID || r.Value <= 0 {
			continue
		}
		if !found || r.Value > best {
			best, found = r.Value, true
		}
	}
	return best, found
}

// Baselines indexes the personal records by exercise, keeping the highest value.
func Baselines(records []workouts.PersonalRecord) map[string]float64 {
	baselines := make(map[string]float64, len(records))
	for _, r := range records {
		if r.Value <= 0 {
			continue
		}
		if current, ok := baselines[r.ExerciseID]; !ok || r.Value > current {
			baselines[r.ExerciseID] = r.Value
		}
	}
	return baselines
}
