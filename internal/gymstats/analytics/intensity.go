package analytics

import "github.com/2beens/gymstats/internal/gymstats/workouts"

// SetIntensity is the set amount as a percentage of the personal record.
// It is 0 when there is no record for the exercise.
func SetIntensity(set workouts.WorkoutSet, ex workouts.Exercise, records []workouts.PersonalRecord) float64 {
	baseline, ok := BaselineFor(ex.ID, records)
	if !ok {
		return 0
	}
	return Amount(set, IsHoldBased(ex)) / baseline * 100
}

// ExerciseIntensity uses the best amount among the given sets.
func ExerciseIntensity(sets []workouts.WorkoutSet, ex workouts.Exercise, records []workouts.PersonalRecord) float64 {
	baseline, ok := BaselineFor(ex.ID, records)
	if !ok || len(sets) == 0 {
		return 0
	}
	return bestAmount(sets, IsHoldBased(ex)) / baseline * 100
}

// WorkoutIntensity sums the best amount of every exercise of the workout and
// divides it by the sum of their baselines. Exercises with no personal record
// are left out of both sums.
func WorkoutIntensity(sets []workouts.WorkoutSet, catalog workouts.Catalog, records []workouts.PersonalRecord) float64 {
	baselines := Baselines(records)
	var best, base float64
	for _, group := range groupByExercise(sets) {
		baseline, ok := baselines[group.exerciseID]
		if !ok {
			continue
		}
		best += bestAmount(group.sets, resolveHold(catalog, group.exerciseID))
		base += baseline
	}
	return ratio(best, base) * 100
}

func bestAmount(sets []workouts.WorkoutSet, holdBased bool) float64 {
	best := 0.0
	for _, s := range sets {
		best = max(best, Amount(s, holdBased))
	}
	return best
}

type exerciseGroup struct {
	exerciseID string
	sets       []workouts.WorkoutSet
}

// groupByExercise keeps the order in which exercises first appear.
func groupByExercise(sets []workouts.WorkoutSet) []exerciseGroup {
	var groups []exerciseGroup
	index := make(map[string]int)
	for _, s := range sets {
		i, ok := index[s.ExerciseID]
		if !ok {
			i = len(groups)
			index[s.ExerciseID] = i
			groups = append(groups, exerciseGroup{exerciseID: s.ExerciseID})
		}
		groups[i].sets = append(groups[i].sets, s)
	}
	return groups
}
