package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/analytics"
	"github.com/2beens/gymstats/internal/gymstats/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var progressNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func progressFixture() ([]workouts.Workout, workouts.Catalog) {
	catalog := workouts.NewCatalog([]workouts.Exercise{
		repExercise("pompes", "Pompes"),
		holdExercise("planche", "Planche"),
		repExercise("dips", "Dips"),
	})
	list := []workouts.Workout{
		{
			ID:   "w1",
			Date: day(2024, 6, 14),
			Sets: []workouts.WorkoutSet{
				repSet("pompes", 10, 60),
				repSet("pompes", 12, 60),
				holdSet("planche", 30, 90),
			},
		},
		{
			ID:   "w2",
			Date: day(2024, 6, 14).Add(2 * time.Hour),
			Sets: []workouts.WorkoutSet{repSet("pompes", 15, 60)},
		},
		{
			ID:   "w3",
			Date: day(2024, 5, 1),
			Sets: []workouts.WorkoutSet{
				repSet("pompes", 8, 60),
				repSet("pompes", 8, 60),
				holdSet("planche", 45, 90),
				repSet("dips", 12, 60),
			},
		},
		{
			ID:   "w4",
			Date: day(2024, 1, 10),
			Sets: []workouts.WorkoutSet{repSet("pompes", 20, 60)},
		},
	}
	return list, catalog
}

func TestAggregate(t *testing.T) {
	list, catalog := progressFixture()

	stats := analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"pompes", "planche", "ghost"},
		Period:      analytics.PeriodWeek,
		Now:         progressNow,
	}, list, catalog)
	require.Len(t, stats, 2)

	pompes := stats[0]
	assert.Equal(t, "pompes", pompes.ExerciseID)
	assert.Equal(t, "Pompes", pompes.Name)
	assert.Equal(t, analytics.StatTypeRepetitions, pompes.Type)
	assert.Equal(t, 20.0, pompes.MaxValue)
	assert.Equal(t, 73.0, pompes.TotalValue)
	assert.Equal(t, 6, pompes.TotalSets)
	assert.InDelta(t, 37.0/3.0, pompes.AverageValue, 1e-9)
	assert.Equal(t, 3.0, pompes.AverageSets)
	assert.Equal(t, []analytics.DailyStat{
		{Date: "2024-01-10", MaxValue: 20, Sets: 1},
		{Date: "2024-05-01", MaxValue: 8, Sets: 2},
		{Date: "2024-06-14", MaxValue: 15, Sets: 3},
	}, pompes.Daily)

	planche := stats[1]
	assert.Equal(t, "planche", planche.ExerciseID)
	assert.Equal(t, analytics.StatTypeTime, planche.Type)
	assert.Equal(t, 45.0, planche.MaxValue)
	assert.Equal(t, 75.0, planche.TotalValue)
	assert.Equal(t, 2, planche.TotalSets)
	assert.Equal(t, 30.0, planche.AverageValue)
	assert.Equal(t, 1.0, planche.AverageSets)
}

func TestAggregate_AllTimeAverages(t *testing.T) {
	list, catalog := progressFixture()

	stats := analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"pompes"},
		Period:      analytics.PeriodAll,
		Now:         progressNow,
	}, list, catalog)
	require.Len(t, stats, 1)
	assert.InDelta(t, 73.0/6.0, stats[0].AverageValue, 1e-9)
	assert.Equal(t, 2.0, stats[0].AverageSets)
}

func TestAggregate_EmptyPeriodWindow(t *testing.T) {
	list, catalog := progressFixture()

	stats := analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"dips"},
		Period:      analytics.PeriodWeek,
		Now:         progressNow,
	}, list, catalog)
	require.Len(t, stats, 1)
	assert.Equal(t, 12.0, stats[0].MaxValue)
	assert.Equal(t, 0.0, stats[0].AverageValue)
	assert.Equal(t, 0.0, stats[0].AverageSets)
}

func TestAggregate_DateRange(t *testing.T) {
	list, catalog := progressFixture()

	stats := analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"pompes"},
		StartDate:   "2024-05-01",
		EndDate:     "2024-06-14",
		Period:      analytics.PeriodAll,
		Now:         progressNow,
	}, list, catalog)
	require.Len(t, stats, 1)
	assert.Equal(t, 53.0, stats[0].TotalValue)
	assert.Equal(t, 5, stats[0].TotalSets)
	assert.Equal(t, 15.0, stats[0].MaxValue)

	// bounds are compared on their date prefix
	stats = analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"pompes", "planche"},
		EndDate:     "2024-05-01T00:00:00Z",
		Period:      analytics.PeriodAll,
		Now:         progressNow,
	}, list, catalog)
	require.Len(t, stats, 2)
	assert.Equal(t, 36.0, stats[0].TotalValue)
	assert.Equal(t, 45.0, stats[1].TotalValue)

	stats = analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"pompes"},
		StartDate:   "2025-01-01",
		Now:         progressNow,
	}, list, catalog)
	assert.Empty(t, stats)
}

func TestAggregate_DuplicateAndUnknownIDs(t *testing.T) {
	list, catalog := progressFixture()
	list = append(list, workouts.Workout{
		ID:   "w5",
		Date: day(2024, 6, 15),
		Sets: []workouts.WorkoutSet{{ExerciseID: "ghost", Repetitions: 7, Duration: floatPtr(50)}},
	})

	stats := analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"ghost", "ghost"},
		Period:      analytics.PeriodAll,
		Now:         progressNow,
	}, list, catalog)
	require.Len(t, stats, 1)
	assert.Equal(t, "ghost", stats[0].Name)
	assert.Equal(t, analytics.StatTypeRepetitions, stats[0].Type)
	assert.Equal(t, 7.0, stats[0].TotalValue)
}

func TestAggregate_EmptyInput(t *testing.T) {
	stats := analytics.Aggregate(analytics.AggregateParams{Period: analytics.PeriodAll, Now: progressNow}, nil, nil)
	require.NotNil(t, stats)
	assert.Empty(t, stats)

	stats = analytics.Aggregate(analytics.AggregateParams{
		ExerciseIDs: []string{"pompes"},
		Period:      analytics.PeriodWeek,
		Now:         progressNow,
	}, []workouts.Workout{}, workouts.Catalog{})
	assert.Equal(t, []analytics.ExerciseStats{}, stats)
}

func TestDistribution(t *testing.T) {
	list, catalog := progressFixture()
	params := analytics.AggregateParams{
		ExerciseIDs: []string{"pompes", "planche"},
		Period:      analytics.PeriodWeek,
		Now:         progressNow,
	}

	dist := analytics.BuildDistribution(params, list, catalog)
	require.NotNil(t, dist)
	assert.Equal(t, []string{"Pompes", "Planche"}, dist.Labels)
	assert.Equal(t, []float64{37, 30}, dist.Values)
	assert.Equal(t, []int{3, 1}, dist.Sets)
}

func TestDistribution_ExcludesExercisesWithoutData(t *testing.T) {
	list, catalog := progressFixture()
	params := analytics.AggregateParams{
		ExerciseIDs: []string{"pompes", "dips"},
		Period:      analytics.PeriodWeek,
		Now:         progressNow,
	}

	dist := analytics.DistributionOf(params, list, catalog)
	assert.Equal(t, []string{"Pompes"}, dist.Labels)
	assert.Equal(t, []float64{37}, dist.Values)
	assert.Equal(t, []int{3}, dist.Sets)

	// a single slice is not a distribution
	assert.Nil(t, analytics.BuildDistribution(params, list, catalog))
}

func TestDistribution_ExcludesZeroTotals(t *testing.T) {
	list, catalog := progressFixture()
	list = append(list, workouts.Workout{
		ID:   "w5",
		Date: day(2024, 6, 13),
		Sets: []workouts.WorkoutSet{repSet("dips", 0, 60)},
	})
	params := analytics.AggregateParams{
		ExerciseIDs: []string{"pompes", "dips"},
		Period:      analytics.PeriodWeek,
		Now:         progressNow,
	}

	dist := analytics.DistributionOf(params, list, catalog)
	assert.Equal(t, []string{"Pompes"}, dist.Labels)
	assert.Equal(t, []float64{37}, dist.Values)
	assert.Equal(t, []int{3}, dist.Sets)
	assert.Nil(t, analytics.BuildDistribution(params, list, catalog))

	// the set still counts in the progress stats
	stats := analytics.Aggregate(params, list, catalog)
	require.Len(t, stats, 2)
	assert.Equal(t, "dips", stats[1].ExerciseID)
	assert.Equal(t, 2, stats[1].TotalSets)
	assert.Equal(t, 12.0, stats[1].MaxValue)
}

func TestDistribution_SingleExercise(t *testing.T) {
	list, catalog := progressFixture()
	params := analytics.AggregateParams{
		ExerciseIDs: []string{"pompes", "pompes"},
		Period:      analytics.PeriodAll,
		Now:         progressNow,
	}
	assert.Nil(t, analytics.BuildDistribution(params, list, catalog))
	assert.Nil(t, analytics.BuildDistribution(analytics.AggregateParams{}, nil, nil))
}

func randomWorkouts(faker *gofakeit.Faker, exerciseIDs []string, n int) []workouts.Workout {
	start := progressNow.AddDate(-1, 0, 0)
	list := make([]workouts.Workout, 0, n)
	for i := range n {
		w := workouts.Workout{
			ID:      fmt.Sprintf("w%d", i),
			Name:    faker.Word(),
			Date:    faker.DateRange(start, progressNow),
			Feeling: faker.IntRange(1, 5),
		}
		for range faker.IntRange(1, 10) {
			set := workouts.WorkoutSet{
				ExerciseID:  faker.RandomString(exerciseIDs),
				Repetitions: faker.IntRange(0, 25),
				Rest:        floatPtr(faker.Float64Range(30, 180)),
			}
			if faker.Bool() {
				set.Duration = floatPtr(faker.Float64Range(5, 90))
			}
			w.Sets = append(w.Sets, set)
		}
		list = append(list, w)
	}
	return list
}

func TestAggregate_Idempotent(t *testing.T) {
	faker := gofakeit.New(42)
	ids := []string{"pompes", "planche", "dips", "ghost"}
	list, catalog := randomWorkouts(faker, ids, 60), progressFixtureCatalog()

	for _, period := range analytics.Periods {
		params := analytics.AggregateParams{ExerciseIDs: ids, Period: period, Now: progressNow}
		first := analytics.Aggregate(params, list, catalog)
		second := analytics.Aggregate(params, list, catalog)
		assert.Equal(t, first, second)
		assert.Equal(t, analytics.BuildDistribution(params, list, catalog), analytics.BuildDistribution(params, list, catalog))
	}
}

func TestAggregate_PeriodInclusionIsMonotonic(t *testing.T) {
	faker := gofakeit.New(1337)
	ids := []string{"pompes", "planche", "dips"}
	list, catalog := randomWorkouts(faker, ids, 80), progressFixtureCatalog()

	// windows are nested, every shorter window is included in the longer ones
	for range 500 {
		at := faker.DateRange(progressNow.AddDate(-2, 0, 0), progressNow)
		for i := 0; i < len(analytics.Periods)-1; i++ {
			if analytics.Periods[i].Contains(at, progressNow) {
				assert.True(t, analytics.Periods[i+1].Contains(at, progressNow))
			}
		}
	}

	week := analytics.DistributionOf(analytics.AggregateParams{ExerciseIDs: ids, Period: analytics.PeriodWeek, Now: progressNow}, list, catalog)
	all := analytics.DistributionOf(analytics.AggregateParams{ExerciseIDs: ids, Period: analytics.PeriodAll, Now: progressNow}, list, catalog)
	allSets := make(map[string]int)
	for i, label := range all.Labels {
		allSets[label] = all.Sets[i]
	}
	for i, label := range week.Labels {
		sets, ok := allSets[label]
		require.True(t, ok, "label %s missing from all-time distribution", label)
		assert.LessOrEqual(t, week.Sets[i], sets)
	}
}

func progressFixtureCatalog() workouts.Catalog {
	_, catalog := progressFixture()
	return catalog
}

func TestParsePeriod(t *testing.T) {
	for _, p := range analytics.Periods {
		parsed, err := analytics.ParsePeriod(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	parsed, err := analytics.ParsePeriod(" 1MONTH ")
	require.NoError(t, err)
	assert.Equal(t, analytics.PeriodMonth, parsed)

	_, err = analytics.ParsePeriod("fortnight")
	assert.Error(t, err)
}

func TestPeriod_Since(t *testing.T) {
	since, ok := analytics.PeriodWeek.Since(progressNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC), since)

	since, ok = analytics.PeriodThreeMonths.Since(progressNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), since)

	_, ok = analytics.PeriodAll.Since(progressNow)
	assert.False(t, ok)
	assert.True(t, analytics.PeriodAll.Contains(time.Time{}, progressNow))
}
