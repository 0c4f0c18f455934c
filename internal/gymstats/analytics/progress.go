package analytics

import (
	"sort"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/workouts"
)

type AggregateParams struct {
	ExerciseIDs []string
	// StartDate and EndDate are inclusive ISO dates (YYYY-MM-DD), empty for no bound.
	StartDate string
	EndDate   string
	Period    Period
	// Now is the end of the period window.
	Now time.Time
}

// DailyStat holds the best amount and the number of sets done on a calendar date.
type DailyStat struct {
	Date     string  `json:"date"`
	MaxValue float64 `json:"maxValue"`
	Sets     int     `json:"sets"`
}

// ExerciseStats represents the progress of an exercise. Max, total and the daily
// series cover the whole date range, the averages only the period window.
type ExerciseStats struct {
	ExerciseID   string      `json:"exerciseId"`
	Name         string      `json:"name"`
	Type         StatType    `json:"type"`
	MaxValue     float64     `json:"maxValue"`
	TotalValue   float64     `json:"totalValue"`
	TotalSets    int         `json:"totalSets"`
	AverageValue float64     `json:"averageValue"`
	AverageSets  float64     `json:"averageSets"`
	Daily        []DailyStat `json:"daily"`
}

// Distribution holds parallel arrays of per exercise totals within the period window.
type Distribution struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Sets   []int     `json:"sets"`
}

type datedAmount struct {
	date   string
	at     time.Time
	amount float64
}

// Aggregate computes the progress statistics of each requested exercise.
// Exercises with no sets in the date range are left out of the result.
func Aggregate(params AggregateParams, list []workouts.Workout, catalog workouts.Catalog) []ExerciseStats {
	filtered := FilterByDate(list, params.StartDate, params.EndDate)

	results := make([]ExerciseStats, 0, len(params.ExerciseIDs))
	for _, exerciseID := range uniqueIDs(params.ExerciseIDs) {
		holdBased := resolveHold(catalog, exerciseID)
		amounts := collectAmounts(filtered, exerciseID, holdBased)
		if len(amounts) == 0 {
			continue
		}

		stats := ExerciseStats{
			ExerciseID: exerciseID,
			Name:       catalog.Name(exerciseID),
			Type:       StatTypeRepetitions,
			TotalSets:  len(amounts),
			Daily:      dailySeries(amounts),
		}
		if holdBased {
			stats.Type = StatTypeTime
		}
		for _, a := range amounts {
			stats.MaxValue = max(stats.MaxValue, a.amount)
			stats.TotalValue += a.amount
		}

		windowed := withinPeriod(amounts, params.Period, params.Now)
		if len(windowed) > 0 {
			var total float64
			days := make(map[string]struct{})
			for _, a := range windowed {
				total += a.amount
				days[a.date] = struct{}{}
			}
			stats.AverageValue = total / float64(len(windowed))
			stats.AverageSets = float64(len(windowed)) / float64(len(days))
		}

		results = append(results, stats)
	}

	return results
}

// DistributionOf sums amounts and sets per exercise within the period window.
// Exercises with no data in the window are excluded.
func DistributionOf(params AggregateParams, list []workouts.Workout, catalog workouts.Catalog) Distribution {
	filtered := FilterByDate(list, params.StartDate, params.EndDate)

	var dist Distribution
	for _, exerciseID := range uniqueIDs(params.ExerciseIDs) {
		holdBased := resolveHold(catalog, exerciseID)
		windowed := withinPeriod(collectAmounts(filtered, exerciseID, holdBased), params.Period, params.Now)
		var total float64
		for _, a := range windowed {
			total += a.amount
		}
		if len(windowed) == 0 || total == 0 {
			continue
		}
		dist.Labels = append(dist.Labels, catalog.Name(exerciseID))
		dist.Values = append(dist.Values, total)
		dist.Sets = append(dist.Sets, len(windowed))
	}
	return dist
}

// BuildDistribution returns the cross exercise distribution, or nil when fewer
// than two exercises are requested or carry data, since a proportional view
// of a single exercise says nothing.
func BuildDistribution(params AggregateParams, list []workouts.Workout, catalog workouts.Catalog) *Distribution {
	if len(uniqueIDs(params.ExerciseIDs)) < 2 {
		return nil
	}
	dist := DistributionOf(params, list, catalog)
	if len(dist.Labels) < 2 {
		return nil
	}
	return &dist
}

// FilterByDate keeps workouts whose ISO date lies in [start, end].
// Dates are compared as strings, the way they are stored.
func FilterByDate(list []workouts.Workout, start, end string) []workouts.Workout {
	start, end = datePrefix(start), datePrefix(end)
	if start == "" && end == "" {
		return list
	}
	filtered := make([]workouts.Workout, 0, len(list))
	for _, w := range list {
		key := w.DateKey()
		if start != "" && key < start {
			continue
		}
		if end != "" && key > end {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}

func datePrefix(date string) string {
	if len(date) > len(time.DateOnly) {
		return date[:len(time.DateOnly)]
	}
	return date
}

func collectAmounts(list []workouts.Workout, exerciseID string, holdBased bool) []datedAmount {
	var amounts []datedAmount
	for _, w := range list {
		for _, s := range w.Sets {
			if s.ExerciseID != exerciseID {
				continue
			}
			amounts = append(amounts, datedAmount{
				date:   w.DateKey(),
				at:     w.Date,
				amount: Amount(s, holdBased),
			})
		}
	}
	return amounts
}

func withinPeriod(amounts []datedAmount, period Period, now time.Time) []datedAmount {
	windowed := make([]datedAmount, 0, len(amounts))
	for _, a := range amounts {
		if period.Contains(a.at, now) {
			windowed = append(windowed, a)
		}
	}
	return windowed
}

func dailySeries(amounts []datedAmount) []DailyStat {
	day2stat := make(map[string]DailyStat)
	for _, a := range amounts {
		stat := day2stat[a.date]
		stat.Date = a.date
		stat.MaxValue = max(stat.MaxValue, a.amount)
		stat.Sets++
		day2stat[a.date] = stat
	}

	series := make([]DailyStat, 0, len(day2stat))
	for _, stat := range day2stat {
		series = append(series, stat)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
