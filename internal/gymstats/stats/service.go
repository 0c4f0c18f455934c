package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/analytics"
	"github.com/2beens/gymstats/internal/gymstats/workouts"
	"github.com/2beens/gymstats/internal/telemetry/metrics"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type workoutsSource interface {
	ListWorkouts(ctx context.Context, params workouts.ListParams) ([]workouts.Workout, error)
	ListExercises(ctx context.Context) ([]workouts.Exercise, error)
	ListPersonalRecords(ctx context.Context, userID string) ([]workouts.PersonalRecord, error)
}

// Service fetches a user's training log and runs the analytics over it.
// It holds no state between calls.
type Service struct {
	source  workoutsSource
	metrics *metrics.Manager
	tiers   analytics.TierTable
}

func NewService(source workoutsSource, metricsManager *metrics.Manager, tiers analytics.TierTable) *Service {
	if len(tiers) == 0 {
		tiers = analytics.DefaultTiers
	}
	return &Service{
		source:  source,
		metrics: metricsManager,
		tiers:   tiers,
	}
}

type ProgressParams struct {
	UserID      string
	ExerciseIDs []string
	// From and To are inclusive ISO dates, empty for no bound.
	From   string
	To     string
	Period analytics.Period
	// Now ends the period window, time.Now() when zero.
	Now time.Time
}

type ProgressReport struct {
	Period       analytics.Period          `json:"period"`
	Exercises    []analytics.ExerciseStats `json:"exercises"`
	Distribution *analytics.Distribution   `json:"distribution,omitempty"`
}

// Progress returns per exercise progress statistics and, when several exercises
// are requested, their distribution within the period.
func (s *Service) Progress(ctx context.Context, params ProgressParams) (_ *ProgressReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.gymstats.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Period == "" {
		params.Period = analytics.PeriodAll
	}
	if params.Now.IsZero() {
		params.Now = time.Now()
	}

	span.SetAttributes(
		attribute.String("user_id", params.UserID),
		attribute.StringSlice("exercise_ids", params.ExerciseIDs),
		attribute.String("period", params.Period.String()),
	)

	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	workoutList, err := s.source.ListWorkouts(ctx, workouts.ListParams{UserID: params.UserID})
	if err != nil {
		s.metrics.CounterSourceErrors.WithLabelValues("list_workouts").Inc()
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	s.checkUnknownExercises(catalog, workoutList)

	start := time.Now()
	aggParams := analytics.AggregateParams{
		ExerciseIDs: params.ExerciseIDs,
		StartDate:   params.From,
		EndDate:     params.To,
		Period:      params.Period,
		Now:         params.Now,
	}
	report := &ProgressReport{
		Period:       params.Period,
		Exercises:    analytics.Aggregate(aggParams, workoutList, catalog),
		Distribution: analytics.BuildDistribution(aggParams, workoutList, catalog),
	}
	s.metrics.HistogramComputeDuration.WithLabelValues("progress").Observe(time.Since(start).Seconds())
	s.metrics.CounterProgressReports.Inc()
	s.metrics.GaugeLastReportExercises.Set(float64(len(report.Exercises)))

	log.WithFields(log.Fields{
		"user":      params.UserID,
		"period":    params.Period,
		"workouts":  len(workoutList),
		"exercises": len(report.Exercises),
	}).Debugln("progress report computed")

	return report, nil
}

// WorkoutSummary returns density and intensity figures for a single workout.
func (s *Service) WorkoutSummary(ctx context.Context, userID, workoutID string) (_ *analytics.WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.gymstats.workoutSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("workout_id", workoutID),
	)

	workoutList, err := s.source.ListWorkouts(ctx, workouts.ListParams{UserID: userID})
	if err != nil {
		s.metrics.CounterSourceErrors.WithLabelValues("list_workouts").Inc()
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	var (
		workout workouts.Workout
		found   bool
	)
	for _, w := range workoutList {
		if w.ID == workoutID {
			workout, found = w, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrWorkoutNotFound, workoutID)
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	s.checkUnknownExercises(catalog, []workouts.Workout{workout})

	records, err := s.source.ListPersonalRecords(ctx, userID)
	if err != nil {
		s.metrics.CounterSourceErrors.WithLabelValues("list_personal_records").Inc()
		return nil, fmt.Errorf("list personal records: %w", err)
	}

	start := time.Now()
	summary := analytics.SummarizeWorkout(workout, catalog, records, s.tiers)
	s.metrics.HistogramComputeDuration.WithLabelValues("workout_summary").Observe(time.Since(start).Seconds())
	s.metrics.CounterWorkoutSummaries.Inc()

	return &summary, nil
}

func (s *Service) catalog(ctx context.Context) (workouts.Catalog, error) {
	exercises, err := s.source.ListExercises(ctx)
	if err != nil {
		s.metrics.CounterSourceErrors.WithLabelValues("list_exercises").Inc()
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return workouts.NewCatalog(exercises), nil
}

// checkUnknownExercises only reports malformed sets, the analytics still run on them.
func (s *Service) checkUnknownExercises(catalog workouts.Catalog, list []workouts.Workout) {
	unknown := catalog.UnknownRefs(list)
	if unknown == 0 {
		return
	}
	s.metrics.CounterUnknownExerciseSets.Add(float64(unknown))
	log.Warnf("%d sets reference exercises missing from the catalog, counted as repetitions", unknown)
}
