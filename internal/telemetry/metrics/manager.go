package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterProgressReports     prometheus.Counter
	CounterWorkoutSummaries    prometheus.Counter
	CounterUnknownExerciseSets prometheus.Counter
	CounterSourceErrors        *prometheus.CounterVec

	// gauges
	GaugeLastReportExercises prometheus.Gauge

	// histograms
	HistogramComputeDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("gymstats", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymstats", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterProgressReports := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_reports",
		Help:      "The total number of computed progress reports",
	})
	counterWorkoutSummaries := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_summaries",
		Help:      "The total number of computed workout summaries",
	})
	counterUnknownExerciseSets := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "unknown_exercise_sets",
		Help:      "The total number of sets referencing an exercise missing from the catalog",
	})
	counterSourceErrors := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "source_errors",
		Help:      "The total number of failed reads from the workouts source",
	}, []string{"op"})

	gaugeLastReportExercises := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "last_report_exercises",
		Help:      "Number of exercises present in the last progress report",
	})

	histogramComputeDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "compute_duration_seconds",
		Help:      "Histogram of analytics computation time in seconds",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"op"})

	return &Manager{
		CounterProgressReports:     counterProgressReports,
		CounterWorkoutSummaries:    counterWorkoutSummaries,
		CounterUnknownExerciseSets: counterUnknownExerciseSets,
		CounterSourceErrors:        counterSourceErrors,
		GaugeLastReportExercises:   gaugeLastReportExercises,
		HistogramComputeDuration:   histogramComputeDuration,
	}
}
