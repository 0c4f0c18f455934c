package main

import (
	"fmt"
	"os"

	"github.com/2beens/gymstats/internal/config"
	"github.com/2beens/gymstats/internal/gymstats/dataset"
	"github.com/2beens/gymstats/internal/gymstats/stats"
	"github.com/2beens/gymstats/internal/logging"
	"github.com/2beens/gymstats/internal/telemetry/metrics"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	env         string
	configPath  string
	metricsFile string
	dataFiles   []string
	userID      string
	jsonOutput  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "gymstats",
		Short:         "gymstats computes training density, intensity and progress",
		Long:          "gymstats reads a training log snapshot (JSON or YAML) and reports workout density, intensity against personal records and progress over time.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.env, "env", "development", "environment [prod | production | dev | development]")
	flags.StringVar(&opts.configPath, "config", "", "path for the TOML config file (defaults are used when empty)")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile, overrides the config")
	flags.StringSliceVar(&opts.dataFiles, "data", nil, "training log snapshot files (.json, .yaml)")
	flags.StringVar(&opts.userID, "user", "", "only consider data of this user")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")

	cmd.AddCommand(
		newProgressCmd(opts),
		newWorkoutCmd(opts),
	)

	return cmd
}

type runtime struct {
	cfg      *config.Config
	service  *stats.Service
	registry *prometheus.Registry
	shutdown func()
}

// bootstrap loads the config and wires logging, telemetry and the stats service.
func (o *rootOptions) bootstrap(cmd *cobra.Command) (*runtime, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.env, o.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if o.metricsFile != "" {
		cfg.MetricsFile = o.metricsFile
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToConsole:     cfg.LogToConsole,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "gymstats-cli",
		Console:          cmd.ErrOrStderr(),
	})
	log.Debugf("running in [%s] environment", cfg.Environment)

	if len(o.dataFiles) == 0 {
		return nil, fmt.Errorf("--data is required")
	}
	ds, err := dataset.LoadFiles(o.dataFiles...)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	shutdownTracing, err := tracing.Setup(cfg.HoneycombEnabled)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	registry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("gymstats", "cli", registry)

	return &runtime{
		cfg:      cfg,
		service:  stats.NewService(ds, metricsManager, cfg.Tiers()),
		registry: registry,
		shutdown: shutdownTracing,
	}, nil
}

func (r *runtime) close() {
	if err := metrics.WriteTextfile(r.cfg.MetricsFile, r.registry); err != nil {
		log.Errorf("metrics: %s", err)
	}
	r.shutdown()
}
