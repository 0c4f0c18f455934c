package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymstats/internal/gymstats/analytics"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level" env:"GYMSTATS_LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path" env:"GYMSTATS_LOGS_PATH, overwrite"`
	LogToConsole  bool   `toml:"log_to_console" env:"GYMSTATS_LOG_TO_CONSOLE, overwrite"`
	LogFormatJSON bool   `toml:"log_format_json" env:"GYMSTATS_LOG_FORMAT_JSON, overwrite"`
	SentryEnabled bool   `toml:"sentry_enabled" env:"GYMSTATS_SENTRY_ENABLED, overwrite"`
	// telemetry
	HoneycombEnabled bool   `toml:"honeycomb_enabled" env:"HONEYCOMB_ENABLED, overwrite"`
	MetricsFile      string `toml:"metrics_file" env:"GYMSTATS_METRICS_FILE, overwrite"`
	// analytics
	DefaultPeriod  string           `toml:"default_period" env:"GYMSTATS_DEFAULT_PERIOD, overwrite"`
	IntensityTiers []analytics.Tier `toml:"intensity_tiers"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the env section of the TOML file, then applies GYMSTATS_* environment overrides.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in %s", strings.ToLower(env), path)
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if cfg.DefaultPeriod == "" {
		cfg.DefaultPeriod = string(analytics.PeriodMonth)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := analytics.ParsePeriod(c.DefaultPeriod); err != nil {
		return fmt.Errorf("default_period: %w", err)
	}
	if _, err := analytics.NewTierTable(c.IntensityTiers); err != nil {
		return fmt.Errorf("intensity_tiers: %w", err)
	}
	return nil
}

// Period returns the parsed default period, validated at load time.
func (c *Config) Period() analytics.Period {
	p, err := analytics.ParsePeriod(c.DefaultPeriod)
	if err != nil {
		return analytics.PeriodMonth
	}
	return p
}

func (c *Config) Tiers() analytics.TierTable {
	table, err := analytics.NewTierTable(c.IntensityTiers)
	if err != nil {
		return analytics.DefaultTiers
	}
	return table
}

// Default is used when no config file is given.
func Default() *Config {
	return &Config{
		Environment:   "development",
		LogLevel:      "info",
		LogToConsole:  true,
		DefaultPeriod: string(analytics.PeriodMonth),
	}
}
