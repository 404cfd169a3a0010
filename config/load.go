package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"imbalance-bars-go/infrastructure/logger"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env         string             `yaml:"env"`
	Log         logger.Config      `yaml:"log"`
	MetricsAddr string             `yaml:"metricsAddr"`
	Datasets    map[string]Dataset `yaml:"datasets"`
}

// Dataset describes one observation series and how to resample it.
type Dataset struct {
	Input         string  `yaml:"input"`         // observation CSV path
	Output        string  `yaml:"output"`        // bar output path
	Format        string  `yaml:"format"`        // csv, json or parquet
	Alpha         float64 `yaml:"alpha"`         // threshold smoothing weight, (0, 1]
	SummaryOutput string  `yaml:"summaryOutput"` // optional per-dataset summary CSV
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides fields from env vars if present.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("IB_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	return cfg, Validate(cfg)
}

// Validate ensures required fields are present.
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return errors.New("env is required")
	}
	if len(cfg.Datasets) == 0 {
		return errors.New("datasets config is required")
	}
	for name, ds := range cfg.Datasets {
		if ds.Input == "" {
			return fmt.Errorf("dataset %s input is required", name)
		}
		if ds.Output == "" {
			return fmt.Errorf("dataset %s output is required", name)
		}
		if ds.Alpha <= 0 || ds.Alpha > 1 {
			return fmt.Errorf("dataset %s alpha must be in (0, 1]", name)
		}
		switch strings.ToLower(ds.Format) {
		case "csv", "json", "parquet":
		default:
			return fmt.Errorf("dataset %s format must be csv, json or parquet", name)
		}
	}
	return nil
}
