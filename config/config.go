// SPDX-License-Identifier: MIT

// Package config loads tdacheck jobs: which parameter tables and which data
// files to validate, and how.
//
// Jobs are read with viper (YAML file, LVTDA_* environment overrides, bound
// command-line flags); reference tables, parameter maps and data files are
// plain YAML decoded with yaml.v3, so `.inf` and `.nan` carry non-finite values.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtda/validation"
)

// ErrInvalidConfig is returned for unreadable or inconsistent job files.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. LVTDA_LOG_LEVEL.
const EnvPrefix = "LVTDA"

// Config is a validation job.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// MetricsFile, when set, receives the Prometheus text exposition of the run.
	MetricsFile string `mapstructure:"metrics_file"`

	// Params describes an optional parameter-table check.
	Params ParamsJob `mapstructure:"params"`

	// PointClouds lists point cloud / distance matrix files.
	PointClouds []PointCloudJob `mapstructure:"point_clouds"`

	// Diagrams lists persistence diagram files.
	Diagrams []DiagramJob `mapstructure:"diagrams"`
}

// ParamsJob points at a reference table and a parameter map.
type ParamsJob struct {
	References string   `mapstructure:"references"`
	Values     string   `mapstructure:"values"`
	Exclude    []string `mapstructure:"exclude"`
}

// Enabled reports whether a parameter check was configured.
func (p ParamsJob) Enabled() bool { return p.References != "" || p.Values != "" }

// PointCloudJob is one point cloud file and its validation mode.
type PointCloudJob struct {
	Path             string `mapstructure:"path"`
	DistanceMatrices bool   `mapstructure:"distance_matrices"`
	Finiteness       string `mapstructure:"finiteness"`
}

// Options translates the job into validator options.
func (j PointCloudJob) Options() ([]validation.Option, error) {
	p, err := validation.ParseFiniteness(j.Finiteness)
	if err != nil {
		return nil, fmt.Errorf("%w: point cloud %q: %w", ErrInvalidConfig, j.Path, err)
	}

	return []validation.Option{
		validation.WithDistanceMatrices(j.DistanceMatrices),
		validation.WithFiniteness(p),
	}, nil
}

// DiagramJob is one persistence diagram file.
type DiagramJob struct {
	Path string `mapstructure:"path"`
}

// Load reads the job at path. Flags, when non-nil, are bound so that
// --log-level and --metrics-file override the file; LVTDA_* variables
// override both file and defaults.
// Relative data paths are resolved against the directory of the job file.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_file", "")

	if path == "" {
		return nil, fmt.Errorf("%w: no job file given", ErrInvalidConfig)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{"log_level": "log-level", "metrics_file": "metrics-file"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("%w: bind flag %s: %w", ErrInvalidConfig, name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrInvalidConfig, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks internal consistency without touching the data files.
func (c *Config) Validate() error {
	if c.Params.Enabled() && (c.Params.References == "" || c.Params.Values == "") {
		return fmt.Errorf("%w: params needs both references and values", ErrInvalidConfig)
	}
	for i, j := range c.PointClouds {
		if j.Path == "" {
			return fmt.Errorf("%w: point_clouds[%d]: empty path", ErrInvalidConfig, i)
		}
		if _, err := j.Options(); err != nil {
			return err
		}
	}
	for i, j := range c.Diagrams {
		if j.Path == "" {
			return fmt.Errorf("%w: diagrams[%d]: empty path", ErrInvalidConfig, i)
		}
	}
	if !c.Params.Enabled() && len(c.PointClouds) == 0 && len(c.Diagrams) == 0 {
		return fmt.Errorf("%w: nothing to validate", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) resolvePaths(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Params.References = resolve(c.Params.References)
	c.Params.Values = resolve(c.Params.Values)
	for i := range c.PointClouds {
		c.PointClouds[i].Path = resolve(c.PointClouds[i].Path)
	}
	for i := range c.Diagrams {
		c.Diagrams[i].Path = resolve(c.Diagrams[i].Path)
	}
}
