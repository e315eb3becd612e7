// SPDX-License-Identifier: MIT

// Command tdacheck validates TDA inputs described by a YAML job file:
// estimator parameter tables, point cloud or distance matrix collections,
// and persistence diagram collections.
//
//	tdacheck --config job.yaml [--log-level debug] [--metrics-file run.prom]
//
// Exit status is 0 when every check passes, 1 when any check fails and 2
// when the job itself cannot be loaded.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtda/config"
	"github.com/katalvlaran/lvtda/internal/observability"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, nil))
}

// run executes one job. A nil logger is built from the loaded configuration;
// tests pass their own.
func run(args []string, stderr io.Writer, logger *zap.Logger) int {
	flags := pflag.NewFlagSet("tdacheck", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	jobPath := flags.StringP("config", "c", "", "path to the YAML job file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("metrics-file", "", "write Prometheus text metrics of the run to this file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(*jobPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	if logger == nil {
		if logger, err = observability.NewLogger(cfg.LogLevel); err != nil {
			fmt.Fprintf(stderr, "logger: %v\n", err)
			return exitUsage
		}
		defer func() { _ = logger.Sync() }()
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	reg := prometheus.NewRegistry()
	r := &runner{logger: logger, observer: observability.NewMetrics(reg)}
	r.run(cfg)

	if cfg.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("write metrics", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}

	if r.failed > 0 {
		logger.Warn("validation failed", zap.Int("failures", r.failed))
		return exitInvalid
	}
	logger.Info("validation passed")

	return exitOK
}
