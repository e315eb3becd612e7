// SPDX-License-Identifier: MIT

package main

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtda/config"
	"github.com/katalvlaran/lvtda/internal/observability"
	"github.com/katalvlaran/lvtda/ndarray"
	"github.com/katalvlaran/lvtda/validation"
)

// runner executes every check of one job and remembers whether any failed.
// A failing check is logged and the remaining checks still run.
type runner struct {
	logger   *zap.Logger
	observer validation.Observer
	failed   int
}

func (r *runner) run(cfg *config.Config) {
	if cfg.Params.Enabled() {
		r.params(cfg.Params)
	}
	for _, j := range cfg.PointClouds {
		r.pointClouds(j)
	}
	for _, j := range cfg.Diagrams {
		r.diagrams(j)
	}
}

func (r *runner) fail(msg string, err error, fields ...zap.Field) {
	r.failed++
	r.logger.Error(msg, append(fields, zap.Error(err))...)
}

func (r *runner) params(j config.ParamsJob) {
	refs, err := config.LoadReferences(j.References)
	if err != nil {
		r.fail("load references", err, zap.String("path", j.References))
		return
	}
	params, err := config.LoadParams(j.Values)
	if err != nil {
		r.fail("load params", err, zap.String("path", j.Values))
		return
	}
	err = validation.ValidateParams(params, refs,
		validation.WithExclude(j.Exclude...),
		validation.WithParamObserver(r.observer),
	)
	if err != nil {
		r.fail("params invalid", err, zap.String("path", j.Values))
		return
	}
	r.logger.Info("params valid", zap.String("path", j.Values), zap.Int("count", len(params)))
}

func (r *runner) pointClouds(j config.PointCloudJob) {
	opts, err := j.Options()
	if err != nil {
		r.fail("point cloud options", err, zap.String("path", j.Path))
		return
	}
	x, err := config.LoadBatch(j.Path)
	if err != nil {
		r.fail("load point clouds", err, zap.String("path", j.Path))
		return
	}
	opts = append(opts,
		validation.WithWarningHandler(observability.ZapWarnings(r.logger.With(zap.String("path", j.Path)))),
		validation.WithObserver(r.observer),
	)
	if _, err = validation.CheckPointClouds(x, opts...); err != nil {
		r.fail("point clouds invalid", err, zap.String("path", j.Path))
		return
	}
	r.logger.Info("point clouds valid",
		zap.String("path", j.Path),
		zap.Int("samples", x.Len()),
		zap.Bool("ragged", x.Ragged()),
		zap.Bool("distance_matrices", j.DistanceMatrices),
	)
}

func (r *runner) diagrams(j config.DiagramJob) {
	x, err := config.LoadArray(j.Path)
	if err != nil {
		r.fail("load diagrams", err, zap.String("path", j.Path))
		return
	}
	if _, err = validation.CheckDiagrams(x, validation.WithObserver(r.observer)); err != nil {
		r.fail("diagrams invalid", err, zap.String("path", j.Path))
		return
	}
	r.logger.Info("diagrams valid", zap.String("path", j.Path), zap.String("shape", ndarray.FormatShape(x.Shape())))
}
