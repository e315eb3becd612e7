// SPDX-License-Identifier: MIT

package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvtda/validation"
)

// Outcome labels, most specific first.
const (
	OutcomeOK              = "ok"
	OutcomeMissingKey      = "missing_key"
	OutcomeTypeMismatch    = "type_mismatch"
	OutcomeValueNotAllowed = "value_not_allowed"
	OutcomeNotSquare       = "not_square"
	OutcomeNonFinite       = "non_finite"
	OutcomeDiagram         = "invalid_diagram"
	OutcomeShape           = "shape"
	OutcomeDimensionality  = "dimensionality"
	OutcomeError           = "error"
)

// Metrics counts validator outcomes and warnings. It implements
// validation.Observer; counters are safe for concurrent use.
type Metrics struct {
	// Validator calls by operation and outcome. Watch for: non-ok share per op.
	ChecksTotal *prometheus.CounterVec

	// Dimensionality warnings by operation and kind. Watch for: callers that
	// keep feeding square point clouds (likely undeclared distance matrices).
	WarningsTotal *prometheus.CounterVec
}

var _ validation.Observer = (*Metrics)(nil)

// NewMetrics creates the counters and registers them on reg.
// Registration panics on duplicate metrics, as MustRegister does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvtda_checks_total",
				Help: "Total number of validator calls by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		WarningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvtda_warnings_total",
				Help: "Total number of dimensionality warnings by operation and kind",
			},
			[]string{"op", "kind"},
		),
	}
	reg.MustRegister(m.ChecksTotal, m.WarningsTotal)

	return m
}

// ObserveCheck implements validation.Observer.
func (m *Metrics) ObserveCheck(op string, err error) {
	m.ChecksTotal.WithLabelValues(op, Outcome(err)).Inc()
}

// ObserveWarning implements validation.Observer.
func (m *Metrics) ObserveWarning(w *validation.Warning) {
	m.WarningsTotal.WithLabelValues(w.Op, w.Kind.String()).Inc()
}

// Outcome maps a validator error to a bounded label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, validation.ErrMissingKey):
		return OutcomeMissingKey
	case errors.Is(err, validation.ErrTypeMismatch):
		return OutcomeTypeMismatch
	case errors.Is(err, validation.ErrValueNotAllowed):
		return OutcomeValueNotAllowed
	case errors.Is(err, validation.ErrNotSquare):
		return OutcomeNotSquare
	case errors.Is(err, validation.ErrNonFinite):
		return OutcomeNonFinite
	case errors.Is(err, validation.ErrHomologyDimension), errors.Is(err, validation.ErrBirthAfterDeath):
		return OutcomeDiagram
	case errors.Is(err, validation.ErrShape):
		return OutcomeShape
	case errors.Is(err, validation.ErrDimensionality):
		return OutcomeDimensionality
	default:
		return OutcomeError
	}
}
