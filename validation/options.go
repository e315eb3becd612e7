// SPDX-License-Identifier: MIT

// Package validation: functional configuration for the array validators.
// This file defines:
//   - Finiteness, the tri-state numeric policy (plus its "unset" zero value),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves derived defaults.
//
// Notes:
//   - The default finiteness policy depends on the distance-matrix mode:
//     infinities are tolerated by default only when distance matrices are
//     expected (+Inf encodes "never connected"). Outside that mode the
//     default rejects every non-finite value. An explicit WithFiniteness
//     always wins over the mode-derived default.
//   - NaN is never tolerated unless AllowNaNInf is requested explicitly.
package validation

import (
	"fmt"
	"strings"
)

// Finiteness is the numeric policy applied to array entries.
type Finiteness int

const (
	// FinitenessDefault defers to the mode-derived default (see gatherOptions).
	FinitenessDefault Finiteness = iota

	// RejectNonFinite fails on any NaN or ±Inf.
	RejectNonFinite

	// AllowInf tolerates ±Inf but fails on NaN.
	AllowInf

	// AllowNaNInf tolerates both NaN and ±Inf.
	AllowNaNInf
)

// String implements fmt.Stringer; the names are the ones ParseFiniteness accepts.
func (f Finiteness) String() string {
	switch f {
	case FinitenessDefault:
		return "default"
	case RejectNonFinite:
		return "reject"
	case AllowInf:
		return "allow-inf"
	case AllowNaNInf:
		return "allow-nan-inf"
	default:
		return fmt.Sprintf("Finiteness(%d)", int(f))
	}
}

// ParseFiniteness maps a configuration string to a policy.
// Besides the String names it accepts the boolean spellings used by
// array-library callers: "true" (reject), "false" (allow-inf) and "allow-nan"
// (allow-nan-inf). Empty input means FinitenessDefault.
func ParseFiniteness(s string) (Finiteness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return FinitenessDefault, nil
	case "reject", "true":
		return RejectNonFinite, nil
	case "allow-inf", "false":
		return AllowInf, nil
	case "allow-nan-inf", "allow-nan":
		return AllowNaNInf, nil
	default:
		return FinitenessDefault, fmt.Errorf("validation: unknown finiteness policy %q", s)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDistanceMatrices treats 2D samples as point clouds.
	DefaultDistanceMatrices = false

	// DefaultFiniteness leaves the policy to the distance-matrix mode.
	DefaultFiniteness = FinitenessDefault

	// DefaultCopy returns inputs without copying.
	DefaultCopy = false

	// DefaultWarningsAsErrors keeps dimensionality warnings non-fatal.
	DefaultWarningsAsErrors = false
)

// ---------- Internal panic messages ----------

const (
	panicFinitenessInvalid = "validation: WithFiniteness: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	distanceMatrices bool           // DefaultDistanceMatrices
	finiteness       Finiteness     // DefaultFiniteness; resolved by gatherOptions
	copy             bool           // DefaultCopy
	warningsAsErrors bool           // DefaultWarningsAsErrors
	onWarning        WarningHandler // DiscardWarnings when unset
	observer         Observer       // optional
}

// WithDistanceMatrices declares that every sample is a pairwise-distance
// matrix: samples must be square and infinities are tolerated by default.
func WithDistanceMatrices(on bool) Option {
	return func(o *Options) { o.distanceMatrices = on }
}

// WithFiniteness sets the finiteness policy explicitly.
// Panics on values outside the declared constants (programmer error).
func WithFiniteness(p Finiteness) Option {
	if p < FinitenessDefault || p > AllowNaNInf {
		panic(panicFinitenessInvalid)
	}

	return func(o *Options) { o.finiteness = p }
}

// WithCopy makes the validators return a deep copy of the input.
func WithCopy(on bool) Option {
	return func(o *Options) { o.copy = on }
}

// WithWarningHandler installs the receiver of dimensionality warnings.
// A nil handler discards warnings.
func WithWarningHandler(h WarningHandler) Option {
	return func(o *Options) { o.onWarning = h }
}

// WithWarningsAsErrors turns the first dimensionality warning into an
// ErrDimensionality failure.
func WithWarningsAsErrors(on bool) Option {
	return func(o *Options) { o.warningsAsErrors = on }
}

// WithObserver installs an Observer notified of every check outcome and warning.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// gatherOptions applies setters over the defaults and resolves the finiteness
// policy when it was left unset.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		distanceMatrices: DefaultDistanceMatrices,
		finiteness:       DefaultFiniteness,
		copy:             DefaultCopy,
		warningsAsErrors: DefaultWarningsAsErrors,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.onWarning == nil {
		o.onWarning = DiscardWarnings
	}
	if o.finiteness == FinitenessDefault {
		o.finiteness = RejectNonFinite
		if o.distanceMatrices {
			o.finiteness = AllowInf
		}
	}

	return o
}
