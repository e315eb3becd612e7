// SPDX-License-Identifier: MIT
// Package validation: sentinel error set.
// Parameter validation reports ErrMissingKey, ErrTypeMismatch and
// ErrValueNotAllowed. Array validation reports ErrShape, optionally refined by
// ErrNotSquare, ErrNonFinite, ErrHomologyDimension or ErrBirthAfterDeath; every
// refined array failure also matches ErrShape. Callers match with errors.Is.

package validation

import (
	"errors"
	"fmt"
	"strings"
)

// NOTE ON PRIORITY
// ----------------
// Params:  unknown key -> missing key -> type -> membership -> predicate -> nested.
// Arrays:  input kind -> rank -> trailing extent -> squareness -> finiteness
//          -> value rules (diagrams) -> warnings.

var (
	// ErrMissingKey is returned when a required reference key is absent from
	// the parameters, or a parameter has no entry in the reference table.
	ErrMissingKey = errors.New("validation: missing key")

	// ErrTypeMismatch is returned when a parameter's runtime kind is not
	// among the kinds declared by its reference.
	ErrTypeMismatch = errors.New("validation: type mismatch")

	// ErrValueNotAllowed is returned when a parameter is not a member of the
	// reference's allowed set, or the reference predicate rejects it.
	ErrValueNotAllowed = errors.New("validation: value not allowed")

	// ErrShape is the umbrella for every structural or numeric array failure.
	ErrShape = errors.New("validation: invalid shape")

	// ErrNotSquare refines ErrShape when a distance matrix is not square.
	ErrNotSquare = errors.New("validation: matrix is not square")

	// ErrNonFinite refines ErrShape when NaN or ±Inf violates the finiteness policy.
	ErrNonFinite = errors.New("validation: non-finite value")

	// ErrHomologyDimension refines ErrShape when a diagram dimension is not a
	// non-negative integer.
	ErrHomologyDimension = errors.New("validation: invalid homology dimension")

	// ErrBirthAfterDeath refines ErrShape when a diagram point lies below the diagonal.
	ErrBirthAfterDeath = errors.New("validation: birth after death")

	// ErrDimensionality is returned instead of a warning when warnings are
	// promoted to errors (WithWarningsAsErrors).
	ErrDimensionality = errors.New("validation: ambiguous dimensionality")
)

// ParamError reports a parameter failure together with its path, e.g.
// "homology_dimensions[2]" or "metric_params.p".
type ParamError struct {
	Path   string // dotted/indexed location of the offending value
	Err    error  // one of ErrMissingKey, ErrTypeMismatch, ErrValueNotAllowed
	Detail string // human-readable context, may be empty
}

// Error implements error.
func (e *ParamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Path)
	}

	return fmt.Sprintf("%v: %q: %s", e.Err, e.Path, e.Detail)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParamError) Unwrap() error { return e.Err }

// ArrayError reports an array failure. It always matches ErrShape and, when
// Reason is set, the refining sentinel as well.
type ArrayError struct {
	Op     string // OpPointClouds or OpDiagrams
	Sample int    // offending sample index, -1 when the whole input is at fault
	Reason error  // refining sentinel, nil for plain shape failures
	Detail string // shapes, offsets, counts
}

// Error implements error.
func (e *ArrayError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	if e.Sample >= 0 {
		fmt.Fprintf(&b, "sample %d: ", e.Sample)
	}
	if e.Reason != nil {
		b.WriteString(e.Reason.Error())
	} else {
		b.WriteString(ErrShape.Error())
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap exposes ErrShape and the refining sentinel.
func (e *ArrayError) Unwrap() []error {
	if e.Reason == nil || e.Reason == ErrShape {
		return []error{ErrShape}
	}

	return []error{ErrShape, e.Reason}
}

// shapeErrorf builds an ArrayError for a whole-input shape violation.
func shapeErrorf(op string, format string, args ...any) error {
	return &ArrayError{Op: op, Sample: -1, Detail: fmt.Sprintf(format, args...)}
}

// sampleErrorf builds an ArrayError tied to one sample.
func sampleErrorf(op string, sample int, reason error, format string, args ...any) error {
	return &ArrayError{Op: op, Sample: sample, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
