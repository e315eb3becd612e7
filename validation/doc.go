// Package validation checks and normalizes the inputs of topological data
// analysis routines before any numerical work starts.
//
// The validation package provides:
//
//   - ValidateParams: checks a parameter map against a reference table of
//     accepted kinds, allowed values and nested list/map specs. Failures are
//     ErrMissingKey, ErrTypeMismatch or ErrValueNotAllowed.
//   - CheckPointClouds: accepts a stacked (samples, rows, cols) array or a
//     ragged ndarray.Sequence of 2D arrays holding point clouds or distance
//     matrices. Enforces rank, squareness (distance matrices) and a tri-state
//     finiteness policy; reports ambiguous shapes as warnings.
//   - CheckDiagrams: accepts (samples, points, 3) persistence diagrams and
//     enforces the (birth, death, dimension) layout.
//
// Every array failure matches ErrShape; refined causes (ErrNotSquare,
// ErrNonFinite, ErrHomologyDimension, ErrBirthAfterDeath) match as well.
//
// Warnings never fail a call. They are delivered synchronously to the
// handler installed with WithWarningHandler (discarded by default), and to an
// optional Observer together with per-call outcomes.
//
// Example:
//
//	clouds, _ := ndarray.SequenceFrom2D(a, b)
//	var warns []*validation.Warning
//	_, err := validation.CheckPointClouds(clouds,
//		validation.WithWarningHandler(validation.CollectWarnings(&warns)))
//
// All functions are pure and safe for concurrent use as long as the handler
// and observer are.
package validation
