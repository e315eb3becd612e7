// SPDX-License-Identifier: MIT

// Package validation - point cloud / distance matrix validation.
//
// Purpose:
//   - Accept either a homogeneous rank-3 array (samples × rows × columns) or a
//     ragged Sequence of rank-2 arrays.
//   - Enforce squareness in distance-matrix mode, the finiteness policy, and
//     report structurally ambiguous inputs as warnings.
//
// Determinism & Performance:
//   - Samples are visited in index order; the first offending sample is reported.
//   - One pass over the data for finiteness; no allocations unless copying.
package validation

import (
	"github.com/katalvlaran/lvtda/ndarray"
)

const (
	pointCloudRank = 3 // rank of a stacked collection
	sampleRank     = 2 // rank of one point cloud / distance matrix
)

// CheckPointClouds validates a collection of point clouds or distance matrices.
//
// Implementation:
//   - Stage 1: dispatch on the representation (*ndarray.Array or ndarray.Sequence);
//     anything else, nil, or an empty collection is ErrShape.
//   - Stage 2: rank checks: a stacked array must be rank 3, every sequence
//     member rank 2.
//   - Stage 3: with WithDistanceMatrices(true) every sample must be square (ErrNotSquare).
//   - Stage 4: finiteness under the effective policy (ErrNonFinite).
//   - Stage 5: warnings in point-cloud mode: all samples square (SquareSamples);
//     sequence members with differing column counts (InconsistentColumns).
//     Differing row counts alone are expected and never warn.
//   - Stage 6: optional deep copy.
//
// Returns the validated batch (the input itself unless WithCopy(true)).
// Errors: ErrShape and its refinements ErrNotSquare / ErrNonFinite, or
// ErrDimensionality under WithWarningsAsErrors.
//
// Complexity: O(total size).
func CheckPointClouds(x ndarray.Batch, opts ...Option) (ndarray.Batch, error) {
	o := gatherOptions(opts...)
	out, err := checkPointClouds(x, &o)
	if o.observer != nil {
		o.observer.ObserveCheck(OpPointClouds, err)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func checkPointClouds(x ndarray.Batch, o *Options) (ndarray.Batch, error) {
	switch v := x.(type) {
	case nil:
		return nil, shapeErrorf(OpPointClouds, "nil input")
	case *ndarray.Array:
		if v == nil {
			return nil, shapeErrorf(OpPointClouds, "nil input")
		}
		return checkCloudArray(v, o)
	case ndarray.Sequence:
		return checkCloudSequence(v, o)
	default:
		return nil, shapeErrorf(OpPointClouds, "unsupported batch type %T", x)
	}
}

// checkCloudArray validates a stacked (samples, rows, cols) array. All samples
// share one shape, so squareness is decided once.
func checkCloudArray(a *ndarray.Array, o *Options) (ndarray.Batch, error) {
	if a.Ndim() != pointCloudRank {
		return nil, shapeErrorf(OpPointClouds,
			"expected a 3D array or a sequence of 2D arrays, got shape %s", ndarray.FormatShape(a.Shape()))
	}
	if a.Len() == 0 {
		return nil, shapeErrorf(OpPointClouds, "no samples in shape %s", ndarray.FormatShape(a.Shape()))
	}

	rows, cols := a.Dim(1), a.Dim(2)
	if o.distanceMatrices && rows != cols {
		return nil, &ArrayError{
			Op: OpPointClouds, Sample: -1, Reason: ErrNotSquare,
			Detail: "distance matrices of shape " + ndarray.FormatShape(a.Shape()),
		}
	}

	if err := checkFinite(a, o.finiteness, -1); err != nil {
		return nil, err
	}

	if !o.distanceMatrices && rows == cols {
		if err := emit(o, squareWarning()); err != nil {
			return nil, err
		}
	}

	if o.copy {
		return a.Clone(), nil
	}

	return a, nil
}

// checkCloudSequence validates a possibly ragged sequence of rank-2 arrays.
func checkCloudSequence(s ndarray.Sequence, o *Options) (ndarray.Batch, error) {
	if len(s) == 0 {
		return nil, shapeErrorf(OpPointClouds, "empty sequence")
	}

	var (
		i          int
		m          *ndarray.Array
		err        error
		allSquare  = true
		sameColumn = true
	)
	for i = 0; i < len(s); i++ {
		m = s[i]
		if m == nil {
			return nil, sampleErrorf(OpPointClouds, i, ErrShape, "nil sample")
		}
		if m.Ndim() != sampleRank {
			return nil, sampleErrorf(OpPointClouds, i, ErrShape,
				"expected a 2D array, got shape %s", ndarray.FormatShape(m.Shape()))
		}
		if m.Dim(0) != m.Dim(1) {
			allSquare = false
			if o.distanceMatrices {
				return nil, sampleErrorf(OpPointClouds, i, ErrNotSquare,
					"distance matrix of shape %s", ndarray.FormatShape(m.Shape()))
			}
		}
		if m.Dim(1) != s[0].Dim(1) {
			sameColumn = false
		}
		if err = checkFinite(m, o.finiteness, i); err != nil {
			return nil, err
		}
	}

	if !o.distanceMatrices {
		if allSquare {
			if err = emit(o, squareWarning()); err != nil {
				return nil, err
			}
		}
		if !sameColumn {
			if err = emit(o, &Warning{
				Kind:    InconsistentColumns,
				Op:      OpPointClouds,
				Message: "not all point clouds have the same embedding dimension",
			}); err != nil {
				return nil, err
			}
		}
	}

	if o.copy {
		return s.Clone(), nil
	}

	return s, nil
}

func squareWarning() *Warning {
	return &Warning{
		Kind:    SquareSamples,
		Op:      OpPointClouds,
		Message: "all 2D arrays are square but distance matrices were not declared",
	}
}

// checkFinite applies policy p to a. For stacked arrays (sample < 0) the
// offending sample is recovered from the flat offset.
func checkFinite(a *ndarray.Array, p Finiteness, sample int) error {
	if p == AllowNaNInf {
		return nil
	}
	f := a.Scan()
	var (
		off  int
		what = "NaN"
	)
	if p == AllowInf {
		off = f.FirstNaN
	} else {
		off = f.FirstNonFinite()
		if off >= 0 && off != f.FirstNaN {
			what = "infinity"
		}
	}
	if off < 0 {
		return nil
	}
	idx, _ := a.Unravel(off) // off < Size() by construction
	if sample < 0 && len(idx) > 1 {
		sample, idx = idx[0], idx[1:]
	}

	return sampleErrorf(OpPointClouds, sample, ErrNonFinite,
		"%s at index %v under policy %s", what, idx, p)
}
