// SPDX-License-Identifier: MIT

package validation

import (
	"math"

	"github.com/katalvlaran/lvtda/ndarray"
)

const (
	diagramRank = 3 // (samples, points, pair)
	pairWidth   = 3 // birth, death, homology dimension
)

// Column offsets within one diagram point.
const (
	colBirth = iota
	colDeath
	colDim
)

// CheckDiagrams validates a stacked collection of persistence diagrams of
// shape (samples, points, 3), the trailing axis holding (birth, death, dimension).
//
// Implementation:
//   - Stage 1: structure: non-nil, rank 3, trailing extent 3; else ErrShape.
//   - Stage 2: an empty collection (no samples or no points) is accepted as is.
//   - Stage 3: per point, in order: NaN anywhere (ErrNonFinite); the homology
//     dimension must be a non-negative integer (ErrHomologyDimension), where +Inf
//     is accepted only as the sole dimension of a stacked diagram.
//   - Stage 4: every point must lie on or above the diagonal, birth <= death
//     (ErrBirthAfterDeath); the message counts the offending points.
//   - Stage 5: optional deep copy.
//
// Infinite births and deaths are valid values; distance-matrix and finiteness
// options are ignored here.
//
// Complexity: O(samples*points).
func CheckDiagrams(x *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := checkDiagrams(x, &o)
	if o.observer != nil {
		o.observer.ObserveCheck(OpDiagrams, err)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func checkDiagrams(x *ndarray.Array, o *Options) (*ndarray.Array, error) {
	if x == nil {
		return nil, shapeErrorf(OpDiagrams, "nil input")
	}
	if x.Ndim() != diagramRank {
		return nil, shapeErrorf(OpDiagrams, "expected a 3D array, got shape %s", ndarray.FormatShape(x.Shape()))
	}
	if x.Dim(2) != pairWidth {
		return nil, shapeErrorf(OpDiagrams,
			"trailing axis must hold (birth, death, dimension), got shape %s", ndarray.FormatShape(x.Shape()))
	}
	if x.Size() == 0 {
		return finishDiagrams(x, o), nil
	}

	var (
		data       = x.Data()
		points     = x.Dim(1)
		k          int
		b, d, q    float64
		sawInf     bool
		sawFinite  bool
		below      int
		firstBelow = -1
	)
	for k = 0; k < len(data); k += pairWidth {
		b, d, q = data[k+colBirth], data[k+colDeath], data[k+colDim]
		if math.IsNaN(b) || math.IsNaN(d) || math.IsNaN(q) {
			return nil, sampleErrorf(OpDiagrams, k/pairWidth/points, ErrNonFinite,
				"NaN in point %d", (k/pairWidth)%points)
		}
		switch {
		case math.IsInf(q, 1):
			sawInf = true
		case q < 0 || q != math.Trunc(q):
			return nil, sampleErrorf(OpDiagrams, k/pairWidth/points, ErrHomologyDimension,
				"dimension %g in point %d is not a non-negative integer", q, (k/pairWidth)%points)
		default:
			sawFinite = true
		}
		if sawInf && sawFinite {
			return nil, sampleErrorf(OpDiagrams, k/pairWidth/points, ErrHomologyDimension,
				"+Inf is only valid as the sole homology dimension of a stacked diagram")
		}
		if b > d {
			below++
			if firstBelow < 0 {
				firstBelow = k / pairWidth
			}
		}
	}
	if below > 0 {
		return nil, sampleErrorf(OpDiagrams, firstBelow/points, ErrBirthAfterDeath,
			"%d of %d points lie under the diagonal", below, len(data)/pairWidth)
	}

	return finishDiagrams(x, o), nil
}

func finishDiagrams(x *ndarray.Array, o *Options) *ndarray.Array {
	if o.copy {
		return x.Clone()
	}

	return x
}
