// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with an explicit shape; the offset of
//     (i0, i1, ..., ik) is sum(i_a * stride_a) with stride_k = 1.
//   - Guarantee safety at the public surface: At/Sample return errors instead of panicking.
//   - Support no-copy views along axis 0 (Sample) and deep copies (Clone).
//
// Complexity quicksheet:
//   - New: O(1) (data is adopted); From*D: O(size); At: O(rank); Sample: O(rank); Clone: O(size).

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "Array.At"
	ctxSample  = "Array.Sample"
	ctxUnravel = "Array.Unravel"
	ctxFrom2D  = "From2D"
	ctxFrom3D  = "From3D"
	ctxFrom4D  = "From4D"
)

// Array is a dense n-dimensional array of float64 values.
//   - shape holds the extent of every axis (len(shape) is the rank, >= 1).
//   - data is a flat buffer of length prod(shape) in row-major order.
type Array struct {
	shape []int     // axis extents, each >= 0
	data  []float64 // contiguous row-major storage (len == prod(shape))
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Batch        = (*Array)(nil)
	_ fmt.Stringer = (*Array)(nil)
)

// New wraps data into an array of the given shape.
// Implementation:
//   - Stage 1: validate rank >= 1, every extent >= 0 and that prod(shape)
//     fits in an int; else ErrBadShape.
//   - Stage 2: when data is nil allocate a zero buffer, otherwise require
//     len(data) == prod(shape); else ErrDataLength.
//   - Stage 3: copy the shape (the caller keeps ownership of its slice) and
//     adopt data without copying.
//
// Complexity: O(rank) when data is supplied, O(size) when allocated.
func New(shape []int, data []float64) (*Array, error) {
	var (
		size int
		i    int
	)
	if len(shape) == 0 {
		return nil, arrayErrorf(ctxNew, ErrBadShape)
	}
	size = 1
	for i = 0; i < len(shape); i++ { // extents must be non-negative
		if shape[i] < 0 {
			return nil, arrayErrorf(ctxNew, ErrBadShape)
		}
		if shape[i] != 0 && size > math.MaxInt/shape[i] { // prod(shape) overflows int
			return nil, arrayErrorf(ctxNew, ErrBadShape)
		}
		size *= shape[i]
	}
	if data == nil {
		data = make([]float64, size)
	}
	if len(data) != size {
		return nil, arrayErrorf(ctxNew, ErrDataLength)
	}

	return &Array{shape: append([]int(nil), shape...), data: data}, nil
}

// From1D copies v into a rank-1 array.
// Complexity: O(len(v)).
func From1D(v []float64) *Array {
	data := make([]float64, len(v))
	copy(data, v)

	return &Array{shape: []int{len(v)}, data: data}
}

// From2D copies a rectangular [][]float64 into a rank-2 array.
// Rows of differing length yield ErrRagged.
// Complexity: O(r*c).
func From2D(rows [][]float64) (*Array, error) {
	var (
		r, c int
		i    int
	)
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, arrayErrorf(ctxFrom2D, ErrRagged)
		}
		data = append(data, rows[i]...)
	}

	return &Array{shape: []int{r, c}, data: data}, nil
}

// From3D copies a homogeneous [][][]float64 into a rank-3 array.
// Any sibling length mismatch yields ErrRagged.
// Complexity: O(n*r*c).
func From3D(x [][][]float64) (*Array, error) {
	var (
		n, r, c int
		i, j    int
	)
	n = len(x)
	if n > 0 {
		r = len(x[0])
		if r > 0 {
			c = len(x[0][0])
		}
	}
	data := make([]float64, 0, n*r*c)
	for i = 0; i < n; i++ {
		if len(x[i]) != r {
			return nil, arrayErrorf(ctxFrom3D, ErrRagged)
		}
		for j = 0; j < r; j++ {
			if len(x[i][j]) != c {
				return nil, arrayErrorf(ctxFrom3D, ErrRagged)
			}
			data = append(data, x[i][j]...)
		}
	}

	return &Array{shape: []int{n, r, c}, data: data}, nil
}

// From4D copies a homogeneous [][][][]float64 into a rank-4 array.
// Complexity: O(size).
func From4D(x [][][][]float64) (*Array, error) {
	var (
		n, m int
		i    int
		sub  *Array
		err  error
	)
	n = len(x)
	inner := make([]*Array, n)
	for i = 0; i < n; i++ {
		if sub, err = From3D(x[i]); err != nil {
			return nil, arrayErrorf(ctxFrom4D, ErrRagged)
		}
		inner[i] = sub
	}
	if n == 0 {
		return &Array{shape: []int{0, 0, 0, 0}, data: []float64{}}, nil
	}
	m = inner[0].Size()
	data := make([]float64, 0, n*m)
	for i = 0; i < n; i++ {
		if !sameShape(inner[i].shape, inner[0].shape) {
			return nil, arrayErrorf(ctxFrom4D, ErrRagged)
		}
		data = append(data, inner[i].data...)
	}
	shape := append([]int{n}, inner[0].shape...)

	return &Array{shape: shape, data: data}, nil
}

// Ndim returns the rank of the array.
func (a *Array) Ndim() int { return len(a.shape) }

// Shape returns a copy of the axis extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Dim returns the extent of the given axis, or 0 when axis is outside [0, Ndim).
func (a *Array) Dim(axis int) int {
	if axis < 0 || axis >= len(a.shape) {
		return 0
	}

	return a.shape[axis]
}

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data exposes the backing buffer. Mutations are visible through the array.
func (a *Array) Data() []float64 { return a.data }

// Len returns the extent of axis 0, the number of samples when the array
// is used as a Batch.
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}

	return a.shape[0]
}

// Ragged always reports false: an Array is homogeneous by construction.
func (a *Array) Ragged() bool { return false }

// At returns the element at the given multi-index.
// Implementation:
//   - Stage 1: require len(idx) == rank and every index in range; else ErrOutOfRange.
//   - Stage 2: fold indices into a flat offset (Horner over the shape).
//
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	var (
		off int
		k   int
	)
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(ctxAt, ErrOutOfRange)
	}
	for k = 0; k < len(idx); k++ {
		if idx[k] < 0 || idx[k] >= a.shape[k] {
			return 0, arrayErrorf(ctxAt, ErrOutOfRange)
		}
		off = off*a.shape[k] + idx[k]
	}

	return a.data[off], nil
}

// Sample returns the i-th sub-array along axis 0 as a view: it shares the
// backing buffer, so writes through either array are visible in both.
// Implementation:
//   - Stage 1: require rank >= 2 (a sample of a vector would be a scalar); else ErrBadShape.
//   - Stage 2: require 0 <= i < Len(); else ErrOutOfRange.
//   - Stage 3: slice the buffer [i*stride, (i+1)*stride).
//
// Complexity: O(rank).
func (a *Array) Sample(i int) (*Array, error) {
	if len(a.shape) < 2 {
		return nil, arrayErrorf(ctxSample, ErrBadShape)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, arrayErrorf(ctxSample, ErrOutOfRange)
	}
	stride := 1
	for _, d := range a.shape[1:] {
		stride *= d
	}

	return &Array{
		shape: append([]int(nil), a.shape[1:]...),
		data:  a.data[i*stride : (i+1)*stride : (i+1)*stride],
	}, nil
}

// Unravel converts a flat offset back into a multi-index.
// Complexity: O(rank).
func (a *Array) Unravel(offset int) ([]int, error) {
	if offset < 0 || offset >= len(a.data) {
		return nil, arrayErrorf(ctxUnravel, ErrOutOfRange)
	}
	idx := make([]int, len(a.shape))
	for k := len(a.shape) - 1; k >= 0; k-- {
		idx[k] = offset % a.shape[k]
		offset /= a.shape[k]
	}

	return idx, nil
}

// Clone returns a deep copy that shares nothing with a.
// Complexity: O(size).
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)

	return &Array{shape: append([]int(nil), a.shape...), data: data}
}

// Equal reports whether a and b have the same shape and elements.
// NaN compares equal to NaN so that copies of non-finite inputs match.
// Complexity: O(size).
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameShape(a.shape, b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] == b.data[i] {
			continue
		}
		if math.IsNaN(a.data[i]) && math.IsNaN(b.data[i]) {
			continue
		}
		return false
	}

	return true
}

// String renders the shape followed by the flat data, e.g. "(2, 3)[1 2 3 4 5 6]".
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString(FormatShape(a.shape))
	b.WriteString(fmt.Sprint(a.data))

	return b.String()
}

// FormatShape renders a shape the way error messages print it: "(2, 3, 3)".
func FormatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprint(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// sameShape reports element-wise equality of two shapes.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
