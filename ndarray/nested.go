// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"reflect"
)

const ctxFromNested = "FromNested"

// FromNested builds an array from arbitrarily nested slices whose leaves are
// numbers, the shape produced by YAML/JSON decoders ([]any of []any of float64/int).
// Implementation:
//   - Stage 1: infer the shape by descending along the first element of every level.
//   - Stage 2: walk the whole tree, requiring each level to match the inferred
//     extent (ErrRagged) and each leaf to be numeric (ErrNotNumeric).
//
// A scalar at the top level is rejected with ErrBadShape: arrays have rank >= 1.
// Complexity: O(size).
func FromNested(v any) (*Array, error) {
	shape := inferShape(reflect.ValueOf(v))
	if len(shape) == 0 {
		return nil, arrayErrorf(ctxFromNested, ErrBadShape)
	}
	size := 1
	for _, d := range shape {
		size *= d
	}
	data := make([]float64, 0, size)
	var err error
	if data, err = flattenNested(reflect.ValueOf(v), shape, data); err != nil {
		return nil, err
	}

	return &Array{shape: shape, data: data}, nil
}

// inferShape follows the first element of each nesting level.
func inferShape(rv reflect.Value) []int {
	var shape []int
	for {
		rv = unwrapInterface(rv)
		if !isList(rv) {
			return shape
		}
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			return shape
		}
		rv = rv.Index(0)
	}
}

// flattenNested appends the leaves of rv to dst, validating extents against shape.
func flattenNested(rv reflect.Value, shape []int, dst []float64) ([]float64, error) {
	rv = unwrapInterface(rv)
	if len(shape) == 0 {
		if isList(rv) {
			return nil, arrayErrorf(ctxFromNested, ErrRagged)
		}
		f, ok := toFloat(rv)
		if !ok {
			return nil, arrayErrorf(ctxFromNested, fmt.Errorf("%w: %v", ErrNotNumeric, rv))
		}
		return append(dst, f), nil
	}
	if !isList(rv) || rv.Len() != shape[0] {
		return nil, arrayErrorf(ctxFromNested, ErrRagged)
	}
	var err error
	for i := 0; i < rv.Len(); i++ {
		if dst, err = flattenNested(rv.Index(i), shape[1:], dst); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func unwrapInterface(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	return rv
}

func isList(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

// toFloat converts any integer or float leaf to float64.
func toFloat(rv reflect.Value) (float64, bool) {
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
