// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every constructor and accessor returns one of these sentinels (possibly
// wrapped with a method tag); tests match them via errors.Is. No public
// function panics on user-triggered conditions.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape is empty (rank 0) or carries a
	// negative extent, or when an operation needs a higher rank than the array has.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDataLength indicates that len(data) differs from the product of the shape.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrRagged signals nested input whose siblings differ in length, so it
	// cannot form a homogeneous array. Use Sequence for such collections.
	ErrRagged = errors.New("ndarray: ragged nested input")

	// ErrOutOfRange indicates that an index is outside valid bounds, or that
	// the number of indices differs from the rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates that a nil *Array was used where a value is required.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrNotNumeric is returned by FromNested when a leaf is not a number.
	ErrNotNumeric = errors.New("ndarray: non-numeric element")
)

// arrayErrorf wraps a sentinel with the method tag that detected it.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
