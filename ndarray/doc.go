// Package ndarray provides the minimal numeric containers consumed by the
// lvtda validators.
//
// The ndarray package provides:
//
//   - Array: a dense, row-major, n-dimensional float64 buffer with an explicit
//     shape. Constructors from nested slices (From1D … From4D) and from decoded
//     YAML/JSON values (FromNested) reject ragged nesting with ErrRagged.
//   - Sequence: an ordered, possibly ragged collection of arrays, the natural
//     representation of point clouds with differing numbers of points.
//   - Batch: the common view over both, so validators can walk samples without
//     caring whether the caller stacked them.
//   - Finiteness: a single pass NaN/±Inf scan used by numeric policies.
//
// Arrays are small value holders, not a linear-algebra library: there is no
// broadcasting, no arithmetic and no strides beyond row-major views along
// axis 0.
package ndarray
