// SPDX-License-Identifier: MIT

package ndarray

const (
	ctxSeqSample = "Sequence.Sample"
	ctxSeqStack  = "Sequence.Stack"
)

// Batch is an ordered collection of samples: either one homogeneous *Array
// whose axis 0 enumerates samples, or a Sequence of independently shaped arrays.
//
// Validators walk a Batch through Len/Sample and use a type switch when the
// two representations need different rules (rank of the whole vs rank of members).
type Batch interface {
	// Len returns the number of samples.
	Len() int

	// Sample returns the i-th sample. For *Array this is a view along axis 0.
	Sample(i int) (*Array, error)

	// Ragged reports whether samples may differ in shape.
	Ragged() bool
}

// Sequence is an ordered, possibly ragged collection of arrays.
type Sequence []*Array

var _ Batch = Sequence(nil)

// SequenceFrom2D builds a Sequence of rank-2 arrays, one per argument.
// Complexity: O(total size).
func SequenceFrom2D(samples ...[][]float64) (Sequence, error) {
	out := make(Sequence, len(samples))
	var err error
	for i := range samples {
		if out[i], err = From2D(samples[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Len returns the number of members.
func (s Sequence) Len() int { return len(s) }

// Sample returns the i-th member itself (no copy).
func (s Sequence) Sample(i int) (*Array, error) {
	if i < 0 || i >= len(s) {
		return nil, arrayErrorf(ctxSeqSample, ErrOutOfRange)
	}
	if s[i] == nil {
		return nil, arrayErrorf(ctxSeqSample, ErrNilArray)
	}

	return s[i], nil
}

// Ragged reports whether at least two members differ in shape.
// A sequence holding a nil member is considered ragged.
// Complexity: O(len(s) * rank).
func (s Sequence) Ragged() bool {
	for i := range s {
		if s[i] == nil {
			return true
		}
		if i > 0 && !sameShape(s[i].shape, s[0].shape) {
			return true
		}
	}

	return false
}

// Stack joins equally shaped members into one array with a new leading axis.
// Implementation:
//   - Stage 1: reject empty sequences (no member shape to stack) with ErrBadShape.
//   - Stage 2: reject nil members (ErrNilArray) and shape mismatches (ErrRagged).
//   - Stage 3: copy member buffers back to back.
//
// Complexity: O(total size).
func (s Sequence) Stack() (*Array, error) {
	if len(s) == 0 {
		return nil, arrayErrorf(ctxSeqStack, ErrBadShape)
	}
	for i := range s {
		if s[i] == nil {
			return nil, arrayErrorf(ctxSeqStack, ErrNilArray)
		}
	}
	if s.Ragged() {
		return nil, arrayErrorf(ctxSeqStack, ErrRagged)
	}
	data := make([]float64, 0, len(s)*s[0].Size())
	for i := range s {
		data = append(data, s[i].data...)
	}

	return &Array{shape: append([]int{len(s)}, s[0].shape...), data: data}, nil
}

// Clone deep-copies every member; nil members stay nil.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i := range s {
		if s[i] != nil {
			out[i] = s[i].Clone()
		}
	}

	return out
}
