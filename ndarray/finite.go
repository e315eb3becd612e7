// SPDX-License-Identifier: MIT

package ndarray

import "math"

// Finiteness summarises the non-finite content of a buffer.
// First* offsets are -1 when no element of that kind was found.
type Finiteness struct {
	NaN      int // count of NaN elements
	PosInf   int // count of +Inf elements
	NegInf   int // count of -Inf elements
	FirstNaN int // flat offset of the first NaN
	FirstInf int // flat offset of the first ±Inf
}

// HasNaN reports whether at least one NaN was seen.
func (f Finiteness) HasNaN() bool { return f.NaN > 0 }

// HasInf reports whether at least one ±Inf was seen.
func (f Finiteness) HasInf() bool { return f.PosInf+f.NegInf > 0 }

// AllFinite reports whether the scanned buffer held only finite values.
func (f Finiteness) AllFinite() bool { return !f.HasNaN() && !f.HasInf() }

// FirstNonFinite returns the smallest offset holding NaN or ±Inf, or -1.
func (f Finiteness) FirstNonFinite() int {
	switch {
	case f.FirstNaN < 0:
		return f.FirstInf
	case f.FirstInf < 0:
		return f.FirstNaN
	case f.FirstNaN < f.FirstInf:
		return f.FirstNaN
	default:
		return f.FirstInf
	}
}

// Scan counts NaN and ±Inf entries of data in a single left-to-right pass.
// Complexity: O(len(data)), no allocations.
func Scan(data []float64) Finiteness {
	f := Finiteness{FirstNaN: -1, FirstInf: -1}
	var (
		i int
		v float64
	)
	for i = 0; i < len(data); i++ {
		v = data[i]
		switch {
		case v != v: // NaN is the only value not equal to itself
			f.NaN++
			if f.FirstNaN < 0 {
				f.FirstNaN = i
			}
		case math.IsInf(v, 1):
			f.PosInf++
			if f.FirstInf < 0 {
				f.FirstInf = i
			}
		case math.IsInf(v, -1):
			f.NegInf++
			if f.FirstInf < 0 {
				f.FirstInf = i
			}
		}
	}

	return f
}

// Scan is a shorthand for Scan(a.Data()).
func (a *Array) Scan() Finiteness { return Scan(a.data) }
