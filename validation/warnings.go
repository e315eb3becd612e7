// SPDX-License-Identifier: MIT

package validation

import "fmt"

// WarningKind classifies dimensionality warnings.
type WarningKind int

const (
	// SquareSamples: every sample is square while point clouds were expected,
	// so the input may actually hold distance matrices.
	SquareSamples WarningKind = iota + 1

	// InconsistentColumns: point clouds of one collection live in spaces of
	// different dimension (their column counts differ).
	InconsistentColumns
)

// String implements fmt.Stringer; values double as metric labels.
func (k WarningKind) String() string {
	switch k {
	case SquareSamples:
		return "square_samples"
	case InconsistentColumns:
		return "inconsistent_columns"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a non-fatal report that the input shape is structurally
// ambiguous: the caller should double-check intent, validation proceeds.
type Warning struct {
	Kind    WarningKind
	Op      string // validator that raised it
	Message string
}

// String renders "op: message".
func (w *Warning) String() string { return w.Op + ": " + w.Message }

// WarningHandler receives warnings synchronously, in emission order.
type WarningHandler func(*Warning)

// DiscardWarnings is the default handler.
func DiscardWarnings(*Warning) {}

// CollectWarnings returns a handler appending to *dst.
func CollectWarnings(dst *[]*Warning) WarningHandler {
	return func(w *Warning) { *dst = append(*dst, w) }
}

// emit routes w to the observer and the handler, or converts it into an
// error when warnings are promoted.
func emit(o *Options, w *Warning) error {
	if o.observer != nil {
		o.observer.ObserveWarning(w)
	}
	if o.warningsAsErrors {
		return fmt.Errorf("%s: %w: %s", w.Op, ErrDimensionality, w.Message)
	}
	o.onWarning(w)

	return nil
}
