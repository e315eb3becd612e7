// SPDX-License-Identifier: MIT

package validation

// Operation names reported to observers and used as metric labels.
const (
	OpParams      = "validate_params"
	OpPointClouds = "check_point_clouds"
	OpDiagrams    = "check_diagrams"
)

// Observer is notified once per validator call with its outcome (nil on
// success) and once per emitted warning. Implementations must be safe for
// concurrent use when validators run on several goroutines.
type Observer interface {
	ObserveCheck(op string, err error)
	ObserveWarning(w *Warning)
}
