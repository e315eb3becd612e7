// SPDX-License-Identifier: MIT

// Package validation - parameter-table validation.
//
// Contract:
//   - every parameter must be declared in the reference table;
//   - every non-optional reference must be present in the parameters;
//   - each value's kind must be declared, it must belong to the allowed set,
//     and it must satisfy the predicate;
//   - list elements and nested maps are validated recursively.
//
// Keys are processed in sorted order so that the reported failure does not
// depend on map iteration order.
package validation

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// ParamOption mutates paramOptions.
type ParamOption func(*paramOptions)

type paramOptions struct {
	exclude  map[string]struct{}
	observer Observer
}

// WithExclude skips the named top-level parameters entirely: they need not be
// declared, and their references need not be satisfied.
func WithExclude(names ...string) ParamOption {
	return func(o *paramOptions) {
		if o.exclude == nil {
			o.exclude = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			o.exclude[n] = struct{}{}
		}
	}
}

// WithParamObserver installs an Observer for ValidateParams outcomes.
func WithParamObserver(obs Observer) ParamOption {
	return func(o *paramOptions) { o.observer = obs }
}

// ValidateParams checks params against refs.
//
// Implementation:
//   - Stage 1: every (non-excluded) parameter name must exist in refs; else ErrMissingKey.
//   - Stage 2: every (non-excluded, non-optional) reference must be present; else ErrMissingKey.
//   - Stage 3: per value: kind (ErrTypeMismatch) -> allowed set (ErrValueNotAllowed)
//     -> predicate (ErrValueNotAllowed) -> list elements / nested map.
//
// The first failure is returned as *ParamError.
// Complexity: O(total number of values, including nested ones).
func ValidateParams(params Params, refs References, opts ...ParamOption) error {
	var o paramOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	err := validateTable(params, refs, "", o.exclude)
	if o.observer != nil {
		o.observer.ObserveCheck(OpParams, err)
	}

	return err
}

// validateTable runs stages 1–3 for one (possibly nested) table.
func validateTable(params map[string]any, refs References, prefix string, exclude map[string]struct{}) error {
	var (
		name string
		ref  Reference
		v    any
		ok   bool
		err  error
	)

	// Stage 1: undeclared parameters.
	for _, name = range slices.Sorted(maps.Keys(params)) {
		if _, ok = exclude[name]; ok {
			continue
		}
		if _, ok = refs[name]; !ok {
			return &ParamError{Path: joinPath(prefix, name), Err: ErrMissingKey, Detail: "not declared in the reference table"}
		}
	}

	// Stage 2 & 3: declared references.
	for _, name = range slices.Sorted(maps.Keys(refs)) {
		if _, ok = exclude[name]; ok {
			continue
		}
		ref = refs[name]
		if v, ok = params[name]; !ok {
			if ref.Optional {
				continue
			}
			return &ParamError{Path: joinPath(prefix, name), Err: ErrMissingKey, Detail: "required parameter is absent"}
		}
		if err = validateValue(v, ref, joinPath(prefix, name)); err != nil {
			return err
		}
	}

	return nil
}

// validateValue runs the per-value checks and recurses into lists and maps.
func validateValue(v any, ref Reference, path string) error {
	kind := KindOf(v)
	if ref.Type != 0 && kind&ref.Type == 0 {
		return &ParamError{Path: path, Err: ErrTypeMismatch,
			Detail: fmt.Sprintf("got %s (%T), want %s", kindName(kind), v, ref.Type)}
	}
	if len(ref.In) > 0 && !valueIn(v, ref.In) {
		return &ParamError{Path: path, Err: ErrValueNotAllowed,
			Detail: fmt.Sprintf("%v is not one of %v", v, ref.In)}
	}
	if ref.Other != nil && !ref.Other(v) {
		return &ParamError{Path: path, Err: ErrValueNotAllowed,
			Detail: fmt.Sprintf("%v rejected by predicate", v)}
	}

	switch {
	case kind == List && ref.Of != nil:
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			if err := validateValue(rv.Index(i).Interface(), *ref.Of, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case kind == Map && ref.Fields != nil:
		if err := validateTable(toStringMap(v), ref.Fields, path, nil); err != nil {
			return err
		}
	}

	return nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

func kindName(k Type) string {
	if k == 0 {
		return "unknown"
	}

	return k.String()
}

// toStringMap converts any string-keyed map into map[string]any.
func toStringMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out
}

// valueIn reports membership of v in allowed.
func valueIn(v any, allowed []any) bool {
	for _, a := range allowed {
		if sameValue(v, a) {
			return true
		}
	}

	return false
}

// sameValue compares numbers by value (int 1 equals float 1.0) and all other
// kinds with reflect.DeepEqual.
func sameValue(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka&Real != 0 && kb&Real != 0 {
		if ka == Int && kb == Int {
			return intEqual(reflect.ValueOf(a), reflect.ValueOf(b))
		}
		fa, fb := toFloat64(a), toFloat64(b)
		return fa == fb && !math.IsNaN(fa)
	}

	return reflect.DeepEqual(a, b)
}

// intEqual compares two integer values of any width and signedness exactly.
func intEqual(a, b reflect.Value) bool {
	as, bs := isSigned(a), isSigned(b)
	switch {
	case as && bs:
		return a.Int() == b.Int()
	case !as && !bs:
		return a.Uint() == b.Uint()
	case as:
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func toFloat64(v any) float64 {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return rv.Float()
	case isSigned(rv):
		return float64(rv.Int())
	default:
		return float64(rv.Uint())
	}
}
