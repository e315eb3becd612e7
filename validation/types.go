// SPDX-License-Identifier: MIT

// Package validation: parameter-table types.
// A reference table maps parameter names to a Reference describing the
// accepted kinds, an optional allowed set, and nested specs for list and map
// parameters. Kinds are coarse on purpose: every integer width is Int, every
// float width is Float, so tables read the same for typed Go maps and for
// decoded YAML/JSON.
package validation

import (
	"fmt"
	"reflect"
	"strings"
)

// Type is a bitmask of accepted value kinds.
type Type uint16

// Value kinds.
const (
	Nil Type = 1 << iota
	Bool
	Int
	Float
	String
	List
	Map

	// Real accepts integers and floats.
	Real = Int | Float

	// Any accepts every kind above.
	Any = Nil | Bool | Int | Float | String | List | Map
)

var typeNames = []struct {
	t    Type
	name string
}{
	{Nil, "nil"},
	{Bool, "bool"},
	{Int, "int"},
	{Float, "float"},
	{String, "string"},
	{List, "list"},
	{Map, "map"},
}

// String renders the mask as "int|float"; the zero Type renders "unconstrained".
func (t Type) String() string {
	if t == 0 {
		return "unconstrained"
	}
	if t == Any {
		return "any"
	}
	parts := make([]string, 0, len(typeNames))
	for _, tn := range typeNames {
		if t&tn.t != 0 {
			parts = append(parts, tn.name)
		}
	}

	return strings.Join(parts, "|")
}

// ParseType parses "int", "int|float", "real", "any" and friends.
func ParseType(s string) (Type, error) {
	var t Type
	for _, part := range strings.Split(s, "|") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "nil", "null", "none":
			t |= Nil
		case "bool":
			t |= Bool
		case "int", "integer":
			t |= Int
		case "float", "number":
			t |= Float
		case "real":
			t |= Real
		case "string", "str":
			t |= String
		case "list", "tuple", "array":
			t |= List
		case "map", "dict":
			t |= Map
		case "any":
			t |= Any
		default:
			return 0, fmt.Errorf("validation: unknown type %q in %q", part, s)
		}
	}

	return t, nil
}

// KindOf classifies a runtime value. Values outside the known kinds
// (structs, funcs, channels, non-string-keyed maps) classify as 0 and only
// satisfy an unconstrained Reference.
func KindOf(v any) Type {
	if v == nil {
		return Nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		return List
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return Map
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Nil
		}
	}

	return 0
}

// Reference describes the accepted values of one parameter.
type Reference struct {
	// Type lists accepted kinds; zero means any value, known kind or not.
	Type Type

	// In, when non-empty, is the allowed set. Numbers compare by value
	// across integer and float kinds; other kinds compare with reflect.DeepEqual.
	In []any

	// Of validates every element of a List value.
	Of *Reference

	// Fields validates a Map value as a nested parameter table.
	Fields References

	// Other is an extra predicate; false yields ErrValueNotAllowed.
	Other func(any) bool

	// Optional lets the parameter be absent.
	Optional bool
}

// References is a parameter reference table.
type References map[string]Reference

// Params is a parameter map under validation.
type Params map[string]any
