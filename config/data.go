// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtda/ndarray"
	"github.com/katalvlaran/lvtda/validation"
)

// ErrInvalidData is returned when a data or table file cannot be decoded
// into the expected container.
var ErrInvalidData = errors.New("config: invalid data file")

// referenceSpec is the YAML form of validation.Reference.
//
//	homology_dimensions:
//	  type: list
//	  of: {type: int, in: [0, 1, 2]}
type referenceSpec struct {
	Type     string                   `yaml:"type"`
	In       []any                    `yaml:"in"`
	Of       *referenceSpec           `yaml:"of"`
	Fields   map[string]referenceSpec `yaml:"fields"`
	Optional bool                     `yaml:"optional"`
}

func (s referenceSpec) toReference(path string) (validation.Reference, error) {
	var (
		ref validation.Reference
		err error
	)
	if s.Type != "" {
		if ref.Type, err = validation.ParseType(s.Type); err != nil {
			return ref, fmt.Errorf("%w: %s: %w", ErrInvalidData, path, err)
		}
	}
	ref.In = s.In
	ref.Optional = s.Optional
	if s.Of != nil {
		of, err := s.Of.toReference(path + ".of")
		if err != nil {
			return ref, err
		}
		ref.Of = &of
	}
	if s.Fields != nil {
		if ref.Fields, err = toReferences(s.Fields, path+"."); err != nil {
			return ref, err
		}
	}

	return ref, nil
}

func toReferences(specs map[string]referenceSpec, prefix string) (validation.References, error) {
	refs := make(validation.References, len(specs))
	for name, spec := range specs {
		ref, err := spec.toReference(prefix + name)
		if err != nil {
			return nil, err
		}
		refs[name] = ref
	}

	return refs, nil
}

// ParseReferences decodes a YAML reference table.
func ParseReferences(data []byte) (validation.References, error) {
	var specs map[string]referenceSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return toReferences(specs, "")
}

// LoadReferences reads and decodes a YAML reference table.
func LoadReferences(path string) (validation.References, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseReferences(data)
}

// ParseParams decodes a YAML parameter map. Integers decode as int and
// floats as float64, so `1` and `1.0` keep distinct kinds.
func ParseParams(data []byte) (validation.Params, error) {
	var params map[string]any
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if params == nil {
		params = map[string]any{}
	}

	return params, nil
}

// LoadParams reads and decodes a YAML parameter map.
func LoadParams(path string) (validation.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseParams(data)
}

// ParseBatch decodes a YAML nested list into a batch: a homogeneous tree
// becomes one *ndarray.Array, a tree whose top-level members differ in shape
// becomes an ndarray.Sequence. Rank is not checked here; that is the
// validators' job.
func ParseBatch(data []byte) (ndarray.Batch, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	arr, err := ndarray.FromNested(tree)
	if err == nil {
		return arr, nil
	}
	if !errors.Is(err, ndarray.ErrRagged) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	members, _ := tree.([]any) // ragged implies a top-level list
	seq := make(ndarray.Sequence, len(members))
	for i, m := range members {
		if seq[i], err = ndarray.FromNested(m); err != nil {
			return nil, fmt.Errorf("%w: member %d: %w", ErrInvalidData, i, err)
		}
	}

	return seq, nil
}

// LoadBatch reads and decodes a YAML point cloud file.
func LoadBatch(path string) (ndarray.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBatch(data)
}

// LoadArray reads a YAML file that must hold a homogeneous nested list,
// such as a stacked diagram collection.
func LoadArray(path string) (*ndarray.Array, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree any
	if err = yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	arr, err := ndarray.FromNested(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return arr, nil
}
