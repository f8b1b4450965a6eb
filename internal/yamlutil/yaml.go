// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Configuration files and page front-matter both decode through it.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes YAML into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Pair is one key/value entry of an ordered mapping.
type Pair struct {
	Key   string
	Value string
}

// Pairs decodes either a sequence of mappings or a single mapping into a flat
// list, keeping document order. Scalar values are formatted as strings and
// null becomes "".
//
//	meta:
//	  - description: An overview
//	  - keywords: lbry, glossary
type Pairs []Pair

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (p *Pairs) UnmarshalYAML(data []byte) error {
	var seq []yaml.MapSlice
	if err := yaml.Unmarshal(data, &seq); err == nil {
		*p = flatten(seq...)
		return nil
	}

	var single yaml.MapSlice
	if err := yaml.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("yamlutil: expected a mapping or a list of mappings: %w", err)
	}
	*p = flatten(single)
	return nil
}

func flatten(slices ...yaml.MapSlice) Pairs {
	var out Pairs
	for _, ms := range slices {
		for _, item := range ms {
			out = append(out, Pair{Key: scalar(item.Key), Value: scalar(item.Value)})
		}
	}
	return out
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

var _ yaml.BytesUnmarshaler = (*Pairs)(nil)
