// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoding serializes configuration documents for their consumers.
// JSON is the wire format of the API boundary; YAML is offered for
// operators editing configuration by hand.
package encoding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	JSON = "json"
	YAML = "yaml"
)

// ErrUnsupportedFormat is returned for formats other than [JSON] and [YAML].
var ErrUnsupportedFormat = errors.New("unsupported format")

// Encode writes v to w in the given format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode reads a document in the given format from r into v.
func Decode(r io.Reader, format string, v any) error {
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("error decoding json: %w", err)
		}
		return nil
	case YAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("error decoding yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
