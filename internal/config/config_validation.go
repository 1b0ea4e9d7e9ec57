// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` struct tags before it is used at startup.
//
// Returns nil if the configuration is valid, or the joined field errors,
// each wrapping the sentinel of its settings group.
func (cfg *StructuredConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%w: %s=%v fails %q",
			groupError(fe.StructNamespace()), fe.StructNamespace(), fe.Value(), fe.ActualTag()))
	}

	return errors.Join(errs...)
}

// groupError maps a namespace such as "StructuredConfig.Log.Level" to the
// sentinel of its group.
func groupError(namespace string) error {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ErrInvalidConfig
	}

	switch parts[1] {
	case "Output":
		return ErrInvalidOutputConfig
	case "Log":
		return ErrInvalidLogConfig
	case "Resolver":
		return ErrInvalidResolverConfig
	default:
		return ErrInvalidConfig
	}
}
