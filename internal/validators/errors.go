// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation is wrapped by every error describing invalid input.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin            = fmt.Errorf("%w: login is required", ErrValidation)
	ErrEmptyPassword         = fmt.Errorf("%w: password is required", ErrValidation)
	ErrWeakPassword          = fmt.Errorf("%w: password is too short", ErrValidation)
	ErrEmptyStrainName       = fmt.Errorf("%w: strain name is required", ErrValidation)
	ErrNoFieldsToUpdate      = fmt.Errorf("%w: at least one field must be provided for update", ErrValidation)
	ErrRemainingExceedsTotal = fmt.Errorf("%w: remaining grams exceed total grams", ErrValidation)
)

// FieldsError lists the rejected fields of a struct by their JSON names.
type FieldsError struct {
	Fields map[string]string
}

func (e *FieldsError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *FieldsError) Unwrap() error {
	return ErrValidation
}
