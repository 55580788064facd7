// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before any write is attempted.
//
// Struct constraints are declared as go-playground/validator tags on the
// models; the [Validator] implementations add the rules that span several
// fields or that tags cannot express (blank names, empty patches,
// remaining above total). Every failure wraps [ErrValidation].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
