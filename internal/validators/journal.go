// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-stash-journal/models"
)

// Field name constants restrict validation to a subset of rules.
const (
	// FieldTags applies the validate struct tags of the model.
	FieldTags = "tags"

	// FieldLogin requires a non-blank login.
	FieldLogin = "login"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldPasswordLength enforces [MinPasswordLength] on registration.
	FieldPasswordLength = "password_length"

	// FieldStrainName requires a cultivar name that is not blank after trimming.
	FieldStrainName = "strain_name"

	// FieldNotEmpty rejects patches that change nothing.
	FieldNotEmpty = "not_empty"

	// FieldRemaining rejects remaining grams above total grams.
	FieldRemaining = "remaining"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// JournalValidator implements [Validator] for the request models of the
// journal: users, strains, entries and purchases, in value or pointer form.
type JournalValidator struct {
	structs *validator.Validate
}

// NewJournalValidator constructs a [JournalValidator].
func NewJournalValidator() Validator {
	return &JournalValidator{structs: newStructValidator()}
}

// Validate dispatches on the dynamic type of obj. Without fields the
// default rule set of the type is applied.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.StrainInput:
		return v.validateStrainInput(value, fields...)
	case *models.StrainInput:
		return v.validateStrainInput(*value, fields...)

	case models.StrainPatch:
		return v.validateStrainPatch(value, fields...)
	case *models.StrainPatch:
		return v.validateStrainPatch(*value, fields...)

	case models.EntryInput:
		return v.validateEntryInput(value, fields...)
	case *models.EntryInput:
		return v.validateEntryInput(*value, fields...)

	case models.EntryPatch:
		return v.validateEntryPatch(value, fields...)
	case *models.EntryPatch:
		return v.validateEntryPatch(*value, fields...)

	case models.PurchaseInput:
		return v.validatePurchaseInput(value, fields...)
	case *models.PurchaseInput:
		return v.validatePurchaseInput(*value, fields...)

	case models.PurchasePatch:
		return v.validatePurchasePatch(value, fields...)
	case *models.PurchasePatch:
		return v.validatePurchasePatch(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks credentials. Default fields: FieldLogin, FieldPassword.
func (v *JournalValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if len([]rune(user.Password)) < MinPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *JournalValidator) validateStrainInput(in models.StrainInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStrainName, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldStrainName:
			if blank(&in.Name) {
				return ErrEmptyStrainName
			}
		case FieldTags:
			if err := checkStruct(v.structs, in); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *JournalValidator) validateStrainPatch(p models.StrainPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldStrainName, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if strainPatchEmpty(p) {
				return ErrNoFieldsToUpdate
			}
		case FieldStrainName:
			if p.Name != nil && blank(p.Name) {
				return ErrEmptyStrainName
			}
		case FieldTags:
			if err := checkStruct(v.structs, p); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *JournalValidator) validateEntryInput(in models.EntryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTags:
			if err := checkStruct(v.structs, in); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *JournalValidator) validateEntryPatch(p models.EntryPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if p.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTags:
			if err := checkStruct(v.structs, p); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *JournalValidator) validatePurchaseInput(in models.PurchaseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStrainName, FieldTags, FieldRemaining}
	}

	for _, f := range fields {
		switch f {
		case FieldStrainName:
			if blank(&in.StrainName) {
				return ErrEmptyStrainName
			}
		case FieldTags:
			if err := checkStruct(v.structs, in); err != nil {
				return err
			}
		case FieldRemaining:
			if in.RemainingGrams != nil && *in.RemainingGrams > in.TotalGrams {
				return ErrRemainingExceedsTotal
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *JournalValidator) validatePurchasePatch(p models.PurchasePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldStrainName, FieldTags, FieldRemaining}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if p == (models.PurchasePatch{}) {
				return ErrNoFieldsToUpdate
			}
		case FieldStrainName:
			if p.StrainName != nil && blank(p.StrainName) {
				return ErrEmptyStrainName
			}
		case FieldTags:
			if err := checkStruct(v.structs, p); err != nil {
				return err
			}
		case FieldRemaining:
			if p.RemainingGrams != nil && p.TotalGrams != nil && *p.RemainingGrams > *p.TotalGrams {
				return ErrRemainingExceedsTotal
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func strainPatchEmpty(p models.StrainPatch) bool {
	return p.Name == nil && p.Type == nil && p.Brand == nil && p.Lineage == nil &&
		p.THC == nil && p.THCA == nil && p.CBD == nil &&
		p.Effects == nil && p.Flavors == nil && p.Aroma == nil &&
		p.Notes == nil && p.Rating == nil
}
