// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// StrainType is the categorical type of a cultivar.
type StrainType string

const (
	Indica StrainType = "Indica"
	Sativa StrainType = "Sativa"
	Hybrid StrainType = "Hybrid"
)

// Strain is a cultivar catalog record owned by one user.
//
// NameLower is the canonical case-insensitive search key. Records imported from
// the older document layout may only carry LegacyNameLC; the repository reads
// both and writes only NameLower.
type Strain struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	Name      string `json:"name"`
	NameLower string `json:"nameLower"`

	// LegacyNameLC is the pre-migration search key ("name_lc"). Read-only.
	LegacyNameLC *string `json:"-"`

	Type    *StrainType `json:"type,omitempty"`
	Brand   *string     `json:"brand,omitempty"`
	Lineage *string     `json:"lineage,omitempty"`

	THC  *float64 `json:"thc,omitempty"`
	THCA *float64 `json:"thca,omitempty"`
	CBD  *float64 `json:"cbd,omitempty"`

	Effects StringList `json:"effects,omitempty"`
	Flavors StringList `json:"flavors,omitempty"`
	Aroma   StringList `json:"aroma,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
	Rating  *float64   `json:"rating,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Strain model.
func (s Strain) TableName() string {
	return "strains"
}

// StrainInput carries attributes supplied for a find-or-create.
// Nil pointers mean "not supplied" and never overwrite stored values.
type StrainInput struct {
	Name    string      `json:"name" validate:"required,max=200"`
	Type    *StrainType `json:"type,omitempty" validate:"omitempty,oneof=Indica Sativa Hybrid"`
	Brand   *string     `json:"brand,omitempty" validate:"omitempty,max=200"`
	Lineage *string     `json:"lineage,omitempty" validate:"omitempty,max=500"`

	THC  *float64 `json:"thc,omitempty" validate:"omitempty,gte=0,lte=100"`
	THCA *float64 `json:"thca,omitempty" validate:"omitempty,gte=0,lte=100"`
	CBD  *float64 `json:"cbd,omitempty" validate:"omitempty,gte=0,lte=100"`

	Effects StringList `json:"effects,omitempty"`
	Flavors StringList `json:"flavors,omitempty"`
	Aroma   StringList `json:"aroma,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
	Rating  *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// StrainPatch is a partial update of an existing strain addressed by id.
type StrainPatch struct {
	Name    *string     `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Type    *StrainType `json:"type,omitempty" validate:"omitempty,oneof=Indica Sativa Hybrid"`
	Brand   *string     `json:"brand,omitempty" validate:"omitempty,max=200"`
	Lineage *string     `json:"lineage,omitempty" validate:"omitempty,max=500"`

	THC  *float64 `json:"thc,omitempty" validate:"omitempty,gte=0,lte=100"`
	THCA *float64 `json:"thca,omitempty" validate:"omitempty,gte=0,lte=100"`
	CBD  *float64 `json:"cbd,omitempty" validate:"omitempty,gte=0,lte=100"`

	Effects StringList `json:"effects,omitempty"`
	Flavors StringList `json:"flavors,omitempty"`
	Aroma   StringList `json:"aroma,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
	Rating  *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// NormalizeName trims a free-text cultivar name and returns it together with
// its lowercase search key.
func NormalizeName(name string) (display, key string) {
	display = strings.TrimSpace(name)
	return display, strings.ToLower(display)
}
