// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-stash-journal/internal/units"

// PurchaseStatus is the lifecycle status of a purchase lot.
type PurchaseStatus string

const (
	PurchaseActive   PurchaseStatus = "active"
	PurchaseDepleted PurchaseStatus = "depleted"
)

// ProductKind classifies a purchase lot.
type ProductKind string

const (
	Flower      ProductKind = "flower"
	Concentrate ProductKind = "concentrate"
)

// Purchase is an inventory lot of a cultivar.
//
// RemainingGrams is stored as written by deductions and may be negative
// after concurrent sessions; use [Purchase.DisplayRemaining] for output.
type Purchase struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	StrainName      string      `json:"strainName"`
	StrainNameLower string      `json:"strainNameLower"`
	StrainType      *StrainType `json:"strainType,omitempty"`
	Lineage         *string     `json:"lineage,omitempty"`
	Brand           *string     `json:"brand,omitempty"`
	THC             *float64    `json:"thc,omitempty"`
	THCA            *float64    `json:"thca,omitempty"`
	CBD             *float64    `json:"cbd,omitempty"`

	TotalGrams     float64 `json:"totalGrams"`
	RemainingGrams float64 `json:"remainingGrams"`
	TotalCostCents *int64  `json:"totalCostCents,omitempty"`
	PurchaseDate   *int64  `json:"purchaseDate,omitempty"`

	Status              PurchaseStatus `json:"status"`
	ProductKind         *ProductKind   `json:"productKind,omitempty"`
	ConcentrateCategory *string        `json:"concentrateCategory,omitempty"`
	ConcentrateForm     *string        `json:"concentrateForm,omitempty"`

	// WasteGrams and WastePercent are recorded when the lot is finished
	// with grams left over.
	WasteGrams   *float64 `json:"wasteGrams,omitempty"`
	WastePercent *float64 `json:"wastePercent,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Purchase model.
func (p Purchase) TableName() string {
	return "purchases"
}

// EffectiveStatus treats an unset status as active.
func (p Purchase) EffectiveStatus() PurchaseStatus {
	if p.Status == "" {
		return PurchaseActive
	}
	return p.Status
}

// DisplayRemaining returns the remaining grams clamped at zero.
func (p Purchase) DisplayRemaining() float64 {
	if p.RemainingGrams < 0 {
		return 0
	}
	return p.RemainingGrams
}

// PurchaseInput is the body of a create-purchase request.
type PurchaseInput struct {
	StrainName string      `json:"strainName" validate:"required,max=200"`
	StrainType *StrainType `json:"strainType,omitempty" validate:"omitempty,oneof=Indica Sativa Hybrid"`
	Lineage    *string     `json:"lineage,omitempty" validate:"omitempty,max=500"`
	Brand      *string     `json:"brand,omitempty" validate:"omitempty,max=200"`
	THC        *float64    `json:"thc,omitempty" validate:"omitempty,gte=0,lte=100"`
	THCA       *float64    `json:"thca,omitempty" validate:"omitempty,gte=0,lte=100"`
	CBD        *float64    `json:"cbd,omitempty" validate:"omitempty,gte=0,lte=100"`

	TotalGrams     units.Grams  `json:"totalGrams" validate:"gt=0"`
	RemainingGrams *units.Grams `json:"remainingGrams,omitempty" validate:"omitempty,gte=0"`
	TotalCostCents *int64       `json:"totalCostCents,omitempty" validate:"omitempty,gte=0"`
	PurchaseDate   *int64       `json:"purchaseDate,omitempty" validate:"omitempty,gt=0"`

	ProductKind         *ProductKind `json:"productKind,omitempty" validate:"omitempty,oneof=flower concentrate"`
	ConcentrateCategory *string      `json:"concentrateCategory,omitempty" validate:"omitempty,max=100"`
	ConcentrateForm     *string      `json:"concentrateForm,omitempty" validate:"omitempty,max=100"`
}

// PurchasePatch is a partial update of a purchase. Nil fields are left untouched.
type PurchasePatch struct {
	StrainName *string     `json:"strainName,omitempty" validate:"omitempty,min=1,max=200"`
	StrainType *StrainType `json:"strainType,omitempty" validate:"omitempty,oneof=Indica Sativa Hybrid"`
	Lineage    *string     `json:"lineage,omitempty" validate:"omitempty,max=500"`
	Brand      *string     `json:"brand,omitempty" validate:"omitempty,max=200"`
	THC        *float64    `json:"thc,omitempty" validate:"omitempty,gte=0,lte=100"`
	THCA       *float64    `json:"thca,omitempty" validate:"omitempty,gte=0,lte=100"`
	CBD        *float64    `json:"cbd,omitempty" validate:"omitempty,gte=0,lte=100"`

	TotalGrams     *units.Grams `json:"totalGrams,omitempty" validate:"omitempty,gt=0"`
	RemainingGrams *units.Grams `json:"remainingGrams,omitempty" validate:"omitempty,gte=0"`
	TotalCostCents *int64       `json:"totalCostCents,omitempty" validate:"omitempty,gte=0"`
	PurchaseDate   *int64       `json:"purchaseDate,omitempty" validate:"omitempty,gt=0"`

	Status              *PurchaseStatus `json:"status,omitempty" validate:"omitempty,oneof=active depleted"`
	ProductKind         *ProductKind    `json:"productKind,omitempty" validate:"omitempty,oneof=flower concentrate"`
	ConcentrateCategory *string         `json:"concentrateCategory,omitempty" validate:"omitempty,max=100"`
	ConcentrateForm     *string         `json:"concentrateForm,omitempty" validate:"omitempty,max=100"`
}

// ArchivedPurchase is an archive entry with its resolved finish time.
type ArchivedPurchase struct {
	Entry
	FinishedAt int64 `json:"finishedAt"`
}
