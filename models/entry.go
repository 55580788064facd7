// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/units"
)

// Method is the consumption method of a session.
type Method string

const (
	Joint  Method = "Joint"
	Blunt  Method = "Blunt"
	Bong   Method = "Bong"
	Pipe   Method = "Pipe"
	Vape   Method = "Vape"
	Dab    Method = "Dab"
	Edible Method = "Edible"

	// MethodPurchase tags synthetic archive entries created when a purchase is finished.
	MethodPurchase Method = "Purchase"
	// MethodJournal is the archive tag used by older records.
	MethodJournal Method = "Journal"
)

// Smokeable reports whether sessions with this method carry a weight in grams.
func (m Method) Smokeable() bool {
	switch m {
	case Joint, Blunt, Bong, Pipe, Vape, Dab:
		return true
	default:
		return false
	}
}

// JournalTypePurchaseArchive marks an entry as the archive record of a finished purchase.
const JournalTypePurchaseArchive = "purchase-archive"

// Entry is one logged consumption session.
//
// Besides regular sessions the entries table also holds purchase archive
// records (see [Entry.IsArchive]). Those carry the archive snapshot fields
// and are hidden from daily views.
type Entry struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	Time   int64  `json:"time"`
	Method Method `json:"method"`

	EdibleName *string  `json:"edibleName,omitempty"`
	EdibleType *string  `json:"edibleType,omitempty"`
	EdibleMg   *float64 `json:"edibleMg,omitempty"`

	StrainID        *string     `json:"strainId,omitempty"`
	StrainName      *string     `json:"strainName,omitempty"`
	StrainNameLower *string     `json:"strainNameLower,omitempty"`
	StrainType      *StrainType `json:"strainType,omitempty"`
	Brand           *string     `json:"brand,omitempty"`
	Lineage         *string     `json:"lineage,omitempty"`
	THC             *float64    `json:"thc,omitempty"`
	THCA            *float64    `json:"thca,omitempty"`
	CBD             *float64    `json:"cbd,omitempty"`

	WeightGrams *float64 `json:"weightGrams,omitempty"`

	Effects StringList `json:"effects,omitempty"`
	Flavors StringList `json:"flavors,omitempty"`
	Aroma   StringList `json:"aroma,omitempty"`
	Rating  *float64   `json:"rating,omitempty"`
	Notes   *string    `json:"notes,omitempty"`

	PurchaseID *string `json:"purchaseId,omitempty"`

	JournalType      *string `json:"journalType,omitempty"`
	HiddenFromDaily  bool    `json:"hiddenFromDaily"`
	FinishedAtMs     *int64  `json:"finishedAtMs,omitempty"`
	FinishedDate     *string `json:"finishedDate,omitempty"`
	LegacyFinishedAt *int64  `json:"finishedDateLegacy,omitempty"`

	PurchaseTotalGrams     *float64     `json:"purchaseTotalGrams,omitempty"`
	PurchaseRemainingGrams *float64     `json:"purchaseRemainingGrams,omitempty"`
	CostCents              *int64       `json:"costCents,omitempty"`
	PurchaseDate           *int64       `json:"purchaseDate,omitempty"`
	ProductKind            *ProductKind `json:"productKind,omitempty"`
	WasteGrams             *float64     `json:"wasteGrams,omitempty"`
	WastePercent           *float64     `json:"wastePercent,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// IsModernArchive reports whether the entry carries the current archive tag.
func (e Entry) IsModernArchive() bool {
	return e.JournalType != nil && *e.JournalType == JournalTypePurchaseArchive
}

// IsLegacyArchive reports whether the entry matches the older archive tagging:
// hidden from daily views with a Purchase or Journal method.
func (e Entry) IsLegacyArchive() bool {
	return e.HiddenFromDaily && (e.Method == MethodPurchase || e.Method == MethodJournal)
}

// IsArchive reports whether the entry is a purchase archive record of either generation.
func (e Entry) IsArchive() bool {
	return e.IsModernArchive() || e.IsLegacyArchive()
}

// FinishedAt resolves when an archived purchase was finished.
// Order: FinishedAtMs, then the ISO FinishedDate, then the legacy field, then Time.
func (e Entry) FinishedAt() int64 {
	if e.FinishedAtMs != nil && *e.FinishedAtMs > 0 {
		return *e.FinishedAtMs
	}
	if e.FinishedDate != nil {
		if ms, ok := parseISODate(*e.FinishedDate); ok {
			return ms
		}
	}
	if e.LegacyFinishedAt != nil && *e.LegacyFinishedAt > 0 {
		return *e.LegacyFinishedAt
	}
	return e.Time
}

func parseISODate(s string) (int64, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// EntryInput is the body of a create-session request.
type EntryInput struct {
	Time   *int64 `json:"time,omitempty" validate:"omitempty,gt=0"`
	Method Method `json:"method" validate:"required,oneof=Joint Blunt Bong Pipe Vape Dab Edible"`

	EdibleName *string  `json:"edibleName,omitempty" validate:"omitempty,max=200"`
	EdibleType *string  `json:"edibleType,omitempty" validate:"omitempty,max=100"`
	EdibleMg   *float64 `json:"edibleMg,omitempty" validate:"omitempty,gte=0"`

	StrainName *string     `json:"strainName,omitempty" validate:"omitempty,max=200"`
	StrainType *StrainType `json:"strainType,omitempty" validate:"omitempty,oneof=Indica Sativa Hybrid"`
	Brand      *string     `json:"brand,omitempty" validate:"omitempty,max=200"`
	THC        *float64    `json:"thc,omitempty" validate:"omitempty,gte=0,lte=100"`
	THCA       *float64    `json:"thca,omitempty" validate:"omitempty,gte=0,lte=100"`
	CBD        *float64    `json:"cbd,omitempty" validate:"omitempty,gte=0,lte=100"`

	Weight *units.Grams `json:"weightGrams,omitempty" validate:"omitempty,gte=0"`

	Effects StringList `json:"effects,omitempty"`
	Flavors StringList `json:"flavors,omitempty"`
	Aroma   StringList `json:"aroma,omitempty"`
	Rating  *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	Notes   *string    `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

// EntryPatch is a partial update of a session. Nil fields are left untouched.
type EntryPatch struct {
	Time   *int64  `json:"time,omitempty" validate:"omitempty,gt=0"`
	Method *Method `json:"method,omitempty" validate:"omitempty,oneof=Joint Blunt Bong Pipe Vape Dab Edible"`

	EdibleName *string  `json:"edibleName,omitempty" validate:"omitempty,max=200"`
	EdibleType *string  `json:"edibleType,omitempty" validate:"omitempty,max=100"`
	EdibleMg   *float64 `json:"edibleMg,omitempty" validate:"omitempty,gte=0"`

	StrainName *string     `json:"strainName,omitempty" validate:"omitempty,max=200"`
	StrainType *StrainType `json:"strainType,omitempty" validate:"omitempty,oneof=Indica Sativa Hybrid"`
	Brand      *string     `json:"brand,omitempty" validate:"omitempty,max=200"`
	THC        *float64    `json:"thc,omitempty" validate:"omitempty,gte=0,lte=100"`
	THCA       *float64    `json:"thca,omitempty" validate:"omitempty,gte=0,lte=100"`
	CBD        *float64    `json:"cbd,omitempty" validate:"omitempty,gte=0,lte=100"`

	Weight *units.Grams `json:"weightGrams,omitempty" validate:"omitempty,gte=0"`

	Effects StringList `json:"effects,omitempty"`
	Flavors StringList `json:"flavors,omitempty"`
	Aroma   StringList `json:"aroma,omitempty"`
	Rating  *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	Notes   *string    `json:"notes,omitempty" validate:"omitempty,max=5000"`

	// StrainID is set by the service after a successful cultivar upsert.
	StrainID *string `json:"-"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Time == nil && p.Method == nil &&
		p.EdibleName == nil && p.EdibleType == nil && p.EdibleMg == nil &&
		p.StrainName == nil && p.StrainType == nil && p.Brand == nil &&
		p.THC == nil && p.THCA == nil && p.CBD == nil &&
		p.Weight == nil && p.Rating == nil && p.Notes == nil &&
		p.Effects == nil && p.Flavors == nil && p.Aroma == nil &&
		p.StrainID == nil
}

// EntryFilter selects entries of one user. Zero values disable a condition.
type EntryFilter struct {
	UserID string

	// From is inclusive, To is exclusive. Both are epoch milliseconds.
	From *int64
	To   *int64

	// ExcludeArchived drops rows hidden from daily views and archive rows.
	ExcludeArchived bool

	JournalType     *string
	HiddenFromDaily *bool
	Methods         []Method
	PurchaseID      *string
}
