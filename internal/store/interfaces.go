// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-stash-journal/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// StrainRepository persists the cultivar catalog of each user.
type StrainRepository interface {
	CreateStrain(ctx context.Context, strain models.Strain) (models.Strain, error)
	GetStrain(ctx context.Context, userID, strainID string) (models.Strain, error)
	// FindStrainByNameKey matches key against the canonical name_lower
	// column first and the legacy name_lc column second.
	FindStrainByNameKey(ctx context.Context, userID, key string) (models.Strain, error)
	ListStrains(ctx context.Context, userID string) ([]models.Strain, error)
	// SaveStrain overwrites every attribute of an existing strain and sets
	// its canonical name key.
	SaveStrain(ctx context.Context, strain models.Strain) error
	DeleteStrain(ctx context.Context, userID, strainID string) error
}

// EntryRepository persists sessions and purchase archive entries.
type EntryRepository interface {
	// CreateEntry inserts only the columns that are set on entry.
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error)
	// UpdateEntry writes the non-nil fields of patch and updatedAt.
	UpdateEntry(ctx context.Context, userID, entryID string, patch models.EntryPatch, updatedAt int64) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
	// ListEntries returns entries matching filter ordered by time descending.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, error)
}

// PurchaseRepository persists purchase lots.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error)
	GetPurchase(ctx context.Context, userID, purchaseID string) (models.Purchase, error)
	// GetPurchaseForUpdate reads a purchase and locks its row until the
	// surrounding transaction ends.
	GetPurchaseForUpdate(ctx context.Context, userID, purchaseID string) (models.Purchase, error)
	// ListPurchases returns purchases ordered by updated_at descending.
	// A nil status lists all; active also matches an unset status.
	ListPurchases(ctx context.Context, userID string, status *models.PurchaseStatus) ([]models.Purchase, error)
	UpdatePurchase(ctx context.Context, userID, purchaseID string, patch models.PurchasePatch, updatedAt int64) error
	DeletePurchase(ctx context.Context, userID, purchaseID string) error
	// FindDeductionCandidate returns the most recently updated active
	// purchase with remaining grams for strainKey, locked for update.
	FindDeductionCandidate(ctx context.Context, userID, strainKey string) (models.Purchase, error)
	SetRemaining(ctx context.Context, userID, purchaseID string, remaining float64, status models.PurchaseStatus, updatedAt int64) error
	// SetFinished sets remaining grams to zero, marks the purchase depleted
	// and stores its waste.
	SetFinished(ctx context.Context, userID, purchaseID string, wasteGrams, wastePercent *float64, updatedAt int64) error
}

// TxRepositories are repositories bound to one open transaction.
type TxRepositories struct {
	Entries   EntryRepository
	Purchases PurchaseRepository
}

// Transactor runs a unit of work in a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}
