// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stash-journal/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// StrainService manages the cultivar catalog of a user.
type StrainService interface {
	// Upsert finds a strain by its case-insensitive name or creates it, and
	// merges every supplied attribute into it. It returns the strain id.
	Upsert(ctx context.Context, userID string, in models.StrainInput) (string, error)

	Get(ctx context.Context, userID, strainID string) (models.Strain, error)
	List(ctx context.Context, userID string) ([]models.Strain, error)
	Update(ctx context.Context, userID, strainID string, patch models.StrainPatch) (models.Strain, error)
	// Delete removes the strain only. Entries keep their snapshot.
	Delete(ctx context.Context, userID, strainID string) error
}

// EntryService manages consumption sessions.
type EntryService interface {
	// Create stores a session. Smokeable sessions with a weight and a
	// strain name are deducted from the matching active purchase.
	Create(ctx context.Context, userID string, in models.EntryInput) (models.Entry, error)

	Get(ctx context.Context, userID, entryID string) (models.Entry, error)
	Update(ctx context.Context, userID, entryID string, patch models.EntryPatch) (models.Entry, error)
	Delete(ctx context.Context, userID, entryID string) error

	// ListForDay returns the sessions of the calendar day of day, in the
	// location of day. Archive entries are left out.
	ListForDay(ctx context.Context, userID string, day time.Time) ([]models.Entry, error)
	// ListForRange returns the sessions in [from, to), archive entries left out.
	ListForRange(ctx context.Context, userID string, from, to int64) ([]models.Entry, error)
	// ListAll returns every entry including archive entries.
	ListAll(ctx context.Context, userID string) ([]models.Entry, error)
}

// PurchaseService manages stash inventory.
type PurchaseService interface {
	Create(ctx context.Context, userID string, in models.PurchaseInput) (models.Purchase, error)
	Get(ctx context.Context, userID, purchaseID string) (models.Purchase, error)
	List(ctx context.Context, userID string, status *models.PurchaseStatus) ([]models.Purchase, error)
	Update(ctx context.Context, userID, purchaseID string, patch models.PurchasePatch) (models.Purchase, error)
	Delete(ctx context.Context, userID, purchaseID string) error

	// Finish marks the purchase depleted, writes its archive entry and
	// deletes it. It returns the archive entry.
	Finish(ctx context.Context, userID, purchaseID string) (models.Entry, error)

	// ListArchived returns the archive entries of both tagging generations,
	// newest finish first.
	ListArchived(ctx context.Context, userID string) ([]models.ArchivedPurchase, error)
}

// InsightsService folds fetched entries into display aggregates.
type InsightsService interface {
	Summarize(entries []models.Entry, topN int) models.Summary
	Summary(ctx context.Context, userID string, from, to int64, topN int) (models.Summary, error)
	MonthlyPurchases(ctx context.Context, userID string, year int, month time.Month, loc *time.Location) (models.MonthlyPurchases, error)
}

// ChangeFeed hands out per-user change subscriptions.
type ChangeFeed interface {
	Subscribe(ctx context.Context, userID string) (<-chan models.ChangeEvent, func())
}

// changePublisher is the write side of the change feed.
type changePublisher interface {
	Publish(ctx context.Context, event models.ChangeEvent)
}

type idGenerator interface {
	Generate() string
}
