// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/models"
)

// entryService implements [EntryService] and the deduction of session
// weight from purchases.
type entryService struct {
	entries    store.EntryRepository
	transactor store.Transactor
	strains    StrainService
	journalDeps
}

func newEntryService(entries store.EntryRepository, transactor store.Transactor, strains StrainService, deps journalDeps) *entryService {
	return &entryService{
		entries:     entries,
		transactor:  transactor,
		strains:     strains,
		journalDeps: deps,
	}
}

func (s *entryService) Create(ctx context.Context, userID string, in models.EntryInput) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := requireUserID(userID); err != nil {
		return models.Entry{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return models.Entry{}, err
	}

	entry := s.entryFromInput(userID, in)

	if entry.StrainName != nil {
		entry.StrainID = s.linkStrain(ctx, userID,
			strainInputFromEntry(*entry.StrainName, entry.StrainType, entry.Brand, entry.THC, entry.THCA, entry.CBD))
	}

	var (
		created models.Entry
		err     error
	)
	if deductible(entry) {
		created, err = s.createWithDeduction(ctx, entry)
	} else {
		created, err = s.entries.CreateEntry(ctx, entry)
	}
	if err != nil {
		log.Err(err).Str("func", "*entryService.Create").Msg("error creating entry")
		return models.Entry{}, fmt.Errorf("error creating entry: %w", err)
	}

	s.publish(ctx, userID, models.CollectionEntries, models.OpCreated, created.ID)
	return created, nil
}

// deductible reports whether creating entry consumes from a purchase.
func deductible(e models.Entry) bool {
	return e.Method.Smokeable() &&
		e.WeightGrams != nil && *e.WeightGrams > 0 &&
		e.StrainNameLower != nil && *e.StrainNameLower != ""
}

// createWithDeduction decrements the newest matching active purchase and
// inserts entry linked to it in one transaction. Without a candidate the
// entry is inserted unlinked. If the transaction fails the entry is
// inserted unlinked outside of it.
//
// Remaining grams are not floored: a deduction larger than the remainder
// stores a negative value and depletes the purchase.
func (s *entryService) createWithDeduction(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	var (
		created   models.Entry
		purchased *models.Purchase
	)
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, tx store.TxRepositories) error {
		candidate, err := tx.Purchases.FindDeductionCandidate(ctx, entry.UserID, *entry.StrainNameLower)
		if errors.Is(err, store.ErrNoDeductionCandidate) {
			created, err = tx.Entries.CreateEntry(ctx, entry)
			return err
		}
		if err != nil {
			return err
		}

		remaining := candidate.RemainingGrams - *entry.WeightGrams
		status := models.PurchaseActive
		if remaining <= 0 {
			status = models.PurchaseDepleted
		}

		if err = tx.Purchases.SetRemaining(ctx, entry.UserID, candidate.ID, remaining, status, entry.UpdatedAt); err != nil {
			return err
		}

		linked := entry
		linked.PurchaseID = &candidate.ID
		if created, err = tx.Entries.CreateEntry(ctx, linked); err != nil {
			return err
		}

		candidate.RemainingGrams = remaining
		candidate.Status = status
		purchased = &candidate
		return nil
	})
	if err != nil {
		s.metrics.IncDeduction(metrics.DeductionFallback)
		log.Warn().Err(err).Str("func", "*entryService.createWithDeduction").Msg("deduction failed, creating entry without purchase link")
		return s.entries.CreateEntry(ctx, entry)
	}

	if purchased == nil {
		s.metrics.IncDeduction(metrics.DeductionNoMatch)
		return created, nil
	}

	s.metrics.IncDeduction(metrics.DeductionLinked)
	log.Debug().
		Str("func", "*entryService.createWithDeduction").
		Str("purchase_id", purchased.ID).
		Float64("remaining", purchased.RemainingGrams).
		Msg("deducted session weight from purchase")
	s.publish(ctx, entry.UserID, models.CollectionPurchases, models.OpUpdated, purchased.ID)

	return created, nil
}

// linkStrain upserts the cultivar of a session. Failures are logged and
// yield no link; the session is written either way.
func (s *entryService) linkStrain(ctx context.Context, userID string, in models.StrainInput) *string {
	if s.strains == nil {
		return nil
	}

	id, err := s.strains.Upsert(ctx, userID, in)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*entryService.linkStrain").
			Str("strain", in.Name).
			Msg("strain upsert failed, entry is saved without strain link")
		return nil
	}
	return &id
}

func (s *entryService) entryFromInput(userID string, in models.EntryInput) models.Entry {
	now := s.nowMillis()

	entry := models.Entry{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Time:      now,
		Method:    in.Method,
		Brand:     nonBlank(in.Brand),
		THC:       in.THC,
		THCA:      in.THCA,
		CBD:       in.CBD,
		Effects:   in.Effects,
		Flavors:   in.Flavors,
		Aroma:     in.Aroma,
		Rating:    in.Rating,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Time != nil {
		entry.Time = *in.Time
	}

	if in.StrainName != nil {
		if display, key := models.NormalizeName(*in.StrainName); display != "" {
			entry.StrainName = &display
			entry.StrainNameLower = &key
			entry.StrainType = in.StrainType
		}
	}

	if in.Method == models.Edible {
		entry.EdibleName = nonBlank(in.EdibleName)
		entry.EdibleType = nonBlank(in.EdibleType)
		entry.EdibleMg = in.EdibleMg
	} else {
		entry.WeightGrams = in.Weight.Ptr()
	}

	return entry
}

func (s *entryService) Get(ctx context.Context, userID, entryID string) (models.Entry, error) {
	if err := requireUserID(userID); err != nil {
		return models.Entry{}, err
	}
	return s.entries.GetEntry(ctx, userID, entryID)
}

// Update applies patch. A non-blank strain name is upserted like on
// create, a blank one clears the strain snapshot. The purchase link and
// inventory are not touched.
func (s *entryService) Update(ctx context.Context, userID, entryID string, patch models.EntryPatch) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := requireUserID(userID); err != nil {
		return models.Entry{}, err
	}
	if err := s.validate(ctx, patch); err != nil {
		return models.Entry{}, err
	}

	if patch.StrainName != nil {
		display, _ := models.NormalizeName(*patch.StrainName)
		patch.StrainName = &display
		if display != "" {
			patch.StrainID = s.linkStrain(ctx, userID,
				strainInputFromEntry(display, patch.StrainType, patch.Brand, patch.THC, patch.THCA, patch.CBD))
		}
	}

	if err := s.entries.UpdateEntry(ctx, userID, entryID, patch, s.nowMillis()); err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			log.Err(err).Str("func", "*entryService.Update").Str("id", entryID).Msg("error updating entry")
		}
		return models.Entry{}, err
	}

	s.publish(ctx, userID, models.CollectionEntries, models.OpUpdated, entryID)
	return s.entries.GetEntry(ctx, userID, entryID)
}

// Delete removes the entry. Inventory deducted by it is not restored.
func (s *entryService) Delete(ctx context.Context, userID, entryID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if err := s.entries.DeleteEntry(ctx, userID, entryID); err != nil {
		return err
	}

	s.publish(ctx, userID, models.CollectionEntries, models.OpDeleted, entryID)
	return nil
}

func (s *entryService) ListForDay(ctx context.Context, userID string, day time.Time) ([]models.Entry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return s.ListForRange(ctx, userID, start.UnixMilli(), end.UnixMilli())
}

func (s *entryService) ListForRange(ctx context.Context, userID string, from, to int64) ([]models.Entry, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if to <= from {
		return nil, fmt.Errorf("%w: range end must be after its start", ErrInvalidDataProvided)
	}

	return s.entries.ListEntries(ctx, models.EntryFilter{
		UserID:          userID,
		From:            &from,
		To:              &to,
		ExcludeArchived: true,
	})
}

func (s *entryService) ListAll(ctx context.Context, userID string) ([]models.Entry, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.entries.ListEntries(ctx, models.EntryFilter{UserID: userID})
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	if display, _ := models.NormalizeName(*s); display != "" {
		return &display
	}
	return nil
}
