// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/models"
)

// purchaseService implements [PurchaseService].
type purchaseService struct {
	purchases  store.PurchaseRepository
	entries    store.EntryRepository
	transactor store.Transactor
	journalDeps
}

func newPurchaseService(purchases store.PurchaseRepository, entries store.EntryRepository, transactor store.Transactor, deps journalDeps) *purchaseService {
	return &purchaseService{
		purchases:   purchases,
		entries:     entries,
		transactor:  transactor,
		journalDeps: deps,
	}
}

func (s *purchaseService) Create(ctx context.Context, userID string, in models.PurchaseInput) (models.Purchase, error) {
	if err := requireUserID(userID); err != nil {
		return models.Purchase{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return models.Purchase{}, err
	}

	now := s.nowMillis()
	display, key := models.NormalizeName(in.StrainName)

	purchase := models.Purchase{
		ID:                  s.ids.Generate(),
		UserID:              userID,
		StrainName:          display,
		StrainNameLower:     key,
		StrainType:          in.StrainType,
		Lineage:             in.Lineage,
		Brand:               nonBlank(in.Brand),
		THC:                 in.THC,
		THCA:                in.THCA,
		CBD:                 in.CBD,
		TotalGrams:          in.TotalGrams.Float64(),
		RemainingGrams:      in.TotalGrams.Float64(),
		TotalCostCents:      in.TotalCostCents,
		PurchaseDate:        in.PurchaseDate,
		Status:              models.PurchaseActive,
		ProductKind:         in.ProductKind,
		ConcentrateCategory: in.ConcentrateCategory,
		ConcentrateForm:     in.ConcentrateForm,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if in.RemainingGrams != nil {
		purchase.RemainingGrams = in.RemainingGrams.Float64()
	}

	created, err := s.purchases.CreatePurchase(ctx, purchase)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*purchaseService.Create").Msg("error creating purchase")
		return models.Purchase{}, fmt.Errorf("error creating purchase: %w", err)
	}

	s.publish(ctx, userID, models.CollectionPurchases, models.OpCreated, created.ID)
	return created, nil
}

func (s *purchaseService) Get(ctx context.Context, userID, purchaseID string) (models.Purchase, error) {
	if err := requireUserID(userID); err != nil {
		return models.Purchase{}, err
	}
	return s.purchases.GetPurchase(ctx, userID, purchaseID)
}

func (s *purchaseService) List(ctx context.Context, userID string, status *models.PurchaseStatus) ([]models.Purchase, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.purchases.ListPurchases(ctx, userID, status)
}

// Update applies patch. Manual edits may raise the remaining grams.
func (s *purchaseService) Update(ctx context.Context, userID, purchaseID string, patch models.PurchasePatch) (models.Purchase, error) {
	if err := requireUserID(userID); err != nil {
		return models.Purchase{}, err
	}
	if err := s.validate(ctx, patch); err != nil {
		return models.Purchase{}, err
	}

	if patch.StrainName != nil {
		display, _ := models.NormalizeName(*patch.StrainName)
		patch.StrainName = &display
	}

	if err := s.purchases.UpdatePurchase(ctx, userID, purchaseID, patch, s.nowMillis()); err != nil {
		if !errors.Is(err, store.ErrPurchaseNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*purchaseService.Update").Str("id", purchaseID).Msg("error updating purchase")
		}
		return models.Purchase{}, err
	}

	s.publish(ctx, userID, models.CollectionPurchases, models.OpUpdated, purchaseID)
	return s.purchases.GetPurchase(ctx, userID, purchaseID)
}

func (s *purchaseService) Delete(ctx context.Context, userID, purchaseID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if err := s.purchases.DeletePurchase(ctx, userID, purchaseID); err != nil {
		return err
	}

	s.publish(ctx, userID, models.CollectionPurchases, models.OpDeleted, purchaseID)
	return nil
}

// Finish depletes the purchase in a transaction, then writes its archive
// entry and deletes it as two separate statements.
//
// Only the first step is atomic. It stores the waste on the purchase, so
// when a later step fails the purchase stays depleted with its waste and
// ErrFinishIncomplete is returned. Calling Finish again keeps the stored
// waste, reuses an existing archive entry for the purchase and completes
// the deletion. Once the purchase is gone Finish returns its archive.
func (s *purchaseService) Finish(ctx context.Context, userID, purchaseID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := requireUserID(userID); err != nil {
		return models.Entry{}, err
	}

	now := s.now()

	var snapshot models.Purchase
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, tx store.TxRepositories) error {
		purchase, err := tx.Purchases.GetPurchaseForUpdate(ctx, userID, purchaseID)
		if err != nil {
			return err
		}
		// a retry finds remaining already at zero and keeps the stored waste
		if purchase.WasteGrams == nil {
			if grams, percent, ok := waste(purchase.TotalGrams, purchase.RemainingGrams); ok {
				purchase.WasteGrams = &grams
				purchase.WastePercent = &percent
			}
		}
		if err = tx.Purchases.SetFinished(ctx, userID, purchaseID, purchase.WasteGrams, purchase.WastePercent, now.UnixMilli()); err != nil {
			return err
		}
		snapshot = purchase
		return nil
	})
	if errors.Is(err, store.ErrPurchaseNotFound) {
		archive, found, findErr := s.findArchive(ctx, userID, purchaseID)
		if findErr != nil {
			return models.Entry{}, findErr
		}
		if !found {
			return models.Entry{}, err
		}
		s.metrics.IncFinish(metrics.FinishResumed)
		return archive, nil
	}
	if err != nil {
		s.metrics.IncFinish(metrics.FinishFailed)
		log.Err(err).Str("func", "*purchaseService.Finish").Str("id", purchaseID).Msg("error depleting purchase")
		return models.Entry{}, fmt.Errorf("error depleting purchase: %w", err)
	}
	s.publish(ctx, userID, models.CollectionPurchases, models.OpUpdated, purchaseID)

	archive, found, err := s.findArchive(ctx, userID, purchaseID)
	if err != nil {
		s.metrics.IncFinish(metrics.FinishFailed)
		log.Err(err).Str("func", "*purchaseService.Finish").Str("id", purchaseID).Msg("error looking archive entry up")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrFinishIncomplete, err)
	}

	outcome := metrics.FinishResumed
	if !found {
		archive, err = s.entries.CreateEntry(ctx, s.archiveEntry(snapshot, now))
		if err != nil {
			s.metrics.IncFinish(metrics.FinishFailed)
			log.Err(err).Str("func", "*purchaseService.Finish").Str("id", purchaseID).Msg("error creating archive entry")
			return models.Entry{}, fmt.Errorf("%w: %w", ErrFinishIncomplete, err)
		}
		outcome = metrics.FinishArchived
		s.publish(ctx, userID, models.CollectionEntries, models.OpCreated, archive.ID)
	}

	if err = s.purchases.DeletePurchase(ctx, userID, purchaseID); err != nil && !errors.Is(err, store.ErrPurchaseNotFound) {
		s.metrics.IncFinish(metrics.FinishFailed)
		log.Err(err).Str("func", "*purchaseService.Finish").Str("id", purchaseID).Msg("error deleting finished purchase")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrFinishIncomplete, err)
	}

	s.metrics.IncFinish(outcome)
	s.publish(ctx, userID, models.CollectionPurchases, models.OpDeleted, purchaseID)
	log.Info().Str("func", "*purchaseService.Finish").Str("id", purchaseID).Str("archive_id", archive.ID).Msg("purchase finished")

	return archive, nil
}

// findArchive returns the archive entry written for purchaseID, if any.
func (s *purchaseService) findArchive(ctx context.Context, userID, purchaseID string) (models.Entry, bool, error) {
	journalType := models.JournalTypePurchaseArchive
	entries, err := s.entries.ListEntries(ctx, models.EntryFilter{
		UserID:      userID,
		JournalType: &journalType,
		PurchaseID:  &purchaseID,
	})
	if err != nil {
		return models.Entry{}, false, err
	}
	if len(entries) == 0 {
		return models.Entry{}, false, nil
	}
	return entries[0], true, nil
}

// archiveEntry snapshots p as it was before it was depleted. The leftover
// of a lot finished earlier is its stored waste.
func (s *purchaseService) archiveEntry(p models.Purchase, finishedAt time.Time) models.Entry {
	ms := finishedAt.UnixMilli()
	finishedDate := finishedAt.UTC().Format(time.RFC3339)
	journalType := models.JournalTypePurchaseArchive
	purchaseID := p.ID
	total := p.TotalGrams
	remaining := p.RemainingGrams
	if p.WasteGrams != nil {
		remaining = *p.WasteGrams
	}
	name := p.StrainName
	key := p.StrainNameLower

	entry := models.Entry{
		ID:                     s.ids.Generate(),
		UserID:                 p.UserID,
		Time:                   ms,
		Method:                 models.MethodPurchase,
		StrainName:             &name,
		StrainNameLower:        &key,
		StrainType:             p.StrainType,
		Brand:                  p.Brand,
		Lineage:                p.Lineage,
		THC:                    p.THC,
		THCA:                   p.THCA,
		CBD:                    p.CBD,
		PurchaseID:             &purchaseID,
		JournalType:            &journalType,
		HiddenFromDaily:        true,
		FinishedAtMs:           &ms,
		FinishedDate:           &finishedDate,
		PurchaseTotalGrams:     &total,
		PurchaseRemainingGrams: &remaining,
		WasteGrams:             p.WasteGrams,
		WastePercent:           p.WastePercent,
		CostCents:              p.TotalCostCents,
		PurchaseDate:           p.PurchaseDate,
		ProductKind:            p.ProductKind,
		CreatedAt:              ms,
		UpdatedAt:              ms,
	}

	return entry
}

// waste returns the leftover of a finished lot and its share of the total
// in percent, clamped to [0, 100] and rounded to two decimals.
func waste(total, remaining float64) (grams, percent float64, ok bool) {
	if remaining <= 0 || total <= 0 {
		return 0, 0, false
	}

	percent = math.Round(remaining*100/total*100) / 100
	percent = math.Min(100, math.Max(0, percent))

	return remaining, percent, true
}

// ListArchived merges the archive entries of both tagging generations.
// An id matched by both queries is reported once, as the modern row.
func (s *purchaseService) ListArchived(ctx context.Context, userID string) ([]models.ArchivedPurchase, error) {
	log := logger.FromContext(ctx)

	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	journalType := models.JournalTypePurchaseArchive
	modern, err := s.entries.ListEntries(ctx, models.EntryFilter{
		UserID:      userID,
		JournalType: &journalType,
	})
	if err != nil {
		log.Err(err).Str("func", "*purchaseService.ListArchived").Msg("error listing archive entries")
		return nil, fmt.Errorf("error listing archive entries: %w", err)
	}

	hidden := true
	legacy, err := s.entries.ListEntries(ctx, models.EntryFilter{
		UserID:          userID,
		HiddenFromDaily: &hidden,
		Methods:         []models.Method{models.MethodPurchase, models.MethodJournal},
	})
	if err != nil {
		log.Err(err).Str("func", "*purchaseService.ListArchived").Msg("error listing legacy archive entries")
		return nil, fmt.Errorf("error listing legacy archive entries: %w", err)
	}

	return mergeArchives(modern, legacy), nil
}

func mergeArchives(modern, legacy []models.Entry) []models.ArchivedPurchase {
	seen := make(map[string]struct{}, len(modern)+len(legacy))
	merged := make([]models.ArchivedPurchase, 0, len(modern)+len(legacy))

	for _, group := range [][]models.Entry{modern, legacy} {
		for _, e := range group {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
			merged = append(merged, models.ArchivedPurchase{Entry: e, FinishedAt: e.FinishedAt()})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FinishedAt > merged[j].FinishedAt
	})

	return merged
}
