// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/notifier"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/internal/utils"
	"github.com/MKhiriev/go-stash-journal/internal/validators"
	"github.com/MKhiriev/go-stash-journal/models"
)

type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	StrainService   StrainService
	EntryService    EntryService
	PurchaseService PurchaseService
	InsightsService InsightsService
	ChangeFeed      ChangeFeed
}

func NewServices(storages *store.Storages, feed notifier.Notifier, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	deps := journalDeps{
		publisher: feed,
		validator: validators.NewJournalValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		metrics:   m,
		logger:    logger,
	}

	strains := newStrainService(storages.StrainRepository, deps)
	entries := newEntryService(storages.EntryRepository, storages.Transactor, strains, deps)
	purchases := newPurchaseService(storages.PurchaseRepository, storages.EntryRepository, storages.Transactor, deps)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService:  appInfoService,
		StrainService:   strains,
		EntryService:    entries,
		PurchaseService: purchases,
		InsightsService: newInsightsService(entries, purchases, logger),
		ChangeFeed:      feed,
	}, nil
}

// journalDeps are the collaborators shared by the journal services.
type journalDeps struct {
	publisher changePublisher
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func (d journalDeps) nowMillis() int64 {
	return d.now().UnixMilli()
}

func (d journalDeps) publish(ctx context.Context, userID string, collection models.Collection, op models.ChangeOp, id string) {
	if d.publisher == nil {
		return
	}
	d.publisher.Publish(ctx, models.ChangeEvent{
		UserID:     userID,
		Collection: collection,
		Op:         op,
		ID:         id,
		At:         d.nowMillis(),
	})
}

// validate runs the validator and tags failures as invalid input.
func (d journalDeps) validate(ctx context.Context, obj any) error {
	if err := d.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func requireUserID(userID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	return nil
}
