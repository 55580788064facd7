// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/internal/validators"
	"github.com/MKhiriev/go-stash-journal/models"
)

const testUserID = "user-1"

// fixedNow is 2026-03-15T12:00:00Z.
var fixedNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// Test doubles
// ─────────────────────────────────────────────

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event models.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) has(collection models.Collection, op models.ChangeOp, id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.events {
		if e.Collection == collection && e.Op == op && e.ID == id {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestDeps(publisher *recordingPublisher) journalDeps {
	return journalDeps{
		publisher: publisher,
		validator: validators.NewJournalValidator(),
		ids:       &sequentialIDs{},
		now:       func() time.Time { return fixedNow },
		logger:    logger.Nop(),
	}
}

// journal bundles services wired to an in-memory SQLite database.
type journal struct {
	db        *store.DB
	strains   *strainService
	entries   *entryService
	purchases *purchaseService
	insights  *insightsService
	events    *recordingPublisher
}

func newJournal(t *testing.T) *journal {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := store.NewConnect(context.Background(), config.DB{
		DSN:    "file:svc_" + name + "?mode=memory&cache=shared",
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	storages := store.NewStorages(db, logger.Nop())
	events := &recordingPublisher{}
	deps := newTestDeps(events)

	strains := newStrainService(storages.StrainRepository, deps)
	entries := newEntryService(storages.EntryRepository, storages.Transactor, strains, deps)
	purchases := newPurchaseService(storages.PurchaseRepository, storages.EntryRepository, storages.Transactor, deps)

	return &journal{
		db:        db,
		strains:   strains,
		entries:   entries,
		purchases: purchases,
		insights:  newInsightsService(entries, purchases, logger.Nop()),
		events:    events,
	}
}

func ptr[T any](v T) *T {
	return &v
}
