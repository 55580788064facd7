//go:build integration

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

func newPostgresDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("journal"),
		postgres.WithUsername("journal"),
		postgres.WithPassword("journal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewConnectPostgres(ctx, config.DB{DSN: dsn, Driver: config.DriverPostgres}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestPostgres_ConcurrentDeductions(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()

	users := NewUserRepository(db, logger.Nop())
	_, err := users.CreateUser(ctx, models.User{UserID: "u1", Login: "john", PasswordHash: "h", CreatedAt: 1})
	require.NoError(t, err)

	purchases := NewPurchaseRepository(db, logger.Nop())
	_, err = purchases.CreatePurchase(ctx, models.Purchase{
		ID: "p1", UserID: "u1", StrainName: "OG Kush", TotalGrams: 1, RemainingGrams: 1,
		Status: models.PurchaseActive, CreatedAt: 1, UpdatedAt: 1,
	})
	require.NoError(t, err)

	const sessions = 4
	var wg sync.WaitGroup
	errs := make(chan error, sessions)
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- db.WithinTx(ctx, func(ctx context.Context, tx TxRepositories) error {
				p, err := tx.Purchases.FindDeductionCandidate(ctx, "u1", "og kush")
				if err != nil {
					return err
				}
				remaining := p.RemainingGrams - 0.25
				status := models.PurchaseActive
				if remaining <= 0 {
					status = models.PurchaseDepleted
				}
				return tx.Purchases.SetRemaining(ctx, "u1", p.ID, remaining, status, time.Now().UnixMilli())
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	p, err := purchases.GetPurchase(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.RemainingGrams)
	assert.Equal(t, models.PurchaseDepleted, p.Status)
}

func TestPostgres_LegacyStrainKey(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()

	_, err := NewUserRepository(db, logger.Nop()).CreateUser(ctx, models.User{UserID: "u1", Login: "john", PasswordHash: "h", CreatedAt: 1})
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO strains (id, user_id, name, name_lc, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		"s1", "u1", "Sour Diesel", "sour diesel", 1, 1)
	require.NoError(t, err)

	got, err := NewStrainRepository(db, logger.Nop()).FindStrainByNameKey(ctx, "u1", "sour diesel")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
}
