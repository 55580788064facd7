// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/units"
	"github.com/MKhiriev/go-stash-journal/models"
)

func seedEntries(t *testing.T, repo EntryRepository, entries ...models.Entry) {
	t.Helper()
	for _, e := range entries {
		_, err := repo.CreateEntry(context.Background(), e)
		require.NoError(t, err)
	}
}

func TestEntryRepository_CreateGetUpdateDelete(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntryRepository(db, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateEntry(ctx, models.Entry{
		ID: "e1", UserID: "u1", Time: 1000, Method: models.Bong,
		StrainName: ptr("Blue Dream"), WeightGrams: ptr(0.3),
		Flavors:   models.StringList{"berry"},
		CreatedAt: 1000, UpdatedAt: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "blue dream", *created.StrainNameLower)

	got, err := repo.GetEntry(ctx, "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Nil(t, got.Rating)
	assert.False(t, got.HiddenFromDaily)

	_, err = repo.GetEntry(ctx, "u2", "e1")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	weight := units.Grams(0.5)
	err = repo.UpdateEntry(ctx, "u1", "e1", models.EntryPatch{
		StrainName: ptr("OG Kush"),
		Weight:     &weight,
		StrainID:   ptr("s9"),
	}, 2000)
	require.NoError(t, err)

	got, err = repo.GetEntry(ctx, "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, "OG Kush", *got.StrainName)
	assert.Equal(t, "og kush", *got.StrainNameLower)
	assert.Equal(t, "s9", *got.StrainID)
	assert.Equal(t, 0.5, *got.WeightGrams)
	assert.Equal(t, models.StringList{"berry"}, got.Flavors)
	assert.Equal(t, int64(2000), got.UpdatedAt)

	assert.ErrorIs(t, repo.UpdateEntry(ctx, "u2", "e1", models.EntryPatch{Notes: ptr("x")}, 3000), ErrEntryNotFound)

	require.NoError(t, repo.DeleteEntry(ctx, "u1", "e1"))
	assert.ErrorIs(t, repo.DeleteEntry(ctx, "u1", "e1"), ErrEntryNotFound)
}

func TestEntryRepository_ListEntries(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntryRepository(db, logger.Nop())
	ctx := context.Background()

	archive := models.JournalTypePurchaseArchive
	seedEntries(t, repo,
		models.Entry{ID: "a", UserID: "u1", Time: 100, Method: models.Joint, CreatedAt: 1, UpdatedAt: 1},
		models.Entry{ID: "b", UserID: "u1", Time: 200, Method: models.Dab, CreatedAt: 1, UpdatedAt: 1},
		models.Entry{ID: "c", UserID: "u1", Time: 300, Method: models.MethodPurchase, JournalType: &archive, HiddenFromDaily: true, CreatedAt: 1, UpdatedAt: 1},
		models.Entry{ID: "d", UserID: "u1", Time: 150, Method: models.MethodJournal, HiddenFromDaily: true, CreatedAt: 1, UpdatedAt: 1},
		models.Entry{ID: "x", UserID: "u2", Time: 150, Method: models.Joint, CreatedAt: 1, UpdatedAt: 1},
	)

	ids := func(entries []models.Entry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	all, err := repo.ListEntries(ctx, models.EntryFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(all))

	daily, err := repo.ListEntries(ctx, models.EntryFilter{UserID: "u1", ExcludeArchived: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(daily))

	window, err := repo.ListEntries(ctx, models.EntryFilter{UserID: "u1", From: ptr(int64(100)), To: ptr(int64(200))})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a"}, ids(window))

	modern, err := repo.ListEntries(ctx, models.EntryFilter{UserID: "u1", JournalType: &archive})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(modern))

	legacy, err := repo.ListEntries(ctx, models.EntryFilter{
		UserID:          "u1",
		HiddenFromDaily: ptr(true),
		Methods:         []models.Method{models.MethodPurchase, models.MethodJournal},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(legacy))

	none, err := repo.ListEntries(ctx, models.EntryFilter{UserID: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
