// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stash-journal/internal/mock"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/models"
)

// ─────────────────────────────────────────────
// Upsert
// ─────────────────────────────────────────────

func TestStrainService_Upsert_SameNameKeepsOneRecord(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	firstID, err := j.strains.Upsert(ctx, testUserID, models.StrainInput{
		Name:  "Blue Dream",
		THC:   ptr(18.0),
		Brand: ptr("Farm A"),
	})
	require.NoError(t, err)

	secondID, err := j.strains.Upsert(ctx, testUserID, models.StrainInput{
		Name: "  blue DREAM",
		THC:  ptr(22.0),
		CBD:  ptr(0.5),
	})
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	strains, err := j.strains.List(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, strains, 1)

	s := strains[0]
	assert.Equal(t, "Blue Dream", s.Name)
	assert.Equal(t, "blue dream", s.NameLower)
	assert.Equal(t, 22.0, *s.THC)
	assert.Equal(t, 0.5, *s.CBD)
	assert.Equal(t, "Farm A", *s.Brand)

	assert.True(t, j.events.has(models.CollectionStrains, models.OpCreated, firstID))
	assert.True(t, j.events.has(models.CollectionStrains, models.OpUpdated, firstID))
}

func TestStrainService_Upsert_UsersAreIsolated(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	a, err := j.strains.Upsert(ctx, "user-a", models.StrainInput{Name: "Gelato"})
	require.NoError(t, err)
	b, err := j.strains.Upsert(ctx, "user-b", models.StrainInput{Name: "Gelato"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStrainService_Upsert_BlankName(t *testing.T) {
	j := newJournal(t)

	_, err := j.strains.Upsert(context.Background(), testUserID, models.StrainInput{Name: "   "})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestStrainService_Upsert_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	strains := mock.NewMockStrainRepository(ctrl)

	strains.EXPECT().
		FindStrainByNameKey(gomock.Any(), testUserID, "gelato").
		Return(models.Strain{}, store.ErrStorageUnavailable)

	svc := newStrainService(strains, newTestDeps(&recordingPublisher{}))

	_, err := svc.Upsert(context.Background(), testUserID, models.StrainInput{Name: "Gelato"})

	require.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestStrainService_Upsert_MatchesLegacyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	strains := mock.NewMockStrainRepository(ctrl)

	legacy := models.Strain{ID: "s-1", UserID: testUserID, Name: "Gelato", LegacyNameLC: ptr("gelato")}
	strains.EXPECT().
		FindStrainByNameKey(gomock.Any(), testUserID, "gelato").
		Return(legacy, nil)
	strains.EXPECT().
		SaveStrain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Strain) error {
			assert.Equal(t, "gelato", s.NameLower)
			assert.Equal(t, "Gelato", s.Name)
			assert.Equal(t, fixedNow.UnixMilli(), s.UpdatedAt)
			return nil
		})

	svc := newStrainService(strains, newTestDeps(&recordingPublisher{}))

	id, err := svc.Upsert(context.Background(), testUserID, models.StrainInput{Name: "GELATO"})

	require.NoError(t, err)
	assert.Equal(t, "s-1", id)
}

// ─────────────────────────────────────────────
// Update / Delete
// ─────────────────────────────────────────────

func TestStrainService_Update_RenameMovesKey(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	id, err := j.strains.Upsert(ctx, testUserID, models.StrainInput{Name: "Gelato", THC: ptr(20.0)})
	require.NoError(t, err)

	updated, err := j.strains.Update(ctx, testUserID, id, models.StrainPatch{Name: ptr(" Gelato 41 ")})
	require.NoError(t, err)
	assert.Equal(t, "Gelato 41", updated.Name)
	assert.Equal(t, "gelato 41", updated.NameLower)
	assert.Equal(t, 20.0, *updated.THC)

	again, err := j.strains.Upsert(ctx, testUserID, models.StrainInput{Name: "gelato 41"})
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestStrainService_Update_EmptyPatch(t *testing.T) {
	j := newJournal(t)

	_, err := j.strains.Update(context.Background(), testUserID, "s-1", models.StrainPatch{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestStrainService_Delete_KeepsEntrySnapshot(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	entry, err := j.entries.Create(ctx, testUserID, models.EntryInput{Method: models.Vape, StrainName: ptr("Gelato")})
	require.NoError(t, err)
	require.NotNil(t, entry.StrainID)

	require.NoError(t, j.strains.Delete(ctx, testUserID, *entry.StrainID))

	_, err = j.strains.Get(ctx, testUserID, *entry.StrainID)
	require.ErrorIs(t, err, store.ErrStrainNotFound)

	got, err := j.entries.Get(ctx, testUserID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gelato", *got.StrainName)
}
