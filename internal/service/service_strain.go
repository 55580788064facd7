// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/models"
)

// strainService implements [StrainService].
//
// Strain names are unique per user by convention only: two concurrent
// upserts of a new name can both miss the lookup and create two records.
type strainService struct {
	strains store.StrainRepository
	journalDeps
}

func newStrainService(strains store.StrainRepository, deps journalDeps) *strainService {
	return &strainService{
		strains:     strains,
		journalDeps: deps,
	}
}

func (s *strainService) Upsert(ctx context.Context, userID string, in models.StrainInput) (string, error) {
	strain, _, err := s.upsert(ctx, userID, in)
	if err != nil {
		return "", err
	}
	return strain.ID, nil
}

// upsert reports whether the strain was created.
func (s *strainService) upsert(ctx context.Context, userID string, in models.StrainInput) (models.Strain, bool, error) {
	log := logger.FromContext(ctx)

	if err := requireUserID(userID); err != nil {
		return models.Strain{}, false, err
	}
	if err := s.validate(ctx, in); err != nil {
		return models.Strain{}, false, err
	}

	display, key := models.NormalizeName(in.Name)
	supplied := strainFromInput(in)
	supplied.Name = display
	supplied.NameLower = key

	now := s.nowMillis()

	existing, err := s.strains.FindStrainByNameKey(ctx, userID, key)
	switch {
	case errors.Is(err, store.ErrStrainNotFound):
		supplied.ID = s.ids.Generate()
		supplied.UserID = userID
		supplied.CreatedAt = now
		supplied.UpdatedAt = now

		created, err := s.strains.CreateStrain(ctx, supplied)
		if err != nil {
			s.metrics.IncUpsert(metrics.UpsertFailed)
			log.Err(err).Str("func", "*strainService.upsert").Msg("error creating strain")
			return models.Strain{}, false, fmt.Errorf("error creating strain: %w", err)
		}

		s.metrics.IncUpsert(metrics.UpsertCreated)
		s.publish(ctx, userID, models.CollectionStrains, models.OpCreated, created.ID)
		return created, true, nil

	case err != nil:
		s.metrics.IncUpsert(metrics.UpsertFailed)
		log.Err(err).Str("func", "*strainService.upsert").Msg("error looking strain up")
		return models.Strain{}, false, fmt.Errorf("error looking strain up: %w", err)
	}

	// the stored display name is kept; only the key is canonicalised
	supplied.Name = ""
	if err = mergeStrain(&existing, supplied); err != nil {
		return models.Strain{}, false, err
	}
	existing.NameLower = key
	existing.UpdatedAt = now

	if err = s.strains.SaveStrain(ctx, existing); err != nil {
		s.metrics.IncUpsert(metrics.UpsertFailed)
		log.Err(err).Str("func", "*strainService.upsert").Str("id", existing.ID).Msg("error saving strain")
		return models.Strain{}, false, fmt.Errorf("error saving strain: %w", err)
	}

	s.metrics.IncUpsert(metrics.UpsertUpdated)
	s.publish(ctx, userID, models.CollectionStrains, models.OpUpdated, existing.ID)
	return existing, false, nil
}

func (s *strainService) Get(ctx context.Context, userID, strainID string) (models.Strain, error) {
	if err := requireUserID(userID); err != nil {
		return models.Strain{}, err
	}
	return s.strains.GetStrain(ctx, userID, strainID)
}

func (s *strainService) List(ctx context.Context, userID string) ([]models.Strain, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.strains.ListStrains(ctx, userID)
}

// Update applies patch to the strain addressed by id. Renaming moves the
// search key along with the name.
func (s *strainService) Update(ctx context.Context, userID, strainID string, patch models.StrainPatch) (models.Strain, error) {
	if err := requireUserID(userID); err != nil {
		return models.Strain{}, err
	}
	if err := s.validate(ctx, patch); err != nil {
		return models.Strain{}, err
	}

	strain, err := s.strains.GetStrain(ctx, userID, strainID)
	if err != nil {
		return models.Strain{}, err
	}

	supplied := strainFromPatch(patch)
	if patch.Name != nil {
		supplied.Name, supplied.NameLower = models.NormalizeName(*patch.Name)
	}
	if err = mergeStrain(&strain, supplied); err != nil {
		return models.Strain{}, err
	}
	strain.UpdatedAt = s.nowMillis()

	if err = s.strains.SaveStrain(ctx, strain); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*strainService.Update").Msg("error saving strain")
		return models.Strain{}, fmt.Errorf("error saving strain: %w", err)
	}

	s.publish(ctx, userID, models.CollectionStrains, models.OpUpdated, strain.ID)
	return strain, nil
}

func (s *strainService) Delete(ctx context.Context, userID, strainID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if err := s.strains.DeleteStrain(ctx, userID, strainID); err != nil {
		return err
	}

	s.publish(ctx, userID, models.CollectionStrains, models.OpDeleted, strainID)
	return nil
}

// mergeStrain copies every set field of src over dst. Nil pointers, nil
// lists and empty strings in src leave dst untouched.
func mergeStrain(dst *models.Strain, src models.Strain) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return fmt.Errorf("error merging strain attributes: %w", err)
	}
	return nil
}

func strainFromInput(in models.StrainInput) models.Strain {
	return models.Strain{
		Type:    in.Type,
		Brand:   in.Brand,
		Lineage: in.Lineage,
		THC:     in.THC,
		THCA:    in.THCA,
		CBD:     in.CBD,
		Effects: in.Effects,
		Flavors: in.Flavors,
		Aroma:   in.Aroma,
		Notes:   in.Notes,
		Rating:  in.Rating,
	}
}

func strainFromPatch(p models.StrainPatch) models.Strain {
	return models.Strain{
		Type:    p.Type,
		Brand:   p.Brand,
		Lineage: p.Lineage,
		THC:     p.THC,
		THCA:    p.THCA,
		CBD:     p.CBD,
		Effects: p.Effects,
		Flavors: p.Flavors,
		Aroma:   p.Aroma,
		Notes:   p.Notes,
		Rating:  p.Rating,
	}
}

// strainInputFromEntry collects the cultivar attributes a session carries.
func strainInputFromEntry(name string, strainType *models.StrainType, brand *string, thc, thca, cbd *float64) models.StrainInput {
	return models.StrainInput{
		Name:  name,
		Type:  strainType,
		Brand: brand,
		THC:   thc,
		THCA:  thca,
		CBD:   cbd,
	}
}
