// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

// strainRepository is the SQL implementation of [StrainRepository].
type strainRepository struct {
	conn   conn
	logger *logger.Logger
}

// NewStrainRepository constructs a [StrainRepository] backed by db.
func NewStrainRepository(db *DB, log *logger.Logger) StrainRepository {
	log.Debug().Msg("creating strain repository")
	return &strainRepository{
		conn:   db.conn(),
		logger: log,
	}
}

func (r *strainRepository) CreateStrain(ctx context.Context, strain models.Strain) (models.Strain, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateStrainQuery(r.conn.dialect, strain)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.CreateStrain").Msg("error building query")
		return models.Strain{}, buildQueryErr(err)
	}

	if _, err = r.conn.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*strainRepository.CreateStrain").Msg("error inserting strain")
		return models.Strain{}, r.conn.wrap(ErrExecutingStatement, err)
	}

	return strain, nil
}

func (r *strainRepository) GetStrain(ctx context.Context, userID, strainID string) (models.Strain, error) {
	query, args, err := buildGetStrainQuery(r.conn.dialect, userID, strainID)
	if err != nil {
		return models.Strain{}, buildQueryErr(err)
	}
	return r.queryOne(ctx, "*strainRepository.GetStrain", query, args)
}

// FindStrainByNameKey looks the key up in name_lower and falls back to the
// legacy name_lc column.
func (r *strainRepository) FindStrainByNameKey(ctx context.Context, userID, key string) (models.Strain, error) {
	for _, column := range []string{"name_lower", "name_lc"} {
		query, args, err := buildFindStrainByKeyQuery(r.conn.dialect, userID, column, key)
		if err != nil {
			return models.Strain{}, buildQueryErr(err)
		}

		strain, err := r.queryOne(ctx, "*strainRepository.FindStrainByNameKey", query, args)
		if errors.Is(err, ErrStrainNotFound) {
			continue
		}
		return strain, err
	}

	return models.Strain{}, ErrStrainNotFound
}

func (r *strainRepository) ListStrains(ctx context.Context, userID string) ([]models.Strain, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStrainsQuery(r.conn.dialect, userID)
	if err != nil {
		return nil, buildQueryErr(err)
	}

	rows, err := r.conn.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.ListStrains").Msg("error querying strains")
		return nil, r.conn.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	strains := make([]models.Strain, 0)
	for rows.Next() {
		strain, err := scanStrain(rows)
		if err != nil {
			log.Err(err).Str("func", "*strainRepository.ListStrains").Msg("error scanning strain")
			return nil, r.conn.wrap(ErrScanningRow, err)
		}
		strains = append(strains, strain)
	}
	if err = rows.Err(); err != nil {
		return nil, r.conn.wrap(ErrScanningRows, err)
	}

	return strains, nil
}

// SaveStrain rewrites an existing strain. name_lower is always written, so
// records found through the legacy key are upgraded on first save.
func (r *strainRepository) SaveStrain(ctx context.Context, strain models.Strain) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveStrainQuery(r.conn.dialect, strain)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.SaveStrain").Msg("error updating strain")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrStrainNotFound)
}

func (r *strainRepository) DeleteStrain(ctx context.Context, userID, strainID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.conn.dialect, strainsTable, userID, strainID)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.DeleteStrain").Msg("error deleting strain")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrStrainNotFound)
}

func (r *strainRepository) queryOne(ctx context.Context, fn, query string, args []any) (models.Strain, error) {
	strain, err := scanStrain(r.conn.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Strain{}, ErrStrainNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error scanning strain")
		return models.Strain{}, r.conn.wrap(ErrScanningRow, err)
	}
	return strain, nil
}

// affectedOrNotFound returns notFound when res reports no affected rows.
func affectedOrNotFound(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
