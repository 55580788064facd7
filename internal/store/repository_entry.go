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

// entryRepository is the SQL implementation of [EntryRepository]. It runs on
// the pool or, inside [DB.WithinTx], on a transaction.
type entryRepository struct {
	conn   conn
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, log *logger.Logger) EntryRepository {
	log.Debug().Msg("creating entry repository")
	return &entryRepository{
		conn:   db.conn(),
		logger: log,
	}
}

// CreateEntry inserts entry. The strain_name_lower column is derived from
// StrainName.
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEntryQuery(r.conn.dialect, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error building query")
		return models.Entry{}, buildQueryErr(err)
	}

	if _, err = r.conn.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error inserting entry")
		return models.Entry{}, r.conn.wrap(ErrExecutingStatement, err)
	}

	if entry.StrainName != nil {
		key := lowerKey(*entry.StrainName)
		entry.StrainNameLower = &key
	}
	return entry, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(r.conn.dialect, userID, entryID)
	if err != nil {
		return models.Entry{}, buildQueryErr(err)
	}

	entry, err := scanEntry(r.conn.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error scanning entry")
		return models.Entry{}, r.conn.wrap(ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, userID, entryID string, patch models.EntryPatch, updatedAt int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.conn.dialect, userID, entryID, patch, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("error building query")
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("error updating entry")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrEntryNotFound)
}

func (r *entryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.conn.dialect, entriesTable, userID, entryID)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error deleting entry")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrEntryNotFound)
}

func (r *entryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.conn.dialect, filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error building query")
		return nil, buildQueryErr(err)
	}

	rows, err := r.conn.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error querying entries")
		return nil, r.conn.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error scanning entry")
			return nil, r.conn.wrap(ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, r.conn.wrap(ErrScanningRows, err)
	}

	return entries, nil
}
