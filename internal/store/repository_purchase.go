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

// purchaseRepository is the SQL implementation of [PurchaseRepository]. It
// runs on the pool or, inside [DB.WithinTx], on a transaction.
type purchaseRepository struct {
	conn   conn
	logger *logger.Logger
}

// NewPurchaseRepository constructs a [PurchaseRepository] backed by db.
func NewPurchaseRepository(db *DB, log *logger.Logger) PurchaseRepository {
	log.Debug().Msg("creating purchase repository")
	return &purchaseRepository{
		conn:   db.conn(),
		logger: log,
	}
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	_, purchase.StrainNameLower = models.NormalizeName(purchase.StrainName)

	query, args, err := buildCreatePurchaseQuery(r.conn.dialect, purchase)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.CreatePurchase").Msg("error building query")
		return models.Purchase{}, buildQueryErr(err)
	}

	if _, err = r.conn.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*purchaseRepository.CreatePurchase").Msg("error inserting purchase")
		return models.Purchase{}, r.conn.wrap(ErrExecutingStatement, err)
	}

	return purchase, nil
}

func (r *purchaseRepository) GetPurchase(ctx context.Context, userID, purchaseID string) (models.Purchase, error) {
	return r.get(ctx, userID, purchaseID, false)
}

func (r *purchaseRepository) GetPurchaseForUpdate(ctx context.Context, userID, purchaseID string) (models.Purchase, error) {
	return r.get(ctx, userID, purchaseID, true)
}

func (r *purchaseRepository) get(ctx context.Context, userID, purchaseID string, lock bool) (models.Purchase, error) {
	query, args, err := buildGetPurchaseQuery(r.conn.dialect, userID, purchaseID, lock)
	if err != nil {
		return models.Purchase{}, buildQueryErr(err)
	}
	return r.queryOne(ctx, "*purchaseRepository.GetPurchase", query, args, ErrPurchaseNotFound)
}

func (r *purchaseRepository) ListPurchases(ctx context.Context, userID string, status *models.PurchaseStatus) ([]models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPurchasesQuery(r.conn.dialect, userID, status)
	if err != nil {
		return nil, buildQueryErr(err)
	}

	rows, err := r.conn.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.ListPurchases").Msg("error querying purchases")
		return nil, r.conn.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	purchases := make([]models.Purchase, 0)
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			log.Err(err).Str("func", "*purchaseRepository.ListPurchases").Msg("error scanning purchase")
			return nil, r.conn.wrap(ErrScanningRow, err)
		}
		purchases = append(purchases, purchase)
	}
	if err = rows.Err(); err != nil {
		return nil, r.conn.wrap(ErrScanningRows, err)
	}

	return purchases, nil
}

func (r *purchaseRepository) UpdatePurchase(ctx context.Context, userID, purchaseID string, patch models.PurchasePatch, updatedAt int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePurchaseQuery(r.conn.dialect, userID, purchaseID, patch, updatedAt)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.UpdatePurchase").Msg("error updating purchase")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrPurchaseNotFound)
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, userID, purchaseID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.conn.dialect, purchasesTable, userID, purchaseID)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.DeletePurchase").Msg("error deleting purchase")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrPurchaseNotFound)
}

func (r *purchaseRepository) FindDeductionCandidate(ctx context.Context, userID, strainKey string) (models.Purchase, error) {
	query, args, err := buildDeductionCandidateQuery(r.conn.dialect, userID, strainKey)
	if err != nil {
		return models.Purchase{}, buildQueryErr(err)
	}
	return r.queryOne(ctx, "*purchaseRepository.FindDeductionCandidate", query, args, ErrNoDeductionCandidate)
}

func (r *purchaseRepository) SetRemaining(ctx context.Context, userID, purchaseID string, remaining float64, status models.PurchaseStatus, updatedAt int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetRemainingQuery(r.conn.dialect, userID, purchaseID, remaining, status, updatedAt)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.SetRemaining").Msg("error updating remaining grams")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrPurchaseNotFound)
}

func (r *purchaseRepository) SetFinished(ctx context.Context, userID, purchaseID string, wasteGrams, wastePercent *float64, updatedAt int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetFinishedQuery(r.conn.dialect, userID, purchaseID, wasteGrams, wastePercent, updatedAt)
	if err != nil {
		return buildQueryErr(err)
	}

	res, err := r.conn.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.SetFinished").Msg("error finishing purchase")
		return r.conn.wrap(ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrPurchaseNotFound)
}

func (r *purchaseRepository) queryOne(ctx context.Context, fn, query string, args []any, notFound error) (models.Purchase, error) {
	purchase, err := scanPurchase(r.conn.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Purchase{}, notFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error scanning purchase")
		return models.Purchase{}, r.conn.wrap(ErrScanningRow, err)
	}
	return purchase, nil
}
