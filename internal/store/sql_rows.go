// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-stash-journal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.UserID, &u.Login, &u.PasswordHash, &u.Name, &u.CreatedAt)
	return u, err
}

// scanStrain reads the columns of [strainColumns]. When only the legacy key
// is stored, NameLower is filled from it.
func scanStrain(s rowScanner) (models.Strain, error) {
	var (
		st        models.Strain
		nameLower sql.NullString
	)
	err := s.Scan(
		&st.ID, &st.UserID, &st.Name, &nameLower, &st.LegacyNameLC, &st.Type, &st.Brand, &st.Lineage,
		&st.THC, &st.THCA, &st.CBD, &st.Effects, &st.Flavors, &st.Aroma, &st.Notes, &st.Rating,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return models.Strain{}, err
	}

	switch {
	case nameLower.Valid && nameLower.String != "":
		st.NameLower = nameLower.String
	case st.LegacyNameLC != nil:
		st.NameLower = *st.LegacyNameLC
	default:
		_, st.NameLower = models.NormalizeName(st.Name)
	}
	return st, nil
}

// scanEntry reads the columns of [entryColumns].
func scanEntry(s rowScanner) (models.Entry, error) {
	var e models.Entry
	err := s.Scan(
		&e.ID, &e.UserID, &e.Time, &e.Method,
		&e.EdibleName, &e.EdibleType, &e.EdibleMg,
		&e.StrainID, &e.StrainName, &e.StrainNameLower, &e.StrainType, &e.Brand, &e.Lineage,
		&e.THC, &e.THCA, &e.CBD, &e.WeightGrams,
		&e.Effects, &e.Flavors, &e.Aroma, &e.Rating, &e.Notes,
		&e.PurchaseID, &e.JournalType, &e.HiddenFromDaily,
		&e.FinishedAtMs, &e.FinishedDate, &e.LegacyFinishedAt,
		&e.PurchaseTotalGrams, &e.PurchaseRemainingGrams, &e.CostCents, &e.PurchaseDate,
		&e.ProductKind, &e.WasteGrams, &e.WastePercent,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

// scanPurchase reads the columns of [purchaseColumns].
func scanPurchase(s rowScanner) (models.Purchase, error) {
	var (
		p         models.Purchase
		nameLower sql.NullString
		status    sql.NullString
	)
	err := s.Scan(
		&p.ID, &p.UserID, &p.StrainName, &nameLower, &p.StrainType, &p.Lineage, &p.Brand,
		&p.THC, &p.THCA, &p.CBD, &p.TotalGrams, &p.RemainingGrams, &p.TotalCostCents, &p.PurchaseDate,
		&status, &p.ProductKind, &p.ConcentrateCategory, &p.ConcentrateForm,
		&p.WasteGrams, &p.WastePercent,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.Purchase{}, err
	}

	p.Status = models.PurchaseStatus(status.String)
	if nameLower.Valid && nameLower.String != "" {
		p.StrainNameLower = nameLower.String
	} else {
		_, p.StrainNameLower = models.NormalizeName(p.StrainName)
	}
	return p, nil
}
