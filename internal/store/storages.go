// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-stash-journal/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	StrainRepository   StrainRepository
	EntryRepository    EntryRepository
	PurchaseRepository PurchaseRepository
	Transactor         Transactor
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		StrainRepository:   NewStrainRepository(db, log),
		EntryRepository:    NewEntryRepository(db, log),
		PurchaseRepository: NewPurchaseRepository(db, log),
		Transactor:         db,
	}
}
