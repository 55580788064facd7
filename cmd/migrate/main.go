// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command migrate applies, reverts and lists the database schema migrations.
//
//	migrate up
//	migrate down
//	migrate status --driver sqlite3 --dsn file:journal.db
//
// Connection settings default to STORAGE_DB_DATABASE_URI and
// STORAGE_DB_DRIVER.
package main

import (
	"os"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
)

func main() {
	log := logger.NewLogger("go-stash-migrate")

	if err := newRootCmd(os.Stdout, log).Execute(); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
