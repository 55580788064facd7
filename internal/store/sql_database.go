// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/migrations"
)

// Dialect is the SQL flavour of the connected database. Its value is the
// database/sql driver name.
type Dialect string

const (
	DialectPostgres Dialect = config.DriverPostgres
	DialectSQLite   Dialect = config.DriverSQLite
)

// builder returns a squirrel statement builder with the dialect's placeholders.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// forUpdate appends a row lock where the dialect supports one.
// SQLite serializes writers at the database level instead.
func (d Dialect) forUpdate(b sq.SelectBuilder) sq.SelectBuilder {
	if d == DialectPostgres {
		return b.Suffix("FOR UPDATE")
	}
	return b
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn is the statement target of a repository: the pool or an open transaction.
type conn struct {
	q          queryer
	dialect    Dialect
	classifier ErrorClassificator
}

func (c conn) sb() sq.StatementBuilderType {
	return c.dialect.builder()
}

// wrap attaches sentinel to a driver error and marks transient failures
// with [ErrStorageUnavailable].
func (c conn) wrap(sentinel, err error) error {
	if c.classifier != nil && c.classifier.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// DB is an open database pool together with its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch Dialect(cfg.Driver) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Dialect reports the SQL flavour of the pool.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

func (db *DB) conn() conn {
	return conn{q: db.DB, dialect: db.dialect, classifier: db.errorClassificator}
}

// WithinTx runs fn inside a database transaction. The repositories handed
// to fn execute on the transaction. The transaction commits when fn returns
// nil and rolls back otherwise.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTx").Msg("failed to begin transaction")
		return db.conn().wrap(ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	c := conn{q: tx, dialect: db.dialect, classifier: db.errorClassificator}
	repos := TxRepositories{
		Entries:   &entryRepository{conn: c, logger: db.logger},
		Purchases: &purchaseRepository{conn: c, logger: db.logger},
	}

	if err = fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*DB.WithinTx").Msg("failed to roll back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithinTx").Msg("failed to commit transaction")
		return c.wrap(ErrCommitingTransaction, err)
	}

	return nil
}
