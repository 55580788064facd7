// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering a login that is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the login.
	ErrUserNotFound = errors.New("no user was found")

	// ErrStrainNotFound is returned when no strain of the user matches.
	ErrStrainNotFound = errors.New("strain was not found")

	// ErrEntryNotFound is returned when no entry of the user matches.
	// Entries of other users are reported the same way.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrPurchaseNotFound is returned when no purchase of the user matches.
	ErrPurchaseNotFound = errors.New("purchase was not found")

	// ErrNoDeductionCandidate is returned when no active purchase with
	// remaining grams matches a strain key.
	ErrNoDeductionCandidate = errors.New("no purchase to deduct from")

	// ErrStorageUnavailable marks transient failures (lost connection,
	// deadlock, busy database). It always wraps a more specific error.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
