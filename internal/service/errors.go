// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoUserID = errors.New("no user ID was given")

	// ErrFinishIncomplete is returned when a purchase was marked depleted but
	// its archive entry could not be written or the purchase not deleted.
	// Calling Finish again completes the remaining steps.
	ErrFinishIncomplete = errors.New("purchase finished but not archived")
)
