// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	ErrInvalidAppConfigs      = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs  = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs   = errors.New("invalid server configuration")
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)
