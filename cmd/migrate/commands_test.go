// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
)

func runMigrate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, logger.Nop())
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrate_UpStatusDown(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "journal.db")
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	t.Setenv("STORAGE_DB_DRIVER", "")

	out, err := runMigrate(t, "up", "--driver", config.DriverSQLite, "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")

	out, err = runMigrate(t, "status", "--driver", config.DriverSQLite, "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "00001_init.sql")
	assert.Contains(t, out, "applied")

	out, err = runMigrate(t, "down", "--driver", config.DriverSQLite, "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "reverted 3")
}

func TestMigrate_DSNFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:"+filepath.Join(t.TempDir(), "env.db"))
	t.Setenv("STORAGE_DB_DRIVER", config.DriverSQLite)

	out, err := runMigrate(t, "up")

	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")
}

func TestMigrate_MissingDSN(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "")

	_, err := runMigrate(t, "status", "--driver", config.DriverSQLite)

	require.ErrorIs(t, err, config.ErrInvalidStorageConfigs)
}

func TestMigrate_UnknownCommand(t *testing.T) {
	_, err := runMigrate(t, "sideways")

	assert.Error(t, err)
}
