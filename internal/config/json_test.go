// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"token_sign_key": "k", "token_duration": "90m", "default_timezone": "America/Denver", "password_hash_cost": 11},
		"storage": {"db": {"dsn": "journal.db", "driver": "sqlite3"}},
		"server": {"http_address": "localhost:8081", "request_timeout": 15000000000},
		"notifier": {"redis_url": "redis://r:6379", "channel_prefix": "p", "buffer_size": 4}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "America/Denver", cfg.App.DefaultTimezone)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "redis://r:6379", cfg.Notifier.RedisURL)
	assert.Equal(t, "p", cfg.Notifier.ChannelPrefix)
	assert.Equal(t, 4, cfg.Notifier.BufferSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(b))
}
