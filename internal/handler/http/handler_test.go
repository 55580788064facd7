// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_Defaults(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.UTC, h.defaultLocation)
	assert.Equal(t, defaultHeartbeat, h.heartbeat)
	assert.Zero(t, h.requestTimeout)
	assert.Nil(t, h.metrics)
	assert.Nil(t, h.gatherer)
}

func TestNewHandler_Options(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	loc := time.FixedZone("UTC+3", 3*60*60)

	h := NewHandler(&service.Services{}, logger.Nop(),
		WithMetrics(m, reg),
		WithDefaultLocation(loc),
		WithRequestTimeout(5*time.Second),
	)

	assert.Same(t, m, h.metrics)
	assert.Equal(t, prometheus.Gatherer(reg), h.gatherer)
	assert.Equal(t, loc, h.defaultLocation)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestWithDefaultLocation_NilKeepsUTC(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop(), WithDefaultLocation(nil))

	assert.Equal(t, time.UTC, h.defaultLocation)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
