// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/service"
)

const defaultHeartbeat = 25 * time.Second

type Handler struct {
	services *service.Services

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	// defaultLocation resolves calendar days and months when a request
	// carries no tz parameter.
	defaultLocation *time.Location

	// requestTimeout bounds every non-streaming request. Zero disables it.
	requestTimeout time.Duration

	// heartbeat is the idle interval of the change feed stream.
	heartbeat time.Duration

	logger *logger.Logger
}

// Option customises a [Handler].
type Option func(*Handler)

// WithMetrics records request metrics into m and serves g on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = g
	}
}

// WithDefaultLocation sets the zone used when a request names none.
func WithDefaultLocation(loc *time.Location) Option {
	return func(h *Handler) {
		if loc != nil {
			h.defaultLocation = loc
		}
	}
}

// WithRequestTimeout bounds the handling time of non-streaming requests.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:        services,
		defaultLocation: time.UTC,
		heartbeat:       defaultHeartbeat,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
