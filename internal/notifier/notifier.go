// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier fans out per-user change events to live subscribers.
//
// [Broker] delivers events inside one process. [RedisRelay] publishes events
// to redis and feeds a local broker from a pattern subscription, so every
// server instance sharing the redis sees every write.
package notifier

import (
	"context"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

// Notifier publishes change events and hands out subscriptions.
type Notifier interface {
	// Publish never blocks. Events for slow subscribers are dropped.
	Publish(ctx context.Context, event models.ChangeEvent)

	// Subscribe returns the event stream of userID and a cancel function.
	// The channel is closed after cancel is called or ctx is done.
	Subscribe(ctx context.Context, userID string) (<-chan models.ChangeEvent, func())

	Close() error
}

// New returns a [RedisRelay] when cfg names a redis URL and a [Broker] otherwise.
func New(ctx context.Context, cfg config.Notifier, log *logger.Logger) (Notifier, error) {
	if cfg.RedisURL == "" {
		log.Info().Str("func", "notifier.New").Msg("using in-memory change feed")
		return NewBroker(cfg.BufferSize, log), nil
	}

	relay, err := NewRedisRelay(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", "notifier.New").Msg("using redis change feed")
	return relay, nil
}
