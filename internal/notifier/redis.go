// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

// ErrRedisURLRequired is returned by [NewRedisRelay] without a redis URL.
var ErrRedisURLRequired = errors.New("redis url is required")

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisRelay is a [Notifier] that routes events through redis pub/sub.
// Events published on any instance reach the subscribers of every instance.
type RedisRelay struct {
	client publisher
	closer func() error
	pubsub *redis.PubSub
	prefix string
	local  *Broker
	done   chan struct{}
	logger *logger.Logger
}

// NewRedisRelay connects to cfg.RedisURL and starts relaying the channels
// "<prefix>:events:*" into a local broker.
func NewRedisRelay(ctx context.Context, cfg config.Notifier, log *logger.Logger) (*RedisRelay, error) {
	if cfg.RedisURL == "" {
		return nil, ErrRedisURLRequired
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	r := newRelay(client, cfg.ChannelPrefix, NewBroker(cfg.BufferSize, log), log)
	r.closer = client.Close
	r.pubsub = client.PSubscribe(ctx, r.channel("*"))

	go r.run(r.pubsub.Channel())

	return r, nil
}

func newRelay(client publisher, prefix string, local *Broker, log *logger.Logger) *RedisRelay {
	return &RedisRelay{
		client: client,
		prefix: prefix,
		local:  local,
		done:   make(chan struct{}),
		logger: log,
	}
}

func (r *RedisRelay) channel(userID string) string {
	return r.prefix + ":events:" + userID
}

// Publish sends event to the redis channel of its user. Failures are logged.
func (r *RedisRelay) Publish(ctx context.Context, event models.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Err(err).Str("func", "*RedisRelay.Publish").Msg("error encoding change event")
		return
	}

	if err = r.client.Publish(ctx, r.channel(event.UserID), payload).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*RedisRelay.Publish").Msg("error publishing change event")
	}
}

// Subscribe subscribes to the local broker fed by redis.
func (r *RedisRelay) Subscribe(ctx context.Context, userID string) (<-chan models.ChangeEvent, func()) {
	return r.local.Subscribe(ctx, userID)
}

func (r *RedisRelay) run(messages <-chan *redis.Message) {
	defer close(r.done)
	for msg := range messages {
		r.handle(msg)
	}
}

func (r *RedisRelay) handle(msg *redis.Message) {
	var event models.ChangeEvent
	if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
		r.logger.Warn().Err(err).Str("func", "*RedisRelay.handle").Str("channel", msg.Channel).Msg("dropping malformed change event")
		return
	}

	// the channel name is authoritative for the owner
	if userID, ok := strings.CutPrefix(msg.Channel, r.prefix+":events:"); ok {
		event.UserID = userID
	}
	r.local.Publish(context.Background(), event)
}

// Close stops relaying and closes the redis connection and all subscriptions.
func (r *RedisRelay) Close() error {
	var errs []error
	if r.pubsub != nil {
		errs = append(errs, r.pubsub.Close())
		<-r.done
	}
	if r.closer != nil {
		errs = append(errs, r.closer())
	}
	errs = append(errs, r.local.Close())
	return errors.Join(errs...)
}
