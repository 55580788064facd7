// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

const defaultBufferSize = 16

type subscription struct {
	ch   chan models.ChangeEvent
	once sync.Once
}

func (s *subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

// Broker is an in-process [Notifier].
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscription]struct{}
	buffer int
	closed bool
	done   chan struct{}
	// watchers counts the goroutines tying subscriptions to their contexts.
	watchers sync.WaitGroup
	logger   *logger.Logger
}

// NewBroker creates a broker whose subscriber channels hold buffer events.
func NewBroker(buffer int, log *logger.Logger) *Broker {
	if buffer <= 0 {
		buffer = defaultBufferSize
	}
	return &Broker{
		subs:   make(map[string]map[*subscription]struct{}),
		buffer: buffer,
		done:   make(chan struct{}),
		logger: log,
	}
}

// Publish delivers event to every subscriber of event.UserID.
func (b *Broker) Publish(ctx context.Context, event models.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[event.UserID] {
		select {
		case sub.ch <- event:
		default:
			b.logger.Debug().
				Str("func", "*Broker.Publish").
				Str("collection", string(event.Collection)).
				Msg("subscriber buffer full, event dropped")
		}
	}
}

// Subscribe registers a subscriber for userID. After Close the returned
// channel is already closed.
func (b *Broker) Subscribe(ctx context.Context, userID string) (<-chan models.ChangeEvent, func()) {
	sub := &subscription{ch: make(chan models.ChangeEvent, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return sub.ch, func() {}
	}
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*subscription]struct{})
	}
	b.subs[userID][sub] = struct{}{}
	b.watchers.Add(1)
	b.mu.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			b.remove(userID, sub)
		})
	}

	go func() {
		defer b.watchers.Done()
		select {
		case <-ctx.Done():
			cancel()
		case <-stop:
		case <-b.done:
		}
	}()

	return sub.ch, cancel
}

func (b *Broker) remove(userID string, sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.subs[userID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(b.subs, userID)
		}
	}
	sub.close()
}

// Subscribers returns the number of live subscriptions of userID.
func (b *Broker) Subscribers(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

// Close ends every subscription and waits for their watchers to exit.
func (b *Broker) Close() error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.done)
	}
	for userID, subs := range b.subs {
		for sub := range subs {
			sub.close()
		}
		delete(b.subs, userID)
	}
	b.mu.Unlock()

	b.watchers.Wait()
	return nil
}
