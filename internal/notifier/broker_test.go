// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

func receive(t *testing.T, ch <-chan models.ChangeEvent) models.ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return models.ChangeEvent{}
	}
}

func assertClosed(t *testing.T, ch <-chan models.ChangeEvent) {
	t.Helper()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestBroker_PublishToUser(t *testing.T) {
	b := NewBroker(4, logger.Nop())
	ctx := context.Background()

	mine, cancelMine := b.Subscribe(ctx, "u1")
	defer cancelMine()
	theirs, cancelTheirs := b.Subscribe(ctx, "u2")
	defer cancelTheirs()

	ev := models.ChangeEvent{UserID: "u1", Collection: models.CollectionEntries, Op: models.OpCreated, ID: "e1"}
	b.Publish(ctx, ev)

	assert.Equal(t, ev, receive(t, mine))
	select {
	case got := <-theirs:
		t.Fatalf("unexpected event for other user: %+v", got)
	default:
	}
}

func TestBroker_Cancel(t *testing.T) {
	b := NewBroker(1, logger.Nop())

	ch, cancel := b.Subscribe(context.Background(), "u1")
	assert.Equal(t, 1, b.Subscribers("u1"))

	cancel()
	cancel()
	assertClosed(t, ch)
	assert.Equal(t, 0, b.Subscribers("u1"))

	// publishing after cancel is a no-op
	b.Publish(context.Background(), models.ChangeEvent{UserID: "u1"})
}

func TestBroker_ContextDone(t *testing.T) {
	b := NewBroker(1, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	ch, _ := b.Subscribe(ctx, "u1")
	cancel()

	assertClosed(t, ch)
	assert.Eventually(t, func() bool { return b.Subscribers("u1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestBroker_DropsWhenFull(t *testing.T) {
	b := NewBroker(1, logger.Nop())
	ctx := context.Background()

	ch, cancel := b.Subscribe(ctx, "u1")
	defer cancel()

	b.Publish(ctx, models.ChangeEvent{UserID: "u1", ID: "first"})
	b.Publish(ctx, models.ChangeEvent{UserID: "u1", ID: "second"})

	assert.Equal(t, "first", receive(t, ch).ID)
	select {
	case ev := <-ch:
		t.Fatalf("expected drop, got %+v", ev)
	default:
	}
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker(0, logger.Nop())
	ch, cancel := b.Subscribe(context.Background(), "u1")

	require.NoError(t, b.Close())
	assertClosed(t, ch)
	cancel()

	late, _ := b.Subscribe(context.Background(), "u1")
	assertClosed(t, late)
}

func TestBroker_CloseStopsWatchers(t *testing.T) {
	b := NewBroker(0, logger.Nop())
	_, cancelA := b.Subscribe(context.Background(), "u1")
	_, cancelB := b.Subscribe(context.Background(), "u2")

	closed := make(chan struct{})
	go func() {
		_ = b.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return while subscriber contexts were alive")
	}

	cancelA()
	cancelB()
	assert.Zero(t, b.Subscribers("u1"))
	require.NoError(t, b.Close())
}
