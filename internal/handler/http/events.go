// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
)

// events streams the change feed of the user as server-sent events. Each
// event is named after its collection and carries the change as JSON. The
// subscription ends when the client disconnects.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.events"
	log := logger.FromRequest(r)

	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}
	if h.services.ChangeFeed == nil {
		writeError(w, r, fn, ErrChangeFeedDisabled)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, fn, ErrStreamingUnsupported)
		return
	}

	ctx := r.Context()
	events, cancel := h.services.ChangeFeed.Subscribe(ctx, userID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	log.Debug().Str("func", fn).Str("user_id", userID).Msg("change feed subscribed")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("func", fn).Str("user_id", userID).Msg("change feed client gone")
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				log.Err(err).Str("func", fn).Msg("error encoding change event")
				continue
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Collection, data); err != nil {
				return
			}
			flusher.Flush()

		case <-heartbeat.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
