// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/utils"
	"github.com/MKhiriev/go-stash-journal/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createEntry", err)
		return
	}

	var in models.EntryInput
	if err = readBody(r, &in); err != nil {
		writeError(w, r, "*Handler.createEntry", err)
		return
	}

	entry, err := h.services.EntryService.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, r, "*Handler.createEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

// listEntries serves three views:
//   - all=true: every entry including purchase archives;
//   - from and to (epoch ms): sessions in [from, to);
//   - otherwise the calendar day given by day (YYYY-MM-DD, default today)
//     in the tz location.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.listEntries"
	ctx := r.Context()

	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	if r.URL.Query().Get("all") == "true" {
		entries, err := h.services.EntryService.ListAll(ctx, userID)
		if err != nil {
			writeError(w, r, fn, err)
			return
		}
		utils.WriteJSON(w, entries, http.StatusOK)
		return
	}

	from, err := queryMillis(r, "from")
	if err != nil {
		writeError(w, r, fn, err)
		return
	}
	to, err := queryMillis(r, "to")
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var entries []models.Entry
	switch {
	case from != nil && to != nil:
		entries, err = h.services.EntryService.ListForRange(ctx, userID, *from, *to)
	case from != nil || to != nil:
		err = fmt.Errorf("%w: from and to go together", ErrInvalidParam)
	default:
		var loc *time.Location
		if loc, err = h.location(r); err != nil {
			break
		}
		var day time.Time
		if day, err = queryTime(r, "day", dayLayout, loc, time.Now()); err != nil {
			break
		}
		entries, err = h.services.EntryService.ListForDay(ctx, userID, day)
	}
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getEntry", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getEntry", err)
		return
	}

	entry, err := h.services.EntryService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, "*Handler.getEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateEntry", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateEntry", err)
		return
	}

	var patch models.EntryPatch
	if err = readBody(r, &patch); err != nil {
		writeError(w, r, "*Handler.updateEntry", err)
		return
	}

	entry, err := h.services.EntryService.Update(r.Context(), userID, id, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteEntry", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteEntry", err)
		return
	}

	if err = h.services.EntryService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, "*Handler.deleteEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
