// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-stash-journal/internal/utils"
)

const defaultTopStrains = 5

// summary aggregates the sessions in [from, to). Both bounds are required.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.summary"

	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
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
	if from == nil || to == nil {
		writeError(w, r, fn, fmt.Errorf("%w: from and to are required", ErrInvalidParam))
		return
	}

	top, err := queryInt(r, "top", defaultTopStrains)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	summary, err := h.services.InsightsService.Summary(r.Context(), userID, *from, *to, top)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

// monthlyPurchases totals the purchases finished in month (YYYY-MM,
// default the current month) of the tz location.
func (h *Handler) monthlyPurchases(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.monthlyPurchases"

	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	loc, err := h.location(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}
	month, err := queryTime(r, "month", monthLayout, loc, time.Now())
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	result, err := h.services.InsightsService.MonthlyPurchases(r.Context(), userID, month.Year(), month.Month(), loc)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
