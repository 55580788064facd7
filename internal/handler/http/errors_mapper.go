// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/internal/units"
	"github.com/MKhiriev/go-stash-journal/internal/utils"
	"github.com/MKhiriev/go-stash-journal/internal/validators"
)

// errorStatus pairs a sentinel error with its HTTP status.
type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is matched in order; the first sentinel found in the error
// chain decides the status.
var errorStatusMap = []errorStatus{
	{service.ErrFinishIncomplete, http.StatusInternalServerError},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{ErrChangeFeedDisabled, http.StatusServiceUnavailable},

	{service.ErrValidationNoUserID, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrValidation, http.StatusBadRequest},
	{units.ErrInvalidGrams, http.StatusBadRequest},
	{units.ErrEmptyGrams, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrInvalidParam, http.StatusBadRequest},

	{store.ErrLoginAlreadyExists, http.StatusConflict},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrStrainNotFound, http.StatusNotFound},
	{store.ErrEntryNotFound, http.StatusNotFound},
	{store.ErrPurchaseNotFound, http.StatusNotFound},
	{errRouteNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, target := range errorStatusMap {
		if errors.Is(err, target.err) {
			return target.status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with its mapped status. Server side
// failures are reported with the status text only.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse{Error: message}, status)
}
