// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/internal/utils"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// userIDFrom returns the id stored by the auth middleware.
func userIDFrom(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		return "", service.ErrValidationNoUserID
	}
	return userID, nil
}

// readBody decodes the JSON request body into dst.
func readBody(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

func pathID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrInvalidParam)
	}
	return id, nil
}

// location resolves the tz query parameter, falling back to the handler
// default.
func (h *Handler) location(r *http.Request) (*time.Location, error) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return h.defaultLocation, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: tz: %w", ErrInvalidParam, err)
	}
	return loc, nil
}

// queryMillis parses an epoch milliseconds query parameter. A missing
// parameter yields nil.
func queryMillis(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms < 0 {
		return nil, fmt.Errorf("%w: %s must be epoch milliseconds", ErrInvalidParam, name)
	}
	return &ms, nil
}

// queryInt parses a non-negative integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidParam, name)
	}
	return v, nil
}

// queryTime parses a calendar value laid out as layout in loc. A missing
// parameter yields now in loc.
func queryTime(r *http.Request, name, layout string, loc *time.Location, now time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return now.In(loc), nil
	}

	t, err := time.ParseInLocation(layout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must look like %s", ErrInvalidParam, name, layout)
	}
	return t, nil
}
