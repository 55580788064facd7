// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/internal/units"
	"github.com/MKhiriev/go-stash-journal/internal/utils"
	"github.com/MKhiriev/go-stash-journal/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrValidation), want: http.StatusBadRequest},
		{name: "bad grams", err: units.ErrInvalidGrams, want: http.StatusBadRequest},
		{name: "empty body", err: fmt.Errorf("%w: %w", ErrInvalidBody, utils.ErrEmptyBody), want: http.StatusBadRequest},
		{name: "no user", err: service.ErrValidationNoUserID, want: http.StatusUnauthorized},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "login taken", err: store.ErrLoginAlreadyExists, want: http.StatusConflict},
		{name: "entry missing", err: fmt.Errorf("get: %w", store.ErrEntryNotFound), want: http.StatusNotFound},
		{name: "strain missing", err: store.ErrStrainNotFound, want: http.StatusNotFound},
		{name: "purchase missing", err: store.ErrPurchaseNotFound, want: http.StatusNotFound},
		{name: "storage down", err: store.ErrStorageUnavailable, want: http.StatusServiceUnavailable},
		{name: "feed disabled", err: ErrChangeFeedDisabled, want: http.StatusServiceUnavailable},
		{
			name: "incomplete finish wins over storage",
			err:  fmt.Errorf("%w: %w", service.ErrFinishIncomplete, store.ErrStorageUnavailable),
			want: http.StatusInternalServerError,
		},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "client error keeps message",
			err:         fmt.Errorf("%w: from and to go together", ErrInvalidParam),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid request parameter: from and to go together",
		},
		{
			name:        "server error hides message",
			err:         errors.New("dial tcp 10.0.0.3:5432: refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "test", tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Error)
		})
	}
}
