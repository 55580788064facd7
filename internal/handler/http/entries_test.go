// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/internal/validators"
	"github.com/MKhiriev/go-stash-journal/models"
)

func entriesRouter(t *testing.T, entries *mockEntryService, opts ...Option) http.Handler {
	return newTestRouter(t, &service.Services{EntryService: entries}, opts...)
}

// ─────────────────────────────────────────────
// createEntry
// ─────────────────────────────────────────────

func TestCreateEntry_Success(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		createFn: func(_ context.Context, userID string, in models.EntryInput) (models.Entry, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, models.Joint, in.Method)
			require.NotNil(t, in.Weight)
			assert.Equal(t, 0.35, in.Weight.Float64())
			return models.Entry{ID: "e-1", Method: in.Method, StrainName: in.StrainName}, nil
		},
	})

	rec := do(t, router, http.MethodPost, "/api/entries", `{"method":"Joint","strainName":"Gelato","weightGrams":"0.35 grams"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "e-1", got.ID)
	assert.Equal(t, "Gelato", *got.StrainName)
}

func TestCreateEntry_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed json", body: `{"method":`, wantStatus: http.StatusBadRequest},
		{name: "bad weight", body: `{"method":"Joint","weightGrams":"lots"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"method":"Joint","userId":"someone-else"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "validation",
			body:       `{"method":"Sniff"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage unavailable",
			body:       `{"method":"Vape"}`,
			serviceErr: fmt.Errorf("error creating entry: %w", store.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unexpected",
			body:       `{"method":"Vape"}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := entriesRouter(t, &mockEntryService{
				createFn: func(context.Context, string, models.EntryInput) (models.Entry, error) {
					if tt.serviceErr == nil {
						t.Fatal("service must not be reached")
					}
					return models.Entry{}, tt.serviceErr
				},
			})

			rec := do(t, router, http.MethodPost, "/api/entries", tt.body)

			requireJSONError(t, rec, tt.wantStatus)
		})
	}
}

// ─────────────────────────────────────────────
// listEntries
// ─────────────────────────────────────────────

func TestListEntries_DefaultsToTodayInDefaultLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	var gotDay time.Time
	router := entriesRouter(t, &mockEntryService{
		listForDayFn: func(_ context.Context, _ string, day time.Time) ([]models.Entry, error) {
			gotDay = day
			return []models.Entry{}, nil
		},
	}, WithDefaultLocation(loc))

	rec := do(t, router, http.MethodGet, "/api/entries", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	assert.Equal(t, loc, gotDay.Location())
	assert.Equal(t, time.Now().In(loc).Format(dayLayout), gotDay.Format(dayLayout))
}

func TestListEntries_DayInRequestedZone(t *testing.T) {
	var gotDay time.Time
	router := entriesRouter(t, &mockEntryService{
		listForDayFn: func(_ context.Context, _ string, day time.Time) ([]models.Entry, error) {
			gotDay = day
			return []models.Entry{{ID: "e-1"}}, nil
		},
	})

	rec := do(t, router, http.MethodGet, "/api/entries?day=2026-03-15&tz=Europe/Berlin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Europe/Berlin", gotDay.Location().String())
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, gotDay.Location()), gotDay)
}

func TestListEntries_Range(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		listForRangeFn: func(_ context.Context, _ string, from, to int64) ([]models.Entry, error) {
			assert.Equal(t, int64(1000), from)
			assert.Equal(t, int64(2000), to)
			return nil, nil
		},
	})

	rec := do(t, router, http.MethodGet, "/api/entries?from=1000&to=2000", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEntries_All(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		listAllFn: func(context.Context, string) ([]models.Entry, error) {
			return []models.Entry{{ID: "e-1"}, {ID: "archive-1", HiddenFromDaily: true}}, nil
		},
	})

	rec := do(t, router, http.MethodGet, "/api/entries?all=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListEntries_BadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "from without to", query: "?from=1000"},
		{name: "to without from", query: "?to=1000"},
		{name: "non numeric from", query: "?from=yesterday&to=1000"},
		{name: "negative to", query: "?from=0&to=-5"},
		{name: "bad day", query: "?day=15.03.2026"},
		{name: "bad zone", query: "?tz=Mars/Olympus"},
	}

	router := entriesRouter(t, &mockEntryService{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/api/entries"+tt.query, "")

			requireJSONError(t, rec, http.StatusBadRequest)
		})
	}
}

func TestListEntries_InvertedRangeFromService(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		listForRangeFn: func(context.Context, string, int64, int64) ([]models.Entry, error) {
			return nil, fmt.Errorf("%w: to must be after from", service.ErrInvalidDataProvided)
		},
	})

	rec := do(t, router, http.MethodGet, "/api/entries?from=2000&to=1000", "")

	requireJSONError(t, rec, http.StatusBadRequest)
}

// ─────────────────────────────────────────────
// getEntry / updateEntry / deleteEntry
// ─────────────────────────────────────────────

func TestGetEntry(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		getFn: func(_ context.Context, _ string, id string) (models.Entry, error) {
			if id == "e-1" {
				return models.Entry{ID: "e-1"}, nil
			}
			return models.Entry{}, store.ErrEntryNotFound
		},
	})

	rec := do(t, router, http.MethodGet, "/api/entries/e-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/entries/missing", "")
	requireJSONError(t, rec, http.StatusNotFound)
}

func TestUpdateEntry(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		updateFn: func(_ context.Context, _ string, id string, patch models.EntryPatch) (models.Entry, error) {
			assert.Equal(t, "e-1", id)
			require.NotNil(t, patch.Notes)
			assert.Equal(t, "smooth", *patch.Notes)
			return models.Entry{ID: id, Notes: patch.Notes}, nil
		},
	})

	rec := do(t, router, http.MethodPatch, "/api/entries/e-1", `{"notes":"smooth"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":"smooth"`)
}

func TestUpdateEntry_EmptyPatch(t *testing.T) {
	router := entriesRouter(t, &mockEntryService{
		updateFn: func(context.Context, string, string, models.EntryPatch) (models.Entry, error) {
			return models.Entry{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate)
		},
	})

	rec := do(t, router, http.MethodPatch, "/api/entries/e-1", `{}`)

	requireJSONError(t, rec, http.StatusBadRequest)
}

func TestDeleteEntry(t *testing.T) {
	deleted := ""
	router := entriesRouter(t, &mockEntryService{
		deleteFn: func(_ context.Context, _ string, id string) error {
			deleted = id
			return nil
		},
	})

	rec := do(t, router, http.MethodDelete, "/api/entries/e-1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "e-1", deleted)
}
