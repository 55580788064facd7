// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/api/strains", ok)
	router.Post("/api/strains", ok)
	router.Get("/api/strains/{id}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET", method: http.MethodGet, path: "/api/strains", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/api/strains", wantStatus: http.StatusOK},
		{name: "unregistered method", method: http.MethodPut, path: "/api/strains", wantStatus: http.StatusNotFound},
		{name: "unregistered method on param route", method: http.MethodPost, path: "/api/strains/s-1", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	router := newCheckMethodRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_AnswersJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	newCheckMethodRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/strains", nil))

	requireJSONError(t, rec, http.StatusNotFound)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
