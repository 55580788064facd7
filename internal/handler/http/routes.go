// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-stash-journal/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// the change feed streams; it is neither compressed nor time limited
		r.Get("/api/events", h.events)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			r.Post("/api/entries", h.createEntry)
			r.Get("/api/entries", h.listEntries)
			r.Get("/api/entries/{id}", h.getEntry)
			r.Patch("/api/entries/{id}", h.updateEntry)
			r.Delete("/api/entries/{id}", h.deleteEntry)

			r.Post("/api/strains", h.upsertStrain)
			r.Get("/api/strains", h.listStrains)
			r.Get("/api/strains/{id}", h.getStrain)
			r.Patch("/api/strains/{id}", h.updateStrain)
			r.Delete("/api/strains/{id}", h.deleteStrain)

			r.Post("/api/purchases", h.createPurchase)
			r.Get("/api/purchases", h.listPurchases)
			r.Get("/api/purchases/archive", h.listArchivedPurchases)
			r.Get("/api/purchases/{id}", h.getPurchase)
			r.Patch("/api/purchases/{id}", h.updatePurchase)
			r.Delete("/api/purchases/{id}", h.deletePurchase)
			r.Post("/api/purchases/{id}/finish", h.finishPurchase)

			r.Get("/api/insights/summary", h.summary)
			r.Get("/api/insights/purchases/monthly", h.monthlyPurchases)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
