// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 Not Found instead of chi's default 405, so the existence of a
// route is not revealed to callers using an unsupported method.
//
// The route is looked up by comparing each registered pattern with the raw
// request path; parameterised patterns never match and always yield 404.
// When the method is in fact registered for the matched pattern the request
// is served by router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeError(w, r, "CheckHTTPMethod", errRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
