// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-light-client/internal/utils"
)

// CheckHTTPMethod is the router's MethodNotAllowed handler. A known path
// requested with a method it does not serve answers 404 instead of chi's
// default 405.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
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
			utils.WriteError(w, nil, http.StatusNotFound)
			return
		}

		// method is registered, delegate to the router
		router.ServeHTTP(w, r)
	}
}
