// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. It answers 404
// instead of chi's 405 when the matched route does not serve the requested
// method, so unsupported methods do not reveal which paths exist.
//
// Only exact patterns are compared; parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range routesOf(router) {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			writeError(w, r, msgNotFound, http.StatusNotFound)
			return
		}

		found.Handlers[r.Method].ServeHTTP(w, r)
	}
}

// routesOf flattens mounted subrouters so that patterns are full paths.
func routesOf(router chi.Routes) []chi.Route {
	var routes []chi.Route
	_ = chi.Walk(router, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		for i := range routes {
			if routes[i].Pattern == route {
				routes[i].Handlers[method] = handler
				return nil
			}
		}
		routes = append(routes, chi.Route{Pattern: route, Handlers: map[string]http.Handler{method: handler}})
		return nil
	})
	return routes
}
