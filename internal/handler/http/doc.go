// Package http implements the MoviSimple REST API.
//
// It wires the chi router, the request handlers for auth, route calculation,
// network, health and version, and the middleware chain: panic recovery,
// trace ids, access logging, CORS, gzip and a per-request timeout. Failures
// are answered with a JSON [models.ErrorResponse].
package http
