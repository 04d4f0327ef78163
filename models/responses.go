package models

// AuthResponse is returned by successful register and login calls.
type AuthResponse struct {
	User    UserInfo `json:"user"`
	Message string   `json:"message,omitempty"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// TraceID is the X-Trace-ID of the request, for log correlation.
	TraceID string `json:"trace_id,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
