package api

import "time"

// OptionInfo describes one declared option and its current value in
// API responses.
type OptionInfo struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Default     *string  `json:"default,omitempty"`
	Expected    int      `json:"expected,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Value       any      `json:"value"`
}

// ListOptionsResponse represents the response for listing options
type ListOptionsResponse struct {
	Schema  string       `json:"schema"`
	Options []OptionInfo `json:"options"`
	Count   int          `json:"count"`
}

// RenderResponse carries the resolved values after parsing a config
// document posted by the client.
type RenderResponse struct {
	Schema string         `json:"schema"`
	Values map[string]any `json:"values"`
}

// ParseFailureResponse reports a config line the posted document could
// not apply.
type ParseFailureResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Line    string `json:"line,omitempty"`
	LineNo  int    `json:"lineNo,omitempty"`
	Option  string `json:"option,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse represents the version information
type VersionResponse struct {
	Version    string `json:"version"`
	GitCommit  string `json:"gitCommit"`
	BuildTime  string `json:"buildTime"`
	GoVersion  string `json:"goVersion,omitempty"`
	Provenance string `json:"provenance,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
