package namingapi

import (
	"encoding/json"
	"net/http"

	"gopkg.in/yaml.v3"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty" yaml:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

const (
	codeInvalidNumber = "invalid_number"
	codeInvalidRange  = "invalid_range"
	codeUnknownName   = "unknown_name"
	codeInternal      = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeYAML(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.WriteHeader(status)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	_ = enc.Encode(body)
	_ = enc.Close()
}

func respond(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

func respondError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: err.Error()}})
}
