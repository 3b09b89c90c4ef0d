// internal/app/system/httpjson/httpjson.go

// Package httpjson writes the JSON envelopes used by every API endpoint.
// Success payloads carry "success": true alongside operation-specific fields;
// failures are always {"success": false, "error": "<message>"}.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the failure envelope with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
