package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeEmpty writes a bare status code with no body. The game client treats
// any non-JSON failure as opaque, so 400s and 500s carry nothing.
func writeEmpty(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

// decodeBody decodes the JSON request body into v. Handlers map a decode
// failure (including an empty body) to a 400 with no body.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
