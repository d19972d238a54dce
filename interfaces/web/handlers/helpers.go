package handlers

import (
	"encoding/json"
	"net/http"

	"cmsadmin/logging"
)

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Default().Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
