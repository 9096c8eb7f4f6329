// Package response writes the JSON bodies of the tracker API.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response. Details is either a
// string or, for a failed validation, a map of field name to message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON encodes data with the given status. A nil data writes the
// status only. Encoding failures are logged; the status is already sent.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// RespondNoContent writes a 204 after a successful delete.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError writes an ErrorResponse:
//
//	response.RespondError(w, http.StatusNotFound, "property not found", err.Error())
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{Error: message, Details: details})
}

// RespondFieldErrors writes a 400 listing the fields that failed validation.
func RespondFieldErrors(w http.ResponseWriter, fields map[string]string) {
	RespondError(w, http.StatusBadRequest, "validation failed", fields)
}
