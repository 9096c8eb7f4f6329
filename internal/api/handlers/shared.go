package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T, rejecting unknown fields and
// trailing data.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if r.Body == nil {
		return req, errors.New("request body is required")
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	if decoder.More() {
		return req, errors.New("request body must contain a single JSON object")
	}
	return req, nil
}

// respondValidationError writes a 400 with per-field details when err is a
// validation failure and reports whether it did.
func respondValidationError(w http.ResponseWriter, err error) bool {
	var ve *validation.Error
	if errors.As(err, &ve) {
		response.RespondFieldErrors(w, ve.Fields)
		return true
	}
	if errors.Is(err, validation.ErrInvalidDate) || errors.Is(err, validation.ErrInvalidUUID) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return true
	}
	return false
}
