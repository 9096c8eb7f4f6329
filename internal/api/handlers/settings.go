package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// SettingsHandler handles the country assumption bundles and the selected country.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Countries handles GET requests to list every country bundle.
//
// Endpoint: GET /api/settings/country
// Response: 200 OK with array of CountrySettings
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.settingsService.GetCountries(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, countries)
}

// GetCountry handles GET requests for one country bundle.
//
// Endpoint: GET /api/settings/country/{code}
// Response: 200 OK with CountrySettings
// Error: 400 Bad Request if the code is malformed
// Error: 404 Not Found if the country is unknown
func (h *SettingsHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	if err := validation.ValidateCountryCode(code); err != nil {
		respondValidationError(w, err)
		return
	}

	country, err := h.settingsService.GetCountry(r.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCountryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCountryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, country)
}

// UpdateCountry handles PUT requests that create or replace a country bundle.
//
// Endpoint: PUT /api/settings/country/{code}
// Request Body: UpdateCountrySettingsRequest
// Response: 200 OK with CountrySettings
// Error: 400 Bad Request if validation fails
// Error: 500 Internal Server Error if the update fails
func (h *SettingsHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	if err := validation.ValidateCountryCode(code); err != nil {
		respondValidationError(w, err)
		return
	}

	req, err := parseJSON[request.UpdateCountrySettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCountrySettings(req); err != nil {
		respondValidationError(w, err)
		return
	}

	country, err := h.settingsService.UpdateCountry(r.Context(), code, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update country settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, country)
}

// SelectedCountry handles GET requests for the selected country bundle.
//
// Endpoint: GET /api/settings/selected
// Response: 200 OK with CountrySettings
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) SelectedCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.settingsService.GetSelectedCountry(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, country)
}

// SelectCountry handles PUT requests that change the selected country.
//
// Endpoint: PUT /api/settings/selected
// Request Body: SelectCountryRequest
// Response: 200 OK with the selected CountrySettings
// Error: 400 Bad Request if the code is malformed or unknown
// Error: 500 Internal Server Error if the update fails
func (h *SettingsHandler) SelectCountry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SelectCountryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if err := validation.ValidateCountryCode(code); err != nil {
		respondValidationError(w, err)
		return
	}

	country, err := h.settingsService.SetSelectedCountry(r.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCountryNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCountryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to select country", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, country)
}
