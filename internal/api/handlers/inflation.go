package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// InflationHandler handles the yearly inflation table.
type InflationHandler struct {
	inflationService *service.InflationService
}

// NewInflationHandler creates a new InflationHandler
func NewInflationHandler(inflationService *service.InflationService) *InflationHandler {
	return &InflationHandler{
		inflationService: inflationService,
	}
}

// Rates handles GET requests for the effective inflation table: the built-in
// history with stored overrides applied.
//
// Endpoint: GET /api/inflation
// Response: 200 OK with array of InflationDataPoint ordered by year
// Error: 500 Internal Server Error if retrieval fails
func (h *InflationHandler) Rates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.inflationService.GetRates(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInflation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// SetRate handles PUT requests that store the rate of one year.
//
// Endpoint: PUT /api/inflation/{year}
// Request Body: UpdateInflationRateRequest
// Response: 200 OK with InflationDataPoint
// Error: 400 Bad Request if the year or rate is invalid
// Error: 500 Internal Server Error if the update fails
func (h *InflationHandler) SetRate(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidYear.Error(), err.Error())
		return
	}

	req, err := parseJSON[request.UpdateInflationRateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInflationRate(year, req); err != nil {
		respondValidationError(w, err)
		return
	}

	point, err := h.inflationService.SetRate(r.Context(), year, *req.Rate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to set inflation rate", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, point)
}
