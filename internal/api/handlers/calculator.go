package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// CalculatorHandler exposes the calculators on transient input. Nothing is
// stored; amounts are major units and rates are percentages.
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// Amortization handles POST /api/calculator/amortization.
// Response: 200 OK with AmortizationResult, including the monthly schedule
// when includeSchedule is set.
func (h *CalculatorHandler) Amortization(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AmortizationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAmortizationRequest(req); err != nil {
		respondValidationError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, h.calculatorService.Amortization(req))
}

// RealAppreciation handles POST /api/calculator/roi.
// Response: 200 OK with RealAppreciationResult
func (h *CalculatorHandler) RealAppreciation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ROIRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateROIRequest(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.calculatorService.RealAppreciation(r.Context(), req)
	if err != nil {
		if respondValidationError(w, err) {
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInflation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// TrueROI handles POST /api/calculator/true-roi.
// Response: 200 OK with TrueROIResult
func (h *CalculatorHandler) TrueROI(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TrueROIRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTrueROIRequest(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.calculatorService.TrueROI(req)
	if err != nil {
		respondValidationError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// MIRR handles POST /api/calculator/mirr.
// Response: 200 OK with MIRRSummary; valid is false when the rate is undefined.
func (h *CalculatorHandler) MIRR(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.MIRRRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateMIRRRequest(req); err != nil {
		respondValidationError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, h.calculatorService.MIRR(req))
}

// Projection handles POST /api/calculator/projection. The country defaults
// to the selected one.
// Response: 200 OK with array of ProjectionRow
// Error: 400 Bad Request if validation fails or the country is unknown
func (h *CalculatorHandler) Projection(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ProjectionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateProjectionRequest(req); err != nil {
		respondValidationError(w, err)
		return
	}

	rows, err := h.calculatorService.Projection(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCountryNotFound):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCountryNotFound.Error(), err.Error())
		case errors.Is(err, finance.ErrNegativeYear), errors.Is(err, finance.ErrInvalidInflation):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateMetrics.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}
