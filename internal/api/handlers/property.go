package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// PropertyHandler handles HTTP requests for property endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the propertyService.
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler with the provided service dependency.
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// Properties handles GET requests to retrieve all properties.
//
// Endpoint: GET /api/property
// Response: 200 OK with array of Property
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) Properties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.GetProperties(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProperties.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, properties)
}

// GetProperty handles GET requests to retrieve a single property.
//
// Endpoint: GET /api/property/{uuid}
// Response: 200 OK with Property
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	property, err := h.propertyService.GetProperty(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProperty.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, property)
}

// CreateProperty handles POST requests to create a new property.
// Money fields are in cents. The outstanding balance and net equity are
// derived from the loan terms when omitted.
//
// Endpoint: POST /api/property
// Request Body: CreatePropertyRequest
// Response: 201 Created with Property
// Error: 400 Bad Request if validation fails, the body is invalid or the country is unknown
// Error: 500 Internal Server Error if creation fails
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProperty(req); err != nil {
		respondValidationError(w, err)
		return
	}

	property, err := h.propertyService.CreateProperty(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCountryNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCountryNotFound.Error(), err.Error())
			return
		}
		if respondValidationError(w, err) {
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, property)
}

// UpdateProperty handles PUT requests to update an existing property.
//
// Endpoint: PUT /api/property/{uuid}
// Request Body: UpdatePropertyRequest (all fields optional)
// Response: 200 OK with updated Property
// Error: 400 Bad Request if validation fails or the country is unknown
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if update fails
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProperty(req); err != nil {
		respondValidationError(w, err)
		return
	}

	property, err := h.propertyService.UpdateProperty(r.Context(), propertyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPropertyNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrCountryNotFound):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCountryNotFound.Error(), err.Error())
		case respondValidationError(w, err):
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update property", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, property)
}

// DeleteProperty handles DELETE requests to remove a property.
//
// Endpoint: DELETE /api/property/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if deletion fails
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	if err := h.propertyService.DeleteProperty(r.Context(), propertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete property", err.Error())
		return
	}

	response.RespondNoContent(w)
}

// Metrics handles GET requests for the calculated metrics of a property:
// amortization, real appreciation, true ROI, historical MIRR and ratios.
//
// Endpoint: GET /api/property/{uuid}/metrics
// Response: 200 OK with PropertyMetrics
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if calculation fails
func (h *PropertyHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	metrics, err := h.propertyService.GetMetrics(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, metrics)
}

// Projection handles GET requests for the future projection of a property.
//
// Endpoint: GET /api/property/{uuid}/projection
// Query Parameters:
//   - years: comma separated horizons, e.g. "0,1,5" (optional)
//   - inflationAdjusted: "true" to deflate amounts to today's money (optional)
//
// Response: 200 OK with PropertyProjection
// Error: 400 Bad Request if query parameters are invalid
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if calculation fails
func (h *PropertyHandler) Projection(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	filter, err := request.ParseProjectionFilter(r.URL.Query().Get("years"), r.URL.Query().Get("inflationAdjusted"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	projection, err := h.propertyService.GetProjection(r.Context(), propertyID, *filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, projection)
}

// ProjectedMIRR handles GET requests for the forward-looking MIRR of a property.
//
// Endpoint: GET /api/property/{uuid}/mirr
// Query Parameters:
//   - horizonMonths: months to project, 1-480 (optional, default 120)
//
// Response: 200 OK with MIRRSummary
// Error: 400 Bad Request if the horizon is invalid
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if calculation fails
func (h *PropertyHandler) ProjectedMIRR(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	horizon, err := request.ParseHorizonMonths(r.URL.Query().Get("horizonMonths"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	mirr, err := h.propertyService.GetProjectedMIRR(r.Context(), propertyID, horizon)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, mirr)
}
