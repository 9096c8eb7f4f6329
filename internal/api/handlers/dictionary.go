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

// DictionaryHandler handles the reference glossary.
type DictionaryHandler struct {
	dictionaryService *service.DictionaryService
}

// NewDictionaryHandler creates a new DictionaryHandler
func NewDictionaryHandler(dictionaryService *service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryService: dictionaryService,
	}
}

// Entries handles GET requests for the glossary.
//
// Endpoint: GET /api/dictionary
// Query Parameters:
//   - category: only entries of this category (optional)
//
// Response: 200 OK with array of DictionaryEntry ordered by term
// Error: 500 Internal Server Error if retrieval fails
func (h *DictionaryHandler) Entries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.dictionaryService.GetEntries(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEntries.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

func (h *DictionaryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	entry, err := h.dictionaryService.GetEntry(r.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDictionaryEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDictionaryEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEntries.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// CreateEntry handles POST requests to add a glossary term.
//
// Endpoint: POST /api/dictionary
// Request Body: CreateDictionaryEntryRequest
// Response: 201 Created with DictionaryEntry
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict if the term already exists
// Error: 500 Internal Server Error if creation fails
func (h *DictionaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDictionaryEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDictionaryEntry(req); err != nil {
		respondValidationError(w, err)
		return
	}

	entry, err := h.dictionaryService.CreateEntry(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateEntry.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create dictionary entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// UpdateEntry handles PUT requests to change a glossary term.
//
// Endpoint: PUT /api/dictionary/{uuid}
// Request Body: UpdateDictionaryEntryRequest (all fields optional)
// Response: 200 OK with DictionaryEntry
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the entry does not exist
// Error: 409 Conflict if the new term already exists
// Error: 500 Internal Server Error if the update fails
func (h *DictionaryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateDictionaryEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateDictionaryEntry(req); err != nil {
		respondValidationError(w, err)
		return
	}

	entry, err := h.dictionaryService.UpdateEntry(r.Context(), entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDictionaryEntryNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDictionaryEntryNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDuplicateEntry):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateEntry.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update dictionary entry", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

func (h *DictionaryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	if err := h.dictionaryService.DeleteEntry(r.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrDictionaryEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDictionaryEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete dictionary entry", err.Error())
		return
	}

	response.RespondNoContent(w)
}
