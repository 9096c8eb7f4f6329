package validation

import (
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
)

func ValidateCreateDictionaryEntry(req request.CreateDictionaryEntryRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Term) == "" {
		errors["term"] = "term is required"
	} else if len(req.Term) > 100 {
		errors["term"] = "term must be 100 characters or less"
	}

	if strings.TrimSpace(req.Definition) == "" {
		errors["definition"] = "definition is required"
	} else if len(req.Definition) > 2000 {
		errors["definition"] = "definition must be 2000 characters or less"
	}

	if len(req.Category) > 50 {
		errors["category"] = "category must be 50 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateDictionaryEntry(req request.UpdateDictionaryEntryRequest) error {
	errors := make(map[string]string)

	if req.Term != nil {
		if strings.TrimSpace(*req.Term) == "" {
			errors["term"] = "term cannot be empty"
		} else if len(*req.Term) > 100 {
			errors["term"] = "term must be 100 characters or less"
		}
	}
	if req.Definition != nil {
		if strings.TrimSpace(*req.Definition) == "" {
			errors["definition"] = "definition cannot be empty"
		} else if len(*req.Definition) > 2000 {
			errors["definition"] = "definition must be 2000 characters or less"
		}
	}
	if req.Category != nil && len(*req.Category) > 50 {
		errors["category"] = "category must be 50 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
