package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
)

// DictionaryService handles the reference glossary.
type DictionaryService struct {
	dictionaryRepo *repository.DictionaryRepository
}

// NewDictionaryService creates a new DictionaryService.
func NewDictionaryService(dictionaryRepo *repository.DictionaryRepository) *DictionaryService {
	return &DictionaryService{dictionaryRepo: dictionaryRepo}
}

// GetEntries returns the glossary, optionally limited to one category.
func (s *DictionaryService) GetEntries(ctx context.Context, category string) ([]model.DictionaryEntry, error) {
	return s.dictionaryRepo.GetEntries(ctx, strings.TrimSpace(category))
}

func (s *DictionaryService) GetEntry(ctx context.Context, id string) (model.DictionaryEntry, error) {
	return s.dictionaryRepo.GetEntry(ctx, id)
}

// CreateEntry stores a new glossary term.
// Returns apperrors.ErrDuplicateEntry when the term is already defined.
func (s *DictionaryService) CreateEntry(ctx context.Context, req request.CreateDictionaryEntryRequest) (*model.DictionaryEntry, error) {
	entry := &model.DictionaryEntry{
		ID:         uuid.New().String(),
		Term:       strings.TrimSpace(req.Term),
		Definition: strings.TrimSpace(req.Definition),
		Category:   strings.TrimSpace(req.Category),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	if err := s.dictionaryRepo.InsertEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create dictionary entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry changes the provided fields of an entry.
func (s *DictionaryService) UpdateEntry(
	ctx context.Context,
	id string,
	req request.UpdateDictionaryEntryRequest,
) (*model.DictionaryEntry, error) {
	entry, err := s.dictionaryRepo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Term != nil {
		entry.Term = strings.TrimSpace(*req.Term)
	}
	if req.Definition != nil {
		entry.Definition = strings.TrimSpace(*req.Definition)
	}
	if req.Category != nil {
		entry.Category = strings.TrimSpace(*req.Category)
	}

	if err := s.dictionaryRepo.UpdateEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to update dictionary entry: %w", err)
	}

	return &entry, nil
}

func (s *DictionaryService) DeleteEntry(ctx context.Context, id string) error {
	return s.dictionaryRepo.DeleteEntry(ctx, id)
}
