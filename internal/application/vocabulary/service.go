package vocabulary

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skuforge/backend/internal/domain/vocabulary"
)

// Service manages per-user vocabulary entries
type Service struct {
	repo   vocabulary.Repository
	logger *zap.Logger
}

// NewService creates a new vocabulary service
func NewService(repo vocabulary.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create adds a label to one of the user's vocabularies. Duplicate labels
// are allowed; each call appends a new immutable entry.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, category vocabulary.Category, label string) (*EntryDTO, error) {
	entry, err := vocabulary.NewEntry(userID, category, label)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error("Failed to insert vocabulary entry",
			zap.String("user_id", userID.String()),
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Vocabulary entry created",
		zap.String("user_id", userID.String()),
		zap.String("category", string(category)),
		zap.String("entry_id", entry.ID.String()))

	dto := toEntryDTO(entry)
	return &dto, nil
}

// List returns the user's entries in one category, oldest first
func (s *Service) List(ctx context.Context, userID uuid.UUID, category vocabulary.Category) ([]EntryDTO, error) {
	if !category.IsValid() {
		return nil, vocabulary.ErrUnknownCategory
	}

	entries, err := s.repo.ListByCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	return toEntryDTOs(entries), nil
}

// ListAll returns the user's entries grouped by category, as loaded by
// the data page in a single request
func (s *Service) ListAll(ctx context.Context, userID uuid.UUID) (*Catalog, error) {
	entries, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{
		ProductTypes: []EntryDTO{},
		Collections:  []EntryDTO{},
		Colors:       []EntryDTO{},
	}
	for i := range entries {
		dto := toEntryDTO(&entries[i])
		switch entries[i].Category {
		case vocabulary.CategoryProductType:
			catalog.ProductTypes = append(catalog.ProductTypes, dto)
		case vocabulary.CategoryCollection:
			catalog.Collections = append(catalog.Collections, dto)
		case vocabulary.CategoryColor:
			catalog.Colors = append(catalog.Colors, dto)
		}
	}
	return catalog, nil
}
