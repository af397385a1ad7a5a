package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/skuforge/backend/internal/domain/vocabulary"
)

// GormVocabularyRepository implements vocabulary.Repository using GORM
type GormVocabularyRepository struct {
	db *gorm.DB
}

// NewGormVocabularyRepository creates a new GormVocabularyRepository
func NewGormVocabularyRepository(db *gorm.DB) *GormVocabularyRepository {
	return &GormVocabularyRepository{db: db}
}

// Insert appends a new vocabulary entry
func (r *GormVocabularyRepository) Insert(ctx context.Context, entry *vocabulary.Entry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	return nil
}

// FindByIDForUser finds an entry by ID within a user's vocabulary. Entries
// owned by other users are indistinguishable from missing ones.
func (r *GormVocabularyRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*vocabulary.Entry, error) {
	var entry vocabulary.Entry
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ListByCategory returns a user's entries in one category, oldest first
func (r *GormVocabularyRepository) ListByCategory(ctx context.Context, userID uuid.UUID, category vocabulary.Category) ([]vocabulary.Entry, error) {
	var entries []vocabulary.Entry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListForUser returns all of a user's entries across categories, oldest first
func (r *GormVocabularyRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]vocabulary.Entry, error) {
	var entries []vocabulary.Entry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

var _ vocabulary.Repository = (*GormVocabularyRepository)(nil)
