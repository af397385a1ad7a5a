package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/skuforge/backend/internal/domain/sku"
)

// GormRecordRepository implements sku.RecordRepository using GORM
type GormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository creates a new GormRecordRepository
func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

// Insert appends a new record. Duplicate codes are permitted; every call
// produces a fresh row with its own generated ID.
func (r *GormRecordRepository) Insert(ctx context.Context, record *sku.Record) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	return nil
}

// ListRecent returns up to limit records for the user, newest first.
// The autoincrement ID preserves creation order even when timestamps collide.
func (r *GormRecordRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]sku.Record, error) {
	var records []sku.Record
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountForUser counts all records owned by the user
func (r *GormRecordRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sku.Record{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ sku.RecordRepository = (*GormRecordRepository)(nil)
