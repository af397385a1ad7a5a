package sku

import (
	"strings"
	"time"

	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Record represents one generated SKU. Records are append-only: once
// stored they are never updated or deleted, and the same code may appear
// in any number of records (re-generating with identical inputs stores a
// new row).
//
// The integer primary key doubles as the creation order; recency queries
// sort on it descending.
type Record struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Code        string    `gorm:"type:varchar(32);not null"`
	ProductName string    `gorm:"type:varchar(150);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "sku_records"
}

// NewRecord creates a record for a composed code owned by the given user
func NewRecord(userID uuid.UUID, code, productName string) (*Record, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Record owner is required")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "SKU code cannot be empty")
	}
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &Record{
		UserID:      userID,
		Code:        code,
		ProductName: productName,
		CreatedAt:   time.Now(),
	}, nil
}
