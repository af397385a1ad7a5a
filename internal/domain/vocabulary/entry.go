package vocabulary

import (
	"strings"

	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category tags the kind of label a vocabulary entry holds
type Category string

const (
	CategoryProductType Category = "product_type"
	CategoryCollection  Category = "collection"
	CategoryColor       Category = "color"
)

// Categories lists all valid vocabulary categories
var Categories = []Category{CategoryProductType, CategoryCollection, CategoryColor}

// IsValid reports whether the category is one of the known tags
func (c Category) IsValid() bool {
	switch c {
	case CategoryProductType, CategoryCollection, CategoryColor:
		return true
	}
	return false
}

// MaxLabelLength bounds the stored label text
const MaxLabelLength = 150

// ErrUnknownCategory is returned for category tags outside Categories
var ErrUnknownCategory = shared.NewDomainError("INVALID_CATEGORY", "Unknown vocabulary category")

// Entry represents one user-defined label in one category. Entries are
// immutable once created and live for the account's lifetime. Label text
// is NOT unique: a user may create any number of entries with the same
// label in the same category.
type Entry struct {
	shared.UserOwnedEntity
	Category Category `gorm:"type:varchar(20);not null;index"`
	Label    string   `gorm:"type:varchar(150);not null"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "vocabulary_entries"
}

// NewEntry creates a new vocabulary entry owned by the given user
func NewEntry(userID uuid.UUID, category Category, label string) (*Entry, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Entry owner is required")
	}
	if !category.IsValid() {
		return nil, ErrUnknownCategory
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Label cannot be empty")
	}
	if len(label) > MaxLabelLength {
		return nil, shared.NewDomainError("INVALID_LABEL", "Label cannot exceed 150 characters")
	}

	return &Entry{
		UserOwnedEntity: shared.NewUserOwnedEntity(userID),
		Category:        category,
		Label:           label,
	}, nil
}
