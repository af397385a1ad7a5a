package vocabulary

import (
	"time"

	"github.com/google/uuid"

	"github.com/skuforge/backend/internal/domain/vocabulary"
)

// EntryDTO is the client-facing representation of a vocabulary entry
type EntryDTO struct {
	ID        uuid.UUID           `json:"id"`
	Category  vocabulary.Category `json:"category"`
	Label     string              `json:"label"`
	CreatedAt time.Time           `json:"created_at"`
}

// Catalog groups a user's entries by category for the data page
type Catalog struct {
	ProductTypes []EntryDTO `json:"product_types"`
	Collections  []EntryDTO `json:"collections"`
	Colors       []EntryDTO `json:"colors"`
}

func toEntryDTO(entry *vocabulary.Entry) EntryDTO {
	return EntryDTO{
		ID:        entry.ID,
		Category:  entry.Category,
		Label:     entry.Label,
		CreatedAt: entry.CreatedAt,
	}
}

func toEntryDTOs(entries []vocabulary.Entry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i := range entries {
		dtos[i] = toEntryDTO(&entries[i])
	}
	return dtos
}
