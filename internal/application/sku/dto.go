package sku

import (
	"time"

	"github.com/google/uuid"

	"github.com/skuforge/backend/internal/domain/sku"
)

// GenerateInput contains the selections from the generator page. The
// vocabulary entry ids are optional; the product name is not.
type GenerateInput struct {
	ProductTypeID *uuid.UUID
	CollectionID  *uuid.UUID
	ColorID       *uuid.UUID
	ProductName   string
	Size          string
}

// RecordDTO is the client-facing representation of a stored SKU
type RecordDTO struct {
	ID          uint64    `json:"id"`
	Code        string    `json:"code"`
	ProductName string    `json:"product_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func toRecordDTO(record *sku.Record) RecordDTO {
	return RecordDTO{
		ID:          record.ID,
		Code:        record.Code,
		ProductName: record.ProductName,
		CreatedAt:   record.CreatedAt,
	}
}

func toRecordDTOs(records []sku.Record) []RecordDTO {
	dtos := make([]RecordDTO, len(records))
	for i := range records {
		dtos[i] = toRecordDTO(&records[i])
	}
	return dtos
}
