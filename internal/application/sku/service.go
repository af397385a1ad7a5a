package sku

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/skuforge/backend/internal/domain/sku"
	"github.com/skuforge/backend/internal/domain/vocabulary"
)

// Recent listing bounds
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// sizes selectable on the generator page. The composer itself accepts any
// size string.
var sizes = []string{"1", "2", "3", "4"}

// Service composes SKUs from a user's vocabulary selections and records
// every generated code.
type Service struct {
	records sku.RecordRepository
	vocab   vocabulary.Repository
	logger  *zap.Logger
}

// NewService creates a new SKU generation service
func NewService(records sku.RecordRepository, vocab vocabulary.Repository, logger *zap.Logger) *Service {
	return &Service{
		records: records,
		vocab:   vocab,
		logger:  logger,
	}
}

// Generate composes a SKU from the user's selections and stores it.
// Vocabulary ids that don't resolve within the user's vocabulary degrade
// to an empty label rather than failing; composition itself never fails.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*RecordDTO, error) {
	productName := strings.TrimSpace(input.ProductName)
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name is required")
	}

	productType := s.resolveLabel(ctx, userID, input.ProductTypeID, vocabulary.CategoryProductType)
	collection := s.resolveLabel(ctx, userID, input.CollectionID, vocabulary.CategoryCollection)
	color := s.resolveLabel(ctx, userID, input.ColorID, vocabulary.CategoryColor)

	code := sku.Compose(productType, collection, productName, color, input.Size)

	record, err := sku.NewRecord(userID, code, productName)
	if err != nil {
		return nil, err
	}

	if err := s.records.Insert(ctx, record); err != nil {
		s.logger.Error("Failed to store SKU record",
			zap.String("user_id", userID.String()),
			zap.String("code", code),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("SKU generated",
		zap.String("user_id", userID.String()),
		zap.String("code", code),
		zap.Uint64("record_id", record.ID))

	dto := toRecordDTO(record)
	return &dto, nil
}

// ListRecent returns the user's most recent records, newest first, along
// with the user's total record count. A non-positive limit falls back to
// the default; oversized limits are capped.
func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]RecordDTO, int64, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	records, err := s.records.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.records.CountForUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return toRecordDTOs(records), total, nil
}

// Sizes returns the size values offered on the generator page
func (s *Service) Sizes() []string {
	out := make([]string, len(sizes))
	copy(out, sizes)
	return out
}

// resolveLabel looks up an optional vocabulary entry within the user's
// vocabulary. A nil id, a missing id, a foreign id, or an id pointing at
// an entry of the wrong category all resolve to the empty label.
func (s *Service) resolveLabel(ctx context.Context, userID uuid.UUID, id *uuid.UUID, category vocabulary.Category) string {
	if id == nil {
		return ""
	}

	entry, err := s.vocab.FindByIDForUser(ctx, userID, *id)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Vocabulary lookup failed, using empty label",
				zap.String("user_id", userID.String()),
				zap.String("entry_id", id.String()),
				zap.Error(err))
		}
		return ""
	}
	if entry.Category != category {
		return ""
	}
	return entry.Label
}
