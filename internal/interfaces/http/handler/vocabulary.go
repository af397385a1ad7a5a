package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appvocab "github.com/skuforge/backend/internal/application/vocabulary"
	"github.com/skuforge/backend/internal/domain/vocabulary"
	"github.com/skuforge/backend/internal/interfaces/http/middleware"
)

// CreateEntryRequest is the request body for creating a vocabulary entry
type CreateEntryRequest struct {
	Category string `json:"category" binding:"required,oneof=product_type collection color"`
	Label    string `json:"label" binding:"required,max=150"`
}

// VocabularyHandler handles vocabulary endpoints
type VocabularyHandler struct {
	BaseHandler
	service *appvocab.Service
	logger  *zap.Logger
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(service *appvocab.Service, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers vocabulary routes on the given group
func (h *VocabularyHandler) RegisterRoutes(r *gin.RouterGroup) {
	vocab := r.Group("/vocabulary")
	{
		vocab.POST("/entries", h.Create)
		vocab.GET("/entries", h.List)
		vocab.GET("/catalog", h.Catalog)
	}
}

// Create handles POST /vocabulary/entries
func (h *VocabularyHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), userID, vocabulary.Category(req.Category), req.Label)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entry)
}

// List handles GET /vocabulary/entries?category=...
func (h *VocabularyHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	category := vocabulary.Category(c.Query("category"))
	entries, err := h.service.List(c.Request.Context(), userID, category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// Catalog handles GET /vocabulary/catalog
func (h *VocabularyHandler) Catalog(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	catalog, err := h.service.ListAll(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, catalog)
}
