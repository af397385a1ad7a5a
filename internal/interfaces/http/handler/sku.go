package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appsku "github.com/skuforge/backend/internal/application/sku"
	"github.com/skuforge/backend/internal/interfaces/http/dto"
	"github.com/skuforge/backend/internal/interfaces/http/middleware"
)

// GenerateSKURequest is the request body for generating a SKU
type GenerateSKURequest struct {
	ProductTypeID *uuid.UUID `json:"product_type_id"`
	CollectionID  *uuid.UUID `json:"collection_id"`
	ColorID       *uuid.UUID `json:"color_id"`
	ProductName   string     `json:"product_name" binding:"required,max=150"`
	Size          string     `json:"size" binding:"required,oneof=1 2 3 4"`
}

// SKUHandler handles SKU generation and history endpoints
type SKUHandler struct {
	BaseHandler
	service *appsku.Service
	logger  *zap.Logger
}

// NewSKUHandler creates a new SKU handler
func NewSKUHandler(service *appsku.Service, logger *zap.Logger) *SKUHandler {
	return &SKUHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers SKU routes on the given group
func (h *SKUHandler) RegisterRoutes(r *gin.RouterGroup) {
	skus := r.Group("/skus")
	{
		skus.POST("/generate", h.Generate)
		skus.GET("/recent", h.ListRecent)
		skus.GET("/sizes", h.Sizes)
	}
}

// Generate handles POST /skus/generate
func (h *SKUHandler) Generate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req GenerateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.service.Generate(c.Request.Context(), userID, appsku.GenerateInput{
		ProductTypeID: req.ProductTypeID,
		CollectionID:  req.CollectionID,
		ColorID:       req.ColorID,
		ProductName:   req.ProductName,
		Size:          req.Size,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, record)
}

// ListRecent handles GET /skus/recent?limit=...
func (h *SKUHandler) ListRecent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	limit := appsku.DefaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	records, total, err := h.service.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(records, total, limit))
}

// Sizes handles GET /skus/sizes
func (h *SKUHandler) Sizes(c *gin.Context) {
	h.Success(c, gin.H{"sizes": h.service.Sizes()})
}
