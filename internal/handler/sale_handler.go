package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/service"
)

type SaleRecorder interface {
	RecordSale(ctx context.Context, req domain.RecordSaleRequest) (*domain.RecordSaleResponse, error)
	ListSales(ctx context.Context) ([]domain.SaleResponse, error)
}

type SaleHandler struct {
	saleService SaleRecorder
	logger      *zap.Logger
}

func NewSaleHandler(saleService SaleRecorder, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req domain.RecordSaleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Inventory ID and quantity sold are required",
		})
		return
	}

	result, err := h.saleService.RecordSale(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSale):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Inventory ID and quantity sold are required",
			})
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inventory item not found",
			})
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Not enough stock",
				"requested": req.QuantitySold,
			})
		case errors.Is(err, service.ErrDuplicateSale):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Sale was already recorded",
			})
		default:
			h.logger.Error("Failed to record sale",
				zap.String("inventory_id", req.InventoryID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to record sale",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list sales",
		})
		return
	}

	c.JSON(http.StatusOK, sales)
}
