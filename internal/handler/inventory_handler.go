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

type InventoryManager interface {
	CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req domain.UpdateItemRequest) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
	AdjustQuantity(ctx context.Context, itemID string, delta int) (*domain.InventoryItem, error)
}

type InventoryHandler struct {
	inventoryService InventoryManager
	logger           *zap.Logger
}

func NewInventoryHandler(inventoryService InventoryManager, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req domain.CreateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create item",
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	itemID := c.Param("id")

	item, err := h.inventoryService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inventory item not found",
			})
			return
		}

		h.logger.Error("Failed to get item",
			zap.String("item_id", itemID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get item",
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list items",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID := c.Param("id")

	var req domain.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inventory item not found",
			})
			return
		}

		h.logger.Error("Failed to update item",
			zap.String("item_id", itemID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update item",
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID := c.Param("id")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inventory item not found",
			})
			return
		}

		h.logger.Error("Failed to delete item",
			zap.String("item_id", itemID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item deleted successfully",
	})
}

func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	itemID := c.Param("id")

	var req domain.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.inventoryService.AdjustQuantity(c.Request.Context(), itemID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inventory item not found",
			})
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Not enough stock",
			})
		default:
			h.logger.Error("Failed to adjust quantity",
				zap.String("item_id", itemID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to adjust quantity",
			})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}
