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

type VendorManager interface {
	CreateVendor(ctx context.Context, req domain.VendorRequest) (*domain.Vendor, error)
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req domain.VendorRequest) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
}

type VendorHandler struct {
	vendorService VendorManager
	logger        *zap.Logger
}

func NewVendorHandler(vendorService VendorManager, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		logger:        logger,
	}
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req domain.VendorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create vendor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create vendor",
		})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendorID := c.Param("id")

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
			return
		}

		h.logger.Error("Failed to get vendor",
			zap.String("vendor_id", vendorID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get vendor",
		})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list vendors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list vendors",
		})
		return
	}

	c.JSON(http.StatusOK, vendors)
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	vendorID := c.Param("id")

	var req domain.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), vendorID, req)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
			return
		}

		h.logger.Error("Failed to update vendor",
			zap.String("vendor_id", vendorID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update vendor",
		})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	vendorID := c.Param("id")

	if err := h.vendorService.DeleteVendor(c.Request.Context(), vendorID); err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
			return
		}

		h.logger.Error("Failed to delete vendor",
			zap.String("vendor_id", vendorID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete vendor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vendor deleted successfully",
	})
}
