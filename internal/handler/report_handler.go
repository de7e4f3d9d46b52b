package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
)

type Reporter interface {
	Dashboard(ctx context.Context) (*domain.DashboardReport, error)
}

type ReportHandler struct {
	reportService Reporter
	logger        *zap.Logger
}

func NewReportHandler(reportService Reporter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	report, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build report",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
