package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/handler"
	"github.com/fortix/inventory-service/internal/service"
)

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) RecordSale(ctx context.Context, req domain.RecordSaleRequest) (*domain.RecordSaleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordSaleResponse), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context) ([]domain.SaleResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleResponse), args.Error(1)
}

func setupSaleRouter(svc *MockSaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewSaleHandler(svc, zap.NewNop())
	router := gin.New()
	router.POST("/api/v1/sales", h.RecordSale)
	router.GET("/api/v1/sales", h.ListSales)
	return router
}

func postSale(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecordSaleHandler_Created(t *testing.T) {
	mockSvc := new(MockSaleService)
	router := setupSaleRouter(mockSvc)

	result := &domain.RecordSaleResponse{
		Sale: domain.SaleResponse{
			SaleID:       "sale-1",
			QuantitySold: 30,
			UnitPrice:    45.50,
			Total:        1365.00,
		},
		UpdatedInventory: domain.InventoryItem{ItemID: "item-1", Quantity: 95},
	}
	mockSvc.On("RecordSale", mock.Anything, mock.Anything).Return(result, nil).Once()

	w := postSale(router, gin.H{"inventory_id": "item-1", "quantity_sold": 30})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.RecordSaleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.UpdatedInventory.Quantity)
	assert.Equal(t, 1365.00, resp.Sale.Total)
}

func TestRecordSaleHandler_MissingFields(t *testing.T) {
	mockSvc := new(MockSaleService)
	router := setupSaleRouter(mockSvc)

	w := postSale(router, gin.H{"quantity_sold": 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "RecordSale", mock.Anything, mock.Anything)
}

func TestRecordSaleHandler_NotFound(t *testing.T) {
	mockSvc := new(MockSaleService)
	router := setupSaleRouter(mockSvc)

	mockSvc.On("RecordSale", mock.Anything, mock.Anything).Return(nil, service.ErrItemNotFound).Once()

	w := postSale(router, gin.H{"inventory_id": "missing", "quantity_sold": 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordSaleHandler_InsufficientStock(t *testing.T) {
	mockSvc := new(MockSaleService)
	router := setupSaleRouter(mockSvc)

	mockSvc.On("RecordSale", mock.Anything, mock.Anything).Return(nil, service.ErrInsufficientStock).Once()

	w := postSale(router, gin.H{"inventory_id": "item-1", "quantity_sold": 15})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Not enough stock")
}

func TestRecordSaleHandler_Duplicate(t *testing.T) {
	mockSvc := new(MockSaleService)
	router := setupSaleRouter(mockSvc)

	mockSvc.On("RecordSale", mock.Anything, mock.Anything).Return(nil, service.ErrDuplicateSale).Once()

	w := postSale(router, gin.H{"inventory_id": "item-1", "quantity_sold": 1, "sale_id": "sale-retry"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListSalesHandler_OK(t *testing.T) {
	mockSvc := new(MockSaleService)
	router := setupSaleRouter(mockSvc)

	sales := []domain.SaleResponse{
		{SaleID: "s-new", QuantitySold: 1},
		{SaleID: "s-old", QuantitySold: 2},
	}
	mockSvc.On("ListSales", mock.Anything).Return(sales, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.SaleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "s-new", resp[0].SaleID)
}
