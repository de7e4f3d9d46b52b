package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/events"
)

type MockItemStore struct {
	mock.Mock
}

func (m *MockItemStore) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemStore) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockItemStore) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockItemStore) UpdateItem(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemStore) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemStore) AdjustQuantity(ctx context.Context, itemID string, delta int) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

type MockSaleStore struct {
	mock.Mock
}

func (m *MockSaleStore) RecordSale(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleStore) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

type MockClaims struct {
	mock.Mock
}

func (m *MockClaims) ClaimSaleID(ctx context.Context, saleID string) (bool, error) {
	args := m.Called(ctx, saleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaims) ReleaseSaleID(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishSaleRecorded(ctx context.Context, event events.SaleRecordedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) PublishStockLow(ctx context.Context, event events.StockLowEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockVendorStore struct {
	mock.Mock
}

func (m *MockVendorStore) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorStore) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorStore) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorStore) UpdateVendor(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorStore) DeleteVendor(ctx context.Context, vendorID string) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}
