package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/repository"
)

// ItemStore is the persistence contract the services expect for inventory items.
type ItemStore interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item *domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID string) error
	AdjustQuantity(ctx context.Context, itemID string, delta int) (*domain.InventoryItem, error)
}

type InventoryService struct {
	items  ItemStore
	logger *zap.Logger
}

func NewInventoryService(items ItemStore, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		items:  items,
		logger: logger,
	}
}

func (s *InventoryService) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.InventoryItem, error) {
	now := time.Now()
	item := &domain.InventoryItem{
		ItemID:        uuid.NewString(),
		ProductName:   req.ProductName,
		SerialNumber:  req.SerialNumber,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Quantity:      req.Quantity,
		ExpDate:       req.ExpDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.items.CreateItem(ctx, item); err != nil {
		s.logger.Error("Failed to save item",
			zap.String("item_id", item.ItemID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Item created successfully",
		zap.String("item_id", item.ItemID),
		zap.String("product_name", item.ProductName),
		zap.Int("initial_quantity", item.Quantity))

	return item, nil
}

func (s *InventoryService) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.ListItems(ctx)
}

func (s *InventoryService) UpdateItem(ctx context.Context, itemID string, req domain.UpdateItemRequest) (*domain.InventoryItem, error) {
	existing, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item := &domain.InventoryItem{
		ItemID:        itemID,
		ProductName:   req.ProductName,
		SerialNumber:  req.SerialNumber,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Quantity:      req.Quantity,
		ExpDate:       req.ExpDate,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now(),
	}

	if err := s.items.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("Failed to update item",
			zap.String("item_id", itemID),
			zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.items.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("Failed to delete item",
			zap.String("item_id", itemID),
			zap.Error(err))
		return err
	}

	s.logger.Info("Item deleted", zap.String("item_id", itemID))
	return nil
}

// AdjustQuantity applies a restock or manual correction outside the sale path.
func (s *InventoryService) AdjustQuantity(ctx context.Context, itemID string, delta int) (*domain.InventoryItem, error) {
	item, err := s.items.AdjustQuantity(ctx, itemID, delta)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, ErrInsufficientStock
		}
		s.logger.Error("Failed to adjust quantity",
			zap.String("item_id", itemID),
			zap.Int("delta", delta),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Quantity adjusted",
		zap.String("item_id", itemID),
		zap.Int("delta", delta),
		zap.Int("new_quantity", item.Quantity))

	return item, nil
}
