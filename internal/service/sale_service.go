package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/events"
	"github.com/fortix/inventory-service/internal/repository"
)

// SaleStore is the persistence contract for sale records. RecordSale must
// commit the stock decrement and the sale insert as a single unit and fail
// with the repository sentinels when the item is out of stock or the sale ID
// was already written.
type SaleStore interface {
	RecordSale(ctx context.Context, sale *domain.Sale) error
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// IdempotencyClaims dedupes retried sale requests carrying the same sale ID.
type IdempotencyClaims interface {
	ClaimSaleID(ctx context.Context, saleID string) (bool, error)
	ReleaseSaleID(ctx context.Context, saleID string) error
}

type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, event events.SaleRecordedEvent) error
	PublishStockLow(ctx context.Context, event events.StockLowEvent) error
}

type SaleService struct {
	sales     SaleStore
	items     ItemStore
	claims    IdempotencyClaims
	publisher EventPublisher
	logger    *zap.Logger
}

func NewSaleService(sales SaleStore, items ItemStore, claims IdempotencyClaims, publisher EventPublisher, logger *zap.Logger) *SaleService {
	return &SaleService{
		sales:     sales,
		items:     items,
		claims:    claims,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *SaleService) RecordSale(ctx context.Context, req domain.RecordSaleRequest) (*domain.RecordSaleResponse, error) {
	if req.InventoryID == "" || req.QuantitySold <= 0 {
		return nil, ErrInvalidSale
	}

	saleID := req.SaleID
	if saleID == "" {
		saleID = uuid.NewString()
	} else if s.claims != nil {
		// Only client-supplied IDs can be retried, so only they need a claim.
		ok, err := s.claims.ClaimSaleID(ctx, saleID)
		if err != nil {
			s.logger.Warn("Idempotency claim unavailable, relying on store condition",
				zap.String("sale_id", saleID),
				zap.Error(err))
		} else if !ok {
			return nil, ErrDuplicateSale
		}
	}

	item, err := s.items.GetItem(ctx, req.InventoryID)
	if err != nil {
		s.releaseClaim(ctx, req.SaleID)
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.Quantity < req.QuantitySold {
		s.releaseClaim(ctx, req.SaleID)
		return nil, ErrInsufficientStock
	}

	sale := &domain.Sale{
		SaleID:       saleID,
		ItemID:       item.ItemID,
		QuantitySold: req.QuantitySold,
		UnitPrice:    item.SellingPrice,
		SaleDate:     time.Now(),
	}

	if err := s.sales.RecordSale(ctx, sale); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			// Lost the race to a concurrent sale; the transaction kept stock consistent.
			s.releaseClaim(ctx, req.SaleID)
			return nil, ErrInsufficientStock
		case errors.Is(err, repository.ErrDuplicateSale):
			return nil, ErrDuplicateSale
		}
		s.releaseClaim(ctx, req.SaleID)
		s.logger.Error("Failed to record sale",
			zap.String("sale_id", saleID),
			zap.String("item_id", item.ItemID),
			zap.Error(err))
		return nil, err
	}

	updated, err := s.items.GetItem(ctx, item.ItemID)
	if err != nil {
		// The sale is committed; reconstruct the item rather than failing the request.
		s.logger.Warn("Failed to re-read item after sale",
			zap.String("item_id", item.ItemID),
			zap.Error(err))
		reconstructed := *item
		reconstructed.Quantity = item.Quantity - req.QuantitySold
		updated = &reconstructed
	}

	s.logger.Info("Sale recorded successfully",
		zap.String("sale_id", sale.SaleID),
		zap.String("item_id", item.ItemID),
		zap.Int("quantity_sold", sale.QuantitySold),
		zap.Int("remaining_quantity", updated.Quantity))

	s.publishSaleEvents(ctx, sale, updated)

	return &domain.RecordSaleResponse{
		Sale: domain.SaleResponse{
			SaleID:       sale.SaleID,
			Inventory:    updated,
			QuantitySold: sale.QuantitySold,
			UnitPrice:    sale.UnitPrice,
			Total:        float64(sale.QuantitySold) * sale.UnitPrice,
			CreatedAt:    sale.SaleDate,
		},
		UpdatedInventory: *updated,
	}, nil
}

// ListSales returns every sale newest-first with its item attached. Sales whose
// item has since been deleted are kept, with no inventory details.
func (s *SaleService) ListSales(ctx context.Context) ([]domain.SaleResponse, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.InventoryItem, len(items))
	for i := range items {
		byID[items[i].ItemID] = &items[i]
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].SaleDate.After(sales[j].SaleDate)
	})

	responses := make([]domain.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, domain.SaleResponse{
			SaleID:       sale.SaleID,
			Inventory:    byID[sale.ItemID],
			QuantitySold: sale.QuantitySold,
			UnitPrice:    sale.UnitPrice,
			Total:        float64(sale.QuantitySold) * sale.UnitPrice,
			CreatedAt:    sale.SaleDate,
		})
	}

	return responses, nil
}

func (s *SaleService) releaseClaim(ctx context.Context, clientSaleID string) {
	if clientSaleID == "" || s.claims == nil {
		return
	}
	if err := s.claims.ReleaseSaleID(ctx, clientSaleID); err != nil {
		s.logger.Warn("Failed to release idempotency claim",
			zap.String("sale_id", clientSaleID),
			zap.Error(err))
	}
}

// Event publication is best-effort; the sale is already durable.
func (s *SaleService) publishSaleEvents(ctx context.Context, sale *domain.Sale, item *domain.InventoryItem) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishSaleRecorded(ctx, events.SaleRecordedEvent{
		EventID:      uuid.NewString(),
		SaleID:       sale.SaleID,
		ItemID:       item.ItemID,
		ProductName:  item.ProductName,
		QuantitySold: sale.QuantitySold,
		UnitPrice:    sale.UnitPrice,
		NewQuantity:  item.Quantity,
		Timestamp:    sale.SaleDate,
	}); err != nil {
		s.logger.Warn("Failed to publish sale event",
			zap.String("sale_id", sale.SaleID),
			zap.Error(err))
	}

	if item.Quantity > LowStockThreshold {
		return
	}

	if err := s.publisher.PublishStockLow(ctx, events.StockLowEvent{
		EventID:     uuid.NewString(),
		ItemID:      item.ItemID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Threshold:   LowStockThreshold,
		Timestamp:   sale.SaleDate,
	}); err != nil {
		s.logger.Warn("Failed to publish low stock event",
			zap.String("item_id", item.ItemID),
			zap.Error(err))
	}
}
