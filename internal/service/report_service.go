package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
)

// LowStockThreshold marks items due for reordering.
const LowStockThreshold = 10

const uncategorized = "Uncategorized"

type ReportService struct {
	items  ItemStore
	sales  SaleStore
	logger *zap.Logger
}

func NewReportService(items ItemStore, sales SaleStore, logger *zap.Logger) *ReportService {
	return &ReportService{
		items:  items,
		sales:  sales,
		logger: logger,
	}
}

// Dashboard reads point-in-time snapshots of both stores and reduces them.
// Nothing is cached; two calls with no writes in between yield the same report.
func (s *ReportService) Dashboard(ctx context.Context) (*domain.DashboardReport, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		s.logger.Error("Failed to load item snapshot", zap.Error(err))
		return nil, err
	}

	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		s.logger.Error("Failed to load sale snapshot", zap.Error(err))
		return nil, err
	}

	return BuildDashboardReport(items, sales, time.Now()), nil
}

// BuildDashboardReport computes every derived metric from the two snapshots.
// It has no side effects; now anchors the today/week/month windows.
func BuildDashboardReport(items []domain.InventoryItem, sales []domain.Sale, now time.Time) *domain.DashboardReport {
	report := &domain.DashboardReport{
		LowStock:          []domain.InventoryItem{},
		CategoryBreakdown: make(map[string]domain.CategoryTotals),
		TopProducts:       []domain.TopProduct{},
		RecentSales:       []domain.RecentSale{},
	}

	byID := make(map[string]*domain.InventoryItem, len(items))

	for i := range items {
		item := &items[i]
		byID[item.ItemID] = item

		report.InventorySummary.TotalSKUs++
		report.InventorySummary.TotalQuantity += item.Quantity
		report.InventorySummary.TotalCost += float64(item.Quantity) * item.PurchasePrice
		report.InventorySummary.TotalPotentialRevenue += float64(item.Quantity) * item.SellingPrice

		if item.Quantity <= LowStockThreshold {
			report.LowStock = append(report.LowStock, *item)
		}

		category := item.Category
		if category == "" {
			category = uncategorized
		}
		totals := report.CategoryBreakdown[category]
		totals.Count++
		totals.Quantity += item.Quantity
		totals.CostValue += float64(item.Quantity) * item.PurchasePrice
		totals.SellValue += float64(item.Quantity) * item.SellingPrice
		report.CategoryBreakdown[category] = totals
	}

	report.SalesStats = computeSalesStats(sales, byID, now)
	report.TopProducts = computeTopProducts(sales, byID)
	report.RecentSales = computeRecentSales(sales, byID)

	return report
}

// Day boundaries are midnight-aligned local time; weeks start on Sunday.
func computeSalesStats(sales []domain.Sale, byID map[string]*domain.InventoryItem, now time.Time) domain.SalesStats {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats domain.SalesStats
	for _, sale := range sales {
		item, ok := byID[sale.ItemID]
		if !ok {
			continue
		}

		revenue := float64(sale.QuantitySold) * item.SellingPrice
		if !sale.SaleDate.Before(dayStart) {
			stats.Today += revenue
		}
		if !sale.SaleDate.Before(weekStart) {
			stats.ThisWeek += revenue
		}
		if !sale.SaleDate.Before(monthStart) {
			stats.ThisMonth += revenue
		}
	}

	return stats
}

// Top five items by total quantity sold, ties kept in first-encountered order.
func computeTopProducts(sales []domain.Sale, byID map[string]*domain.InventoryItem) []domain.TopProduct {
	totals := make(map[string]int)
	var order []string
	for _, sale := range sales {
		if _, seen := totals[sale.ItemID]; !seen {
			order = append(order, sale.ItemID)
		}
		totals[sale.ItemID] += sale.QuantitySold
	}

	ranked := make([]domain.TopProduct, 0, len(order))
	for _, itemID := range order {
		item, ok := byID[itemID]
		if !ok {
			continue
		}
		ranked = append(ranked, domain.TopProduct{
			ItemID:       itemID,
			ProductName:  item.ProductName,
			QuantitySold: totals[itemID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})

	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// Five most recent sales, totals priced at the current selling price.
func computeRecentSales(sales []domain.Sale, byID map[string]*domain.InventoryItem) []domain.RecentSale {
	sorted := make([]domain.Sale, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SaleDate.After(sorted[j].SaleDate)
	})

	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	recent := make([]domain.RecentSale, 0, len(sorted))
	for _, sale := range sorted {
		name := "Unknown item"
		price := sale.UnitPrice
		if item, ok := byID[sale.ItemID]; ok {
			name = item.ProductName
			price = item.SellingPrice
		}
		recent = append(recent, domain.RecentSale{
			SaleID:       sale.SaleID,
			ProductName:  name,
			QuantitySold: sale.QuantitySold,
			Total:        float64(sale.QuantitySold) * price,
			SoldAt:       sale.SaleDate.Format("2006-01-02 15:04"),
		})
	}

	return recent
}
