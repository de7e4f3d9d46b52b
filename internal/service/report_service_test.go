package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/service"
)

func reportFixtures() ([]domain.InventoryItem, []domain.Sale, time.Time) {
	// Wednesday mid-week, so "yesterday" stays inside the current week and month.
	now := time.Date(2025, time.June, 18, 15, 30, 0, 0, time.Local)

	items := []domain.InventoryItem{
		{ItemID: "shoes", ProductName: "Running Shoes", Category: "Footwear", PurchasePrice: 30, SellingPrice: 45.50, Quantity: 125},
		{ItemID: "tv", ProductName: "Smart TV", Category: "Electronics", PurchasePrice: 60, SellingPrice: 80, Quantity: 50},
		{ItemID: "misc", ProductName: "Mystery Box", Category: "", PurchasePrice: 1, SellingPrice: 2, Quantity: 8},
	}

	sales := []domain.Sale{
		{SaleID: "s1", ItemID: "shoes", QuantitySold: 2, UnitPrice: 45.50, SaleDate: now.Add(-time.Hour)},
		{SaleID: "s2", ItemID: "shoes", QuantitySold: 1, UnitPrice: 45.50, SaleDate: now.AddDate(0, 0, -1)},
		{SaleID: "s3", ItemID: "tv", QuantitySold: 3, UnitPrice: 80, SaleDate: now.Add(-2 * time.Hour)},
	}

	return items, sales, now
}

func TestBuildDashboardReport_InventorySummary(t *testing.T) {
	items, sales, now := reportFixtures()

	report := service.BuildDashboardReport(items, sales, now)

	assert.Equal(t, 3, report.InventorySummary.TotalSKUs)
	assert.Equal(t, 183, report.InventorySummary.TotalQuantity)
	// 125*30 + 50*60 + 8*1
	assert.Equal(t, 6758.0, report.InventorySummary.TotalCost)
	assert.Equal(t, 125*45.50+50*80.0+8*2.0, report.InventorySummary.TotalPotentialRevenue)
}

func TestBuildDashboardReport_TwoCategoryCostScenario(t *testing.T) {
	items := []domain.InventoryItem{
		{ItemID: "a", Category: "Footwear", PurchasePrice: 30, Quantity: 125},
		{ItemID: "b", Category: "Electronics", PurchasePrice: 60, Quantity: 50},
	}

	report := service.BuildDashboardReport(items, nil, time.Now())

	assert.Equal(t, 6750.0, report.InventorySummary.TotalCost)
}

func TestBuildDashboardReport_CategoryPartition(t *testing.T) {
	items, sales, now := reportFixtures()

	report := service.BuildDashboardReport(items, sales, now)

	assert.Contains(t, report.CategoryBreakdown, "Uncategorized")

	var quantitySum int
	var costSum float64
	for _, totals := range report.CategoryBreakdown {
		quantitySum += totals.Quantity
		costSum += totals.CostValue
	}

	assert.Equal(t, report.InventorySummary.TotalQuantity, quantitySum)
	assert.Equal(t, report.InventorySummary.TotalCost, costSum)
}

func TestBuildDashboardReport_LowStock(t *testing.T) {
	items, sales, now := reportFixtures()

	report := service.BuildDashboardReport(items, sales, now)

	assert.Len(t, report.LowStock, 1)
	assert.Equal(t, "misc", report.LowStock[0].ItemID)
}

func TestBuildDashboardReport_SalesWindows(t *testing.T) {
	items, sales, now := reportFixtures()

	report := service.BuildDashboardReport(items, sales, now)

	// Today excludes yesterday's sale.
	assert.Equal(t, 2*45.50+3*80.0, report.SalesStats.Today)
	// The week window picks up yesterday's sale as well.
	assert.Equal(t, 2*45.50+1*45.50+3*80.0, report.SalesStats.ThisWeek)
	assert.Equal(t, report.SalesStats.ThisWeek, report.SalesStats.ThisMonth)
}

func TestBuildDashboardReport_WeekStartsSunday(t *testing.T) {
	// A Monday: only sales from Sunday onward count toward the week.
	now := time.Date(2025, time.June, 16, 12, 0, 0, 0, time.Local)
	items := []domain.InventoryItem{
		{ItemID: "shoes", ProductName: "Running Shoes", SellingPrice: 10, Quantity: 100},
	}
	sales := []domain.Sale{
		{SaleID: "sat", ItemID: "shoes", QuantitySold: 1, SaleDate: now.AddDate(0, 0, -2)},
		{SaleID: "sun", ItemID: "shoes", QuantitySold: 2, SaleDate: now.AddDate(0, 0, -1)},
	}

	report := service.BuildDashboardReport(items, sales, now)

	assert.Equal(t, 20.0, report.SalesStats.ThisWeek)
	assert.Equal(t, 0.0, report.SalesStats.Today)
}

func TestBuildDashboardReport_TopProducts(t *testing.T) {
	items, sales, now := reportFixtures()

	report := service.BuildDashboardReport(items, sales, now)

	assert.Len(t, report.TopProducts, 2)
	assert.Equal(t, "shoes", report.TopProducts[0].ItemID)
	assert.Equal(t, 3, report.TopProducts[0].QuantitySold)
	assert.Equal(t, "tv", report.TopProducts[1].ItemID)
}

func TestBuildDashboardReport_TopProductsTieOrder(t *testing.T) {
	now := time.Now()
	items := []domain.InventoryItem{
		{ItemID: "a", ProductName: "A", SellingPrice: 1, Quantity: 10},
		{ItemID: "b", ProductName: "B", SellingPrice: 1, Quantity: 10},
	}
	// Equal totals: the item encountered first keeps the higher rank.
	sales := []domain.Sale{
		{SaleID: "s1", ItemID: "b", QuantitySold: 2, SaleDate: now},
		{SaleID: "s2", ItemID: "a", QuantitySold: 2, SaleDate: now},
	}

	report := service.BuildDashboardReport(items, sales, now)

	assert.Equal(t, "b", report.TopProducts[0].ItemID)
	assert.Equal(t, "a", report.TopProducts[1].ItemID)
}

func TestBuildDashboardReport_RecentSales(t *testing.T) {
	now := time.Now()
	items := []domain.InventoryItem{
		{ItemID: "shoes", ProductName: "Running Shoes", SellingPrice: 45.50, Quantity: 95},
	}

	var sales []domain.Sale
	for i := 0; i < 7; i++ {
		sales = append(sales, domain.Sale{
			SaleID:       string(rune('a' + i)),
			ItemID:       "shoes",
			QuantitySold: i + 1,
			UnitPrice:    45.50,
			SaleDate:     now.Add(-time.Duration(i) * time.Hour),
		})
	}

	report := service.BuildDashboardReport(items, sales, now)

	assert.Len(t, report.RecentSales, 5)
	assert.Equal(t, "a", report.RecentSales[0].SaleID)
	assert.Equal(t, "Running Shoes", report.RecentSales[0].ProductName)
	assert.Equal(t, 45.50, report.RecentSales[0].Total)
	assert.NotEmpty(t, report.RecentSales[0].SoldAt)
}

func TestBuildDashboardReport_Idempotent(t *testing.T) {
	items, sales, now := reportFixtures()

	first := service.BuildDashboardReport(items, sales, now)
	second := service.BuildDashboardReport(items, sales, now)

	assert.Equal(t, first, second)
}

func TestDashboard_FetchesSnapshots(t *testing.T) {
	mockItems := new(MockItemStore)
	mockSales := new(MockSaleStore)

	svc := service.NewReportService(mockItems, mockSales, zap.NewNop())

	items, sales, _ := reportFixtures()
	mockItems.On("ListItems", mock.Anything).Return(items, nil).Once()
	mockSales.On("ListSales", mock.Anything).Return(sales, nil).Once()

	report, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, report.InventorySummary.TotalSKUs)
	mockItems.AssertExpectations(t)
	mockSales.AssertExpectations(t)
}
