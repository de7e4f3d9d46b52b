package domain

type InventorySummary struct {
	TotalSKUs             int     `json:"total_skus"`
	TotalQuantity         int     `json:"total_quantity"`
	TotalCost             float64 `json:"total_cost"`
	TotalPotentialRevenue float64 `json:"total_potential_revenue"`
}

type CategoryTotals struct {
	Count     int     `json:"count"`
	Quantity  int     `json:"quantity"`
	CostValue float64 `json:"cost_value"`
	SellValue float64 `json:"sell_value"`
}

type SalesStats struct {
	Today     float64 `json:"today"`
	ThisWeek  float64 `json:"this_week"`
	ThisMonth float64 `json:"this_month"`
}

type TopProduct struct {
	ItemID       string `json:"item_id"`
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

type RecentSale struct {
	SaleID       string  `json:"sale_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Total        float64 `json:"total"`
	SoldAt       string  `json:"sold_at"`
}

type DashboardReport struct {
	InventorySummary  InventorySummary          `json:"inventory_summary"`
	LowStock          []InventoryItem           `json:"low_stock"`
	CategoryBreakdown map[string]CategoryTotals `json:"category_breakdown"`
	SalesStats        SalesStats                `json:"sales_stats"`
	TopProducts       []TopProduct              `json:"top_products"`
	RecentSales       []RecentSale              `json:"recent_sales"`
}
