package events

import (
	"time"
)

const (
	TypeSaleRecorded = "sale.recorded"
	TypeStockLow     = "stock.low"
)

type SaleRecordedEvent struct {
	EventID      string    `json:"event_id"`
	SaleID       string    `json:"sale_id"`
	ItemID       string    `json:"item_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `json:"quantity_sold"`
	UnitPrice    float64   `json:"unit_price"`
	NewQuantity  int       `json:"new_quantity"`
	Timestamp    time.Time `json:"timestamp"`
}

type StockLowEvent struct {
	EventID     string    `json:"event_id"`
	ItemID      string    `json:"item_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	Timestamp   time.Time `json:"timestamp"`
}
