package domain

import (
	"time"
)

type Sale struct {
	SaleID       string    `dynamodbav:"sale_id"       json:"sale_id"`
	ItemID       string    `dynamodbav:"item_id"       json:"item_id"`
	QuantitySold int       `dynamodbav:"quantity_sold" json:"quantity_sold"`
	UnitPrice    float64   `dynamodbav:"unit_price"    json:"unit_price"` // selling price captured at sale time
	SaleDate     time.Time `dynamodbav:"sale_date"     json:"sale_date"`
}

type RecordSaleRequest struct {
	InventoryID  string `json:"inventory_id" binding:"required"`
	QuantitySold int    `json:"quantity_sold" binding:"required,min=1"`
	// Optional client-generated ID; reusing one dedupes retried requests.
	SaleID string `json:"sale_id"`
}

// SaleResponse is a sale with its inventory item denormalized, matching what
// the admin frontend renders per sale row.
type SaleResponse struct {
	SaleID       string         `json:"sale_id"`
	Inventory    *InventoryItem `json:"inventory,omitempty"`
	QuantitySold int            `json:"quantity_sold"`
	UnitPrice    float64        `json:"unit_price"`
	Total        float64        `json:"total"`
	CreatedAt    time.Time      `json:"created_at"`
}

type RecordSaleResponse struct {
	Sale             SaleResponse  `json:"sale"`
	UpdatedInventory InventoryItem `json:"updated_inventory"`
}
