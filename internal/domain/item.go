package domain

import (
	"time"
)

type InventoryItem struct {
	ItemID        string    `dynamodbav:"item_id"        json:"item_id"`
	ProductName   string    `dynamodbav:"product_name"   json:"product_name"`
	SerialNumber  string    `dynamodbav:"serial_number"  json:"serial_number"`
	Category      string    `dynamodbav:"category"       json:"category"`
	PurchasePrice float64   `dynamodbav:"purchase_price" json:"purchase_price"`
	SellingPrice  float64   `dynamodbav:"selling_price"  json:"selling_price"`
	Quantity      int       `dynamodbav:"quantity"       json:"quantity"`
	ExpDate       string    `dynamodbav:"exp_date"       json:"exp_date"` // YYYY-MM-DD, informational
	CreatedAt     time.Time `dynamodbav:"created_at"     json:"created_at"`
	UpdatedAt     time.Time `dynamodbav:"updated_at"     json:"updated_at"`
}

type CreateItemRequest struct {
	ProductName   string  `json:"product_name" binding:"required"`
	SerialNumber  string  `json:"serial_number"`
	Category      string  `json:"category" binding:"required"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	ExpDate       string  `json:"exp_date"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type UpdateItemRequest struct {
	ProductName   string  `json:"product_name" binding:"required"`
	SerialNumber  string  `json:"serial_number"`
	Category      string  `json:"category" binding:"required"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	ExpDate       string  `json:"exp_date"`
}
