package domain

import (
	"time"
)

type Vendor struct {
	VendorID  string    `dynamodbav:"vendor_id"  json:"vendor_id"`
	Name      string    `dynamodbav:"name"       json:"name"`
	Phone     string    `dynamodbav:"phone"      json:"phone"`
	Email     string    `dynamodbav:"email"      json:"email"`
	Address   string    `dynamodbav:"address"    json:"address"`
	GSTNumber string    `dynamodbav:"gst_number" json:"gst_number"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updated_at"`
}

type VendorRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address" binding:"required"`
	GSTNumber string `json:"gst_number" binding:"required"`
}
