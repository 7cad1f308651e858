package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          string     `json:"name" binding:"required,min=2,max=255"`
	Section       string     `json:"section" binding:"required,oneof=restaurant accessories"`
	Quantity      int        `json:"quantity" binding:"min=0"`
	QuantityAlert int        `json:"quantity_alert" binding:"min=0"`
	BuyingPrice   float64    `json:"buying_price" binding:"min=0"`
	SellingPrice  float64    `json:"selling_price" binding:"min=0"`
	IsSupply      bool       `json:"is_supply"`
}

// KitComponentRequest names one component of a kit
type KitComponentRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateKitRequest represents a kit creation request
type CreateKitRequest struct {
	CategoryID    *uuid.UUID            `json:"category_id"`
	Name          string                `json:"name" binding:"required,min=2,max=255"`
	Section       string                `json:"section" binding:"required,oneof=restaurant accessories"`
	ProfitPercent float64               `json:"profit_percent" binding:"min=0"`
	Components    []KitComponentRequest `json:"components" binding:"required,min=1,dive"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Section       *string    `json:"section" binding:"omitempty,oneof=restaurant accessories"`
	QuantityAlert *int       `json:"quantity_alert" binding:"omitempty,min=0"`
	BuyingPrice   *float64   `json:"buying_price" binding:"omitempty,min=0"`
	SellingPrice  *float64   `json:"selling_price" binding:"omitempty,min=0"`
	IsSupply      *bool      `json:"is_supply"`
}

// AddStockRequest represents a restock request
type AddStockRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	Section    string `form:"section"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	Sellable   bool   `form:"sellable"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Section string `json:"section" binding:"required,oneof=restaurant accessories"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=100"`
	Section *string `json:"section" binding:"omitempty,oneof=restaurant accessories"`
}
