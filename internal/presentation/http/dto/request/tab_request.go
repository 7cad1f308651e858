package request

import "github.com/google/uuid"

// CreateTabRequest represents a walk-up tab creation request
type CreateTabRequest struct {
	Name string `json:"name" binding:"omitempty,max=100"`
}

// AddProductRequest puts a product on a tab
type AddProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
}

// ChangeQuantityRequest nudges a cart line up or down
type ChangeQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Delta     int       `json:"delta" binding:"required"`
}

// LinkCustomerRequest attaches a customer to a tab; null detaches
type LinkCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}
