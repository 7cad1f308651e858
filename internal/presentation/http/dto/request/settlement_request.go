package request

import "github.com/google/uuid"

// PaymentRequest is the payment breakdown from the register, in decimal
// currency units
type PaymentRequest struct {
	Method     string  `json:"method" binding:"required,oneof=cash card transfer qr split"`
	CashAmount float64 `json:"cash_amount" binding:"min=0"`
	CardAmount float64 `json:"card_amount" binding:"min=0"`
	QRAmount   float64 `json:"qr_amount" binding:"min=0"`
}

// SettleTabRequest represents a tab settlement request
type SettleTabRequest struct {
	Payment PaymentRequest `json:"payment" binding:"required"`
}

// SaleItemRequest is one product line of a counter sale
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// AccessorySaleRequest represents a direct accessory sale
type AccessorySaleRequest struct {
	CourtName  string            `json:"court_name" binding:"omitempty,max=100"`
	CustomerID *uuid.UUID        `json:"customer_id"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Payment    PaymentRequest    `json:"payment" binding:"required"`
}

// OrderFilterRequest represents paid order filter parameters
type OrderFilterRequest struct {
	Search        string `form:"search"`
	Channel       string `form:"channel"`
	PaymentMethod string `form:"payment_method"`
	CustomerID    string `form:"customer_id"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
