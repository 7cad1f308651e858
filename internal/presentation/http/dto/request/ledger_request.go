package request

import "github.com/google/uuid"

// RecordIncomeRequest represents a hand-entered income movement
type RecordIncomeRequest struct {
	Concept       string     `json:"concept" binding:"required,min=2,max=255"`
	Category      string     `json:"category" binding:"required"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" binding:"required,oneof=cash card transfer qr"`
	CourtName     *string    `json:"court_name"`
	CustomerID    *uuid.UUID `json:"customer_id"`
	EntryDate     string     `json:"entry_date"` // RFC 3339, defaults to now
}

// RecordExpenseRequest represents a hand-entered expense movement
type RecordExpenseRequest struct {
	Concept       string  `json:"concept" binding:"required,min=2,max=255"`
	Category      string  `json:"category" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash card transfer qr"`
	ReceiptNo     *string `json:"receipt_no"`
	EntryDate     string  `json:"entry_date"` // RFC 3339, defaults to now
}

// LedgerFilterRequest represents ledger filter parameters
type LedgerFilterRequest struct {
	Search    string `form:"search"`
	Kind      string `form:"kind"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// ReportFilterRequest represents consolidated report filter parameters
type ReportFilterRequest struct {
	Type      string `form:"type"`
	Method    string `form:"method"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Format    string `form:"format"` // export only: xlsx, pdf or csv
}
