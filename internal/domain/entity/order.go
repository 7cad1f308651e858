package entity

import (
	"encoding/json"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaidOrder is the immutable record written when a tab is settled or an
// accessory sale is rung up. Line snapshots carry the prices that were
// charged, so later catalog edits never change history.
type PaidOrder struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo       string             `gorm:"size:100;unique;not null" json:"receipt_no"`
	Channel         enum.SaleChannel   `gorm:"default:0;index" json:"channel"`
	TabName         string             `gorm:"size:100;not null" json:"tab_name"`
	CashierID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierName     string             `gorm:"size:255" json:"cashier_name"`
	CustomerID      *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName    string             `gorm:"size:255;not null" json:"customer_name"`
	TotalProducts   int                `gorm:"default:0" json:"total_products"`
	SubTotal        int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountPercent int                `gorm:"default:0" json:"discount_percent"`
	Total           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod   enum.PaymentMethod `gorm:"default:0;index" json:"payment_method"`
	CashAmount      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CardAmount      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	QRAmount        int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Change          int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaidAt          time.Time          `gorm:"not null;index" json:"paid_at"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Cashier  User        `gorm:"foreignKey:CashierID" json:"-"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o PaidOrder) MarshalJSON() ([]byte, error) {
	type Alias PaidOrder
	return json.Marshal(&struct {
		Alias
		SubTotal   float64 `json:"sub_total"`
		Total      float64 `json:"total"`
		CashAmount float64 `json:"cash_amount"`
		CardAmount float64 `json:"card_amount"`
		QRAmount   float64 `json:"qr_amount"`
		Change     float64 `json:"change"`
	}{
		Alias:      Alias(o),
		SubTotal:   float64(o.SubTotal) / 100,
		Total:      float64(o.Total) / 100,
		CashAmount: float64(o.CashAmount) / 100,
		CardAmount: float64(o.CardAmount) / 100,
		QRAmount:   float64(o.QRAmount) / 100,
		Change:     float64(o.Change) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new paid order
func (o *PaidOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaidOrder model
func (PaidOrder) TableName() string {
	return "paid_orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *PaidOrder) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// LineCost returns the cost of goods across all lines, in cents.
func (o *PaidOrder) LineCost() int64 {
	var cost int64
	for _, l := range o.Lines {
		cost += l.UnitCost * int64(l.Quantity)
	}
	return cost
}

// OrderLine represents a line item snapshot in a paid order
type OrderLine struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	UnitCost    int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   PaidOrder `gorm:"foreignKey:OrderID" json:"-"`
	Product Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l OrderLine) MarshalJSON() ([]byte, error) {
	type Alias OrderLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		UnitCost  float64 `json:"unit_cost"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		UnitCost:  float64(l.UnitCost) / 100,
		Total:     float64(l.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order line
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}
