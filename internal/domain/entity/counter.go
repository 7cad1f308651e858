package entity

import "time"

// Counter backs the sequential display codes (product and customer codes).
// Rows are bumped with a single atomic UPDATE so two concurrent creates can
// never mint the same number.
type Counter struct {
	Name      string    `gorm:"size:50;primary_key" json:"name"`
	LastValue int64     `gorm:"default:0" json:"last_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Counter names used by the code generators.
const (
	CounterProducts  = "products"
	CounterCustomers = "customers"
	CounterReceipts  = "receipts"
)

// TableName returns the table name for the Counter model
func (Counter) TableName() string {
	return "counters"
}
