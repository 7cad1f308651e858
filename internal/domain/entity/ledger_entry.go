package entity

import (
	"encoding/json"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerEntry is an append-only cash movement recorded by hand: court
// rentals and other income on one side, expenses on the other. Amounts are
// always stored positive; Kind decides the sign in reports.
type LedgerEntry struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Kind          enum.LedgerKind    `gorm:"default:0;index" json:"kind"`
	Concept       string             `gorm:"size:255;not null" json:"concept"`
	Category      string             `gorm:"size:100;not null;index" json:"category"`
	Amount        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	CourtName     *string            `gorm:"size:100" json:"court_name,omitempty"`
	ReceiptNo     *string            `gorm:"size:100" json:"receipt_no,omitempty"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	RecordedByID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"recorded_by_id"`
	RecordedBy    string             `gorm:"size:255" json:"recorded_by"`
	EntryDate     time.Time          `gorm:"not null;index" json:"entry_date"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	type Alias LedgerEntry
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new ledger entry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
