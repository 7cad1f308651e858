package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a registered venue customer. LifetimeSpend only ever
// grows, and only through settlement.
type Customer struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code            string         `gorm:"size:20;unique;not null" json:"code"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	NationalID      *string        `gorm:"size:50" json:"national_id,omitempty"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	Instagram       *string        `gorm:"size:100" json:"instagram,omitempty"`
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	DiscountPercent int            `gorm:"default:0" json:"discount_percent"`
	LifetimeSpend   int64          `gorm:"default:0" json:"lifetime_spend"` // Stored in cents
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders []PaidOrder `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerJSON is a helper struct for JSON marshaling with decimal amounts
type CustomerJSON struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	NationalID      *string   `json:"national_id,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Instagram       *string   `json:"instagram,omitempty"`
	Email           *string   `json:"email,omitempty"`
	DiscountPercent int       `json:"discount_percent"`
	LifetimeSpend   float64   `json:"lifetime_spend"` // Decimal value for JSON
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MarshalJSON converts Customer to JSON with decimal amounts
func (c Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(CustomerJSON{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		NationalID:      c.NationalID,
		Phone:           c.Phone,
		Instagram:       c.Instagram,
		Email:           c.Email,
		DiscountPercent: c.DiscountPercent,
		LifetimeSpend:   float64(c.LifetimeSpend) / 100,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	})
}
