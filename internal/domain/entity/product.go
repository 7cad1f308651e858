package entity

import (
	"encoding/json"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog item: something sold at the bar, an
// accessory sold at the counter, a kitchen supply, or a kit assembled
// from other products
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	Section       enum.Section   `gorm:"default:0;index" json:"section"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	BuyingPrice   int64          `gorm:"default:0" json:"buying_price"`  // Stored in cents
	SellingPrice  int64          `gorm:"default:0" json:"selling_price"` // Stored in cents
	IsSupply      bool           `gorm:"default:false" json:"is_supply"`
	IsKit         bool           `gorm:"default:false" json:"is_kit"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category   *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Components []KitComponent `gorm:"foreignKey:KitID" json:"components,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetBuyingPriceDecimal returns the buying price as a decimal (for display)
func (p *Product) GetBuyingPriceDecimal() float64 {
	return float64(p.BuyingPrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetBuyingPriceFromDecimal sets the buying price from a decimal value
func (p *Product) SetBuyingPriceFromDecimal(price float64) {
	p.BuyingPrice = utils.ToCents(price)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = utils.ToCents(price)
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID            uuid.UUID      `json:"id"`
	CategoryID    *uuid.UUID     `json:"category_id,omitempty"`
	Name          string         `json:"name"`
	Code          string         `json:"code"`
	Section       enum.Section   `json:"section"`
	Quantity      int            `json:"quantity"`
	QuantityAlert int            `json:"quantity_alert"`
	BuyingPrice   float64        `json:"buying_price"`  // Decimal value for JSON
	SellingPrice  float64        `json:"selling_price"` // Decimal value for JSON
	IsSupply      bool           `json:"is_supply"`
	IsKit         bool           `json:"is_kit"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Category      *Category      `json:"category,omitempty"`
	Components    []KitComponent `json:"components,omitempty"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Code:          p.Code,
		Section:       p.Section,
		Quantity:      p.Quantity,
		QuantityAlert: p.QuantityAlert,
		BuyingPrice:   p.GetBuyingPriceDecimal(),
		SellingPrice:  p.GetSellingPriceDecimal(),
		IsSupply:      p.IsSupply,
		IsKit:         p.IsKit,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Category:      p.Category,
		Components:    p.Components,
	})
}

// KitComponent ties a kit product to one of the products it consumes.
// Settlement decrements component stock, never the kit row itself.
type KitComponent struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	KitID       uuid.UUID `gorm:"type:uuid;not null;index" json:"kit_id"`
	ComponentID uuid.UUID `gorm:"type:uuid;not null;index" json:"component_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Component *Product `gorm:"foreignKey:ComponentID" json:"component,omitempty"`
}

// BeforeCreate generates a UUID before creating a new kit component
func (k *KitComponent) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KitComponent model
func (KitComponent) TableName() string {
	return "kit_components"
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Section   enum.Section   `gorm:"default:0" json:"section"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
