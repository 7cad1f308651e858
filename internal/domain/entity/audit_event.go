package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEvent is a best-effort trail entry. Writes never block or fail the
// operation that produced them.
type AuditEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserName   string    `gorm:"size:255;not null" json:"user_name"`
	UserRole   string    `gorm:"size:50;not null;default:'unknown'" json:"user_role"`
	Action     string    `gorm:"size:100;not null;index" json:"action"`
	Details    string    `gorm:"type:text" json:"details"`
	OccurredAt time.Time `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new audit event
func (a *AuditEvent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditEvent model
func (AuditEvent) TableName() string {
	return "audit_events"
}
