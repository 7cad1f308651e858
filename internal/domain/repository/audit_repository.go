package repository

import (
	"context"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/pkg/pagination"
)

// AuditRepository defines the interface for audit trail data operations
type AuditRepository interface {
	Create(ctx context.Context, event *entity.AuditEvent) error
	List(ctx context.Context, params *pagination.PaginationParams, action string) ([]entity.AuditEvent, int64, error)
}
