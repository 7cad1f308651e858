package repository

import (
	"context"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	domainRepo "github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) domainRepo.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, event *entity.AuditEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *auditRepository) List(ctx context.Context, params *pagination.PaginationParams, action string) ([]entity.AuditEvent, int64, error) {
	var events []entity.AuditEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AuditEvent{})

	if action != "" {
		query = query.Where("action = ?", action)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("occurred_at DESC").
		Find(&events).Error

	return events, total, err
}
