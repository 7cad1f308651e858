package repository

import (
	"context"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	domainRepo "github.com/cancha-central/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ledgerRepository) List(ctx context.Context, params *domainRepo.LedgerFilterParams) ([]entity.LedgerEntry, int64, error) {
	var entries []entity.LedgerEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LedgerEntry{})

	if params.Search != "" {
		query = query.Where("concept ILIKE ? OR category ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("entry_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("entry_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("entry_date DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *ledgerRepository) ListForReport(ctx context.Context, kind enum.LedgerKind, start, end *time.Time) ([]entity.LedgerEntry, error) {
	var entries []entity.LedgerEntry

	query := r.db.WithContext(ctx).Model(&entity.LedgerEntry{}).
		Where("kind = ?", kind)
	if start != nil {
		query = query.Where("entry_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("entry_date <= ?", *end)
	}

	err := query.Order("entry_date DESC").Find(&entries).Error
	return entries, err
}
