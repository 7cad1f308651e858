package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	domainRepo "github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paidOrderRepository struct {
	db *gorm.DB
}

// NewPaidOrderRepository creates a new paid order repository
func NewPaidOrderRepository(db *gorm.DB) domainRepo.PaidOrderRepository {
	return &paidOrderRepository{db: db}
}

// CreateWithLines inserts the order and its snapshots together so a partial
// order can never be read back.
func (r *paidOrderRepository) CreateWithLines(ctx context.Context, order *entity.PaidOrder, lines []entity.OrderLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (r *paidOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaidOrder, error) {
	var order entity.PaidOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *paidOrderRepository) GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.PaidOrder, error) {
	var order entity.PaidOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *paidOrderRepository) List(ctx context.Context, params *domainRepo.PaidOrderFilterParams) ([]entity.PaidOrder, int64, error) {
	var orders []entity.PaidOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaidOrder{})

	if params.Search != "" {
		query = query.Where("receipt_no ILIKE ? OR customer_name ILIKE ? OR tab_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Channel != nil {
		query = query.Where("channel = ?", *params.Channel)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("paid_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("paid_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "paid_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Lines").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

func (r *paidOrderRepository) ListForReport(ctx context.Context, start, end *time.Time) ([]entity.PaidOrder, error) {
	var orders []entity.PaidOrder

	query := r.db.WithContext(ctx).Model(&entity.PaidOrder{})
	if start != nil {
		query = query.Where("paid_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("paid_at <= ?", *end)
	}

	err := query.
		Preload("Lines").
		Order("paid_at DESC").
		Find(&orders).Error
	return orders, err
}
