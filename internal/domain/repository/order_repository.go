package repository

import (
	"context"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// PaidOrderRepository defines the interface for settled order data operations
type PaidOrderRepository interface {
	// CreateWithLines inserts the order and its line snapshots in one
	// transaction.
	CreateWithLines(ctx context.Context, order *entity.PaidOrder, lines []entity.OrderLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaidOrder, error)
	GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.PaidOrder, error)
	List(ctx context.Context, params *PaidOrderFilterParams) ([]entity.PaidOrder, int64, error)
	// ListForReport returns orders with lines preloaded in the given window,
	// newest first, without pagination.
	ListForReport(ctx context.Context, start, end *time.Time) ([]entity.PaidOrder, error)
}

// PaidOrderFilterParams contains filtering parameters for paid order queries
type PaidOrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Channel       *enum.SaleChannel
	PaymentMethod *enum.PaymentMethod
	CustomerID    *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
