package repository

import (
	"context"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCode(ctx context.Context, code string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// TopBySpend returns the biggest lifetime spenders, highest first.
	TopBySpend(ctx context.Context, limit int) ([]entity.Customer, error)
	// AddLifetimeSpend atomically adds amount (cents) to the customer's
	// lifetime spend. Settlement is the only caller.
	AddLifetimeSpend(ctx context.Context, id uuid.UUID, amount int64) error
}
