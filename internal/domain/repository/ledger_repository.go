package repository

import (
	"context"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/pkg/pagination"
)

// LedgerRepository defines the interface for cash ledger data operations.
// Entries are append-only; there is no update.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	List(ctx context.Context, params *LedgerFilterParams) ([]entity.LedgerEntry, int64, error)
	// ListForReport returns entries of one kind in the given window, newest
	// first, without pagination.
	ListForReport(ctx context.Context, kind enum.LedgerKind, start, end *time.Time) ([]entity.LedgerEntry, error)
}

// LedgerFilterParams contains filtering parameters for ledger queries
type LedgerFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Kind       *enum.LedgerKind
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}
