package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/pkg/apperror"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// Income categories mirror the options shown on the cash register screen.
var incomeCategories = []string{
	"Alquiler de cancha",
	"Torneo",
	"Escuela",
	"Eventos",
	"Otros",
}

var expenseCategories = []string{
	"Mercaderia",
	"Servicios",
	"Mantenimiento",
	"Sueldos",
	"Otros",
}

// LedgerService records hand-entered cash movements. Entries are append-only.
type LedgerService struct {
	ledgerRepo   repository.LedgerRepository
	customerRepo repository.CustomerRepository
	audit        *AuditService
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	ledgerRepo repository.LedgerRepository,
	customerRepo repository.CustomerRepository,
	audit *AuditService,
) *LedgerService {
	return &LedgerService{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		audit:        audit,
	}
}

// IncomeCategories returns the selectable categories for income entries.
func (s *LedgerService) IncomeCategories() []string {
	out := make([]string, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// ExpenseCategories returns the selectable categories for expense entries.
func (s *LedgerService) ExpenseCategories() []string {
	out := make([]string, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

func validCategory(category string, allowed []string) bool {
	for _, c := range allowed {
		if c == category {
			return true
		}
	}
	return false
}

// RecordIncomeInput represents a hand-entered income movement.
type RecordIncomeInput struct {
	User          *entity.User
	Concept       string
	Category      string
	Amount        int64 // cents
	PaymentMethod enum.PaymentMethod
	CourtName     *string
	CustomerID    *uuid.UUID
	EntryDate     time.Time
}

// RecordIncome appends an income entry (court rental, tournament, etc.).
func (s *LedgerService) RecordIncome(ctx context.Context, input *RecordIncomeInput) (*entity.LedgerEntry, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Concept) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "concept", Message: "Concept is required"})
	}
	if !validCategory(input.Category, incomeCategories) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Unknown income category"})
	}
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "Amount must be positive"})
	}
	if !input.PaymentMethod.Valid() || input.PaymentMethod == enum.PaymentMethodSplit {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_method", Message: "Invalid payment method"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	entry := &entity.LedgerEntry{
		Kind:          enum.LedgerKindIncome,
		Concept:       strings.TrimSpace(input.Concept),
		Category:      input.Category,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		CourtName:     input.CourtName,
		CustomerID:    input.CustomerID,
		RecordedByID:  input.User.ID,
		RecordedBy:    input.User.FullName(),
		EntryDate:     entryDate,
	}

	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "ledger.income",
		fmt.Sprintf("%s / %s for %.2f", entry.Category, entry.Concept, float64(entry.Amount)/100))

	return entry, nil
}

// RecordExpenseInput represents a hand-entered expense movement.
type RecordExpenseInput struct {
	User          *entity.User
	Concept       string
	Category      string
	Amount        int64 // cents
	PaymentMethod enum.PaymentMethod
	ReceiptNo     *string
	EntryDate     time.Time
}

// RecordExpense appends an expense entry. The amount is stored positive;
// reports negate it.
func (s *LedgerService) RecordExpense(ctx context.Context, input *RecordExpenseInput) (*entity.LedgerEntry, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Concept) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "concept", Message: "Concept is required"})
	}
	if !validCategory(input.Category, expenseCategories) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Unknown expense category"})
	}
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "Amount must be positive"})
	}
	if !input.PaymentMethod.Valid() || input.PaymentMethod == enum.PaymentMethodSplit {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_method", Message: "Invalid payment method"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	entry := &entity.LedgerEntry{
		Kind:          enum.LedgerKindExpense,
		Concept:       strings.TrimSpace(input.Concept),
		Category:      input.Category,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		ReceiptNo:     input.ReceiptNo,
		RecordedByID:  input.User.ID,
		RecordedBy:    input.User.FullName(),
		EntryDate:     entryDate,
	}

	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "ledger.expense",
		fmt.Sprintf("%s / %s for %.2f", entry.Category, entry.Concept, float64(entry.Amount)/100))

	return entry, nil
}

// ListEntries lists ledger entries with filters
func (s *LedgerService) ListEntries(ctx context.Context, params *repository.LedgerFilterParams) (*pagination.PaginatedResult[entity.LedgerEntry], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	entries, total, err := s.ledgerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}
