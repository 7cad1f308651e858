package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/pkg/apperror"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/google/uuid"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	counterRepo  repository.CounterRepository
	audit        *AuditService
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	counterRepo repository.CounterRepository,
	audit *AuditService,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		counterRepo:  counterRepo,
		audit:        audit,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	User            *entity.User
	Name            string
	NationalID      *string
	Phone           *string
	Instagram       *string
	Email           *string
	DiscountPercent int
}

func validateCustomerFields(name string, email *string, discount int) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if discount < 0 || discount > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount_percent", Message: "Discount must be between 0 and 100"})
	}
	if email != nil && *email != "" {
		if _, err := mail.ParseAddress(*email); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "Invalid email address"})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateCustomer registers a customer with a sequential 4-digit code.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if err := validateCustomerFields(input.Name, input.Email, input.DiscountPercent); err != nil {
		return nil, err
	}

	seq, err := s.counterRepo.Next(ctx, entity.CounterCustomers)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Code:            utils.FormatCustomerCode(seq),
		Name:            strings.TrimSpace(input.Name),
		NationalID:      input.NationalID,
		Phone:           input.Phone,
		Instagram:       input.Instagram,
		Email:           input.Email,
		DiscountPercent: input.DiscountPercent,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "customer.create",
		fmt.Sprintf("registered %s (%s)", customer.Name, customer.Code))

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// TopConsumers returns the biggest lifetime spenders.
func (s *CustomerService) TopConsumers(ctx context.Context, limit int) ([]entity.Customer, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.customerRepo.TopBySpend(ctx, limit)
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	User            *entity.User
	CustomerID      uuid.UUID
	Name            *string
	NationalID      *string
	Phone           *string
	Instagram       *string
	Email           *string
	DiscountPercent *int
}

// UpdateCustomer updates customer fields. Code and lifetime spend are not
// editable.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	name := customer.Name
	if input.Name != nil {
		name = *input.Name
	}
	email := customer.Email
	if input.Email != nil {
		email = input.Email
	}
	discount := customer.DiscountPercent
	if input.DiscountPercent != nil {
		discount = *input.DiscountPercent
	}
	if err := validateCustomerFields(name, email, discount); err != nil {
		return nil, err
	}

	customer.Name = strings.TrimSpace(name)
	customer.Email = email
	customer.DiscountPercent = discount
	if input.NationalID != nil {
		customer.NationalID = input.NationalID
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Instagram != nil {
		customer.Instagram = input.Instagram
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "customer.update",
		fmt.Sprintf("updated %s (%s)", customer.Name, customer.Code))

	return customer, nil
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, user *entity.User, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, user, "customer.delete",
		fmt.Sprintf("deleted %s (%s)", customer.Name, customer.Code))
	return nil
}
