package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/pkg/apperror"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/google/uuid"
)

// UserService handles staff account management. All operations here are
// admin-only, enforced at the route level.
type UserService struct {
	userRepo repository.UserRepository
	audit    *AuditService
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, audit *AuditService) *UserService {
	return &UserService{userRepo: userRepo, audit: audit}
}

// ListUsers returns a paginated list of staff accounts
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.User], error) {
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Actor     *entity.User
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      enum.UserRole
}

// CreateUser creates a staff account
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.FirstName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "first_name", Message: "First name is required"})
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "Invalid email address"})
	}
	if len(input.Password) < 8 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if !input.Role.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "Invalid role"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      input.Role,
		Active:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.Actor, "user.create",
		fmt.Sprintf("created %s account for %s", user.Role, user.Email))

	return user, nil
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	Actor     *entity.User
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	Role      *enum.UserRole
	Active    *bool
	Password  *string
}

// UpdateUser updates a staff account. Email is not editable.
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "role", Message: "Invalid role"},
			})
		}
		user.Role = *input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "password", Message: "Password must be at least 8 characters"},
			})
		}
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.Actor, "user.update",
		fmt.Sprintf("updated account %s", user.Email))

	return user, nil
}

// DeleteUser removes a staff account. An admin cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actor *entity.User, userID uuid.UUID) error {
	if actor != nil && actor.ID == userID {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "user.delete",
		fmt.Sprintf("deleted account %s", user.Email))
	return nil
}
