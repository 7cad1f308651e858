package service

import (
	"context"
	"log"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/pkg/pagination"
)

// AuditService appends to the audit trail. Writes are best-effort: a failed
// insert is logged and swallowed so it can never break the operation being
// recorded.
type AuditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends one event. A nil user is recorded as "system".
func (s *AuditService) Record(ctx context.Context, user *entity.User, action, details string) {
	event := &entity.AuditEvent{
		UserName:   "system",
		UserRole:   "system",
		Action:     action,
		Details:    details,
		OccurredAt: time.Now(),
	}
	if user != nil {
		event.UserName = user.FullName()
		event.UserRole = user.Role.String()
	}

	if err := s.auditRepo.Create(ctx, event); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}

// List returns trail entries, newest first, optionally filtered by action.
func (s *AuditService) List(ctx context.Context, params *pagination.PaginationParams, action string) (*pagination.PaginatedResult[entity.AuditEvent], error) {
	events, total, err := s.auditRepo.List(ctx, params, action)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}
