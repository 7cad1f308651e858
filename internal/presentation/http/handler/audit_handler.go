package handler

import (
	"github.com/cancha-central/pos-api/internal/application/service"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/response"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles listing audit events, newest first
func (h *AuditHandler) List(c *gin.Context) {
	params := &pagination.PaginationParams{}
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.auditService.List(c.Request.Context(), params, c.Query("action"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit events retrieved successfully", result)
}
