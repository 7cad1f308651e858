package handler

import (
	"time"

	"github.com/cancha-central/pos-api/internal/application/service"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/request"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/response"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles cash ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Categories returns the selectable income and expense categories
func (h *LedgerHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", gin.H{
		"income":  h.ledgerService.IncomeCategories(),
		"expense": h.ledgerService.ExpenseCategories(),
	})
}

// RecordIncome appends an income entry
func (h *LedgerHandler) RecordIncome(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	input := &service.RecordIncomeInput{
		User:          user,
		Concept:       req.Concept,
		Category:      req.Category,
		Amount:        utils.ToCents(req.Amount),
		PaymentMethod: method,
		CourtName:     req.CourtName,
		CustomerID:    req.CustomerID,
	}
	if req.EntryDate != "" {
		entryDate, err := time.Parse(time.RFC3339, req.EntryDate)
		if err != nil {
			response.BadRequest(c, "Invalid entry date")
			return
		}
		input.EntryDate = entryDate
	}

	entry, err := h.ledgerService.RecordIncome(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Income recorded successfully", entry)
}

// RecordExpense appends an expense entry
func (h *LedgerHandler) RecordExpense(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	input := &service.RecordExpenseInput{
		User:          user,
		Concept:       req.Concept,
		Category:      req.Category,
		Amount:        utils.ToCents(req.Amount),
		PaymentMethod: method,
		ReceiptNo:     req.ReceiptNo,
	}
	if req.EntryDate != "" {
		entryDate, err := time.Parse(time.RFC3339, req.EntryDate)
		if err != nil {
			response.BadRequest(c, "Invalid entry date")
			return
		}
		input.EntryDate = entryDate
	}

	entry, err := h.ledgerService.RecordExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", entry)
}

// List handles listing ledger entries
func (h *LedgerHandler) List(c *gin.Context) {
	var filter request.LedgerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.LedgerFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:   filter.Search,
		Category: filter.Category,
	}

	if filter.Kind != "" {
		if kind, ok := enum.ParseLedgerKind(filter.Kind); ok {
			params.Kind = &kind
		}
	}
	if filter.StartDate != "" {
		if start, err := time.Parse(time.RFC3339, filter.StartDate); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.Parse(time.RFC3339, filter.EndDate); err == nil {
			params.EndDate = &end
		}
	}

	result, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ledger entries retrieved successfully", result)
}
