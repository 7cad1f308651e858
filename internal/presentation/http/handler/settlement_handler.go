package handler

import (
	"time"

	"github.com/cancha-central/pos-api/internal/application/service"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/request"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/response"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SettlementHandler handles settlement and paid order HTTP requests
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

func paymentInput(req request.PaymentRequest) (service.PaymentInput, bool) {
	method, ok := enum.ParsePaymentMethod(req.Method)
	if !ok {
		return service.PaymentInput{}, false
	}
	return service.PaymentInput{
		Method:     method,
		CashAmount: req.CashAmount,
		CardAmount: req.CardAmount,
		QRAmount:   req.QRAmount,
	}, true
}

// SettleTab charges a tab and writes the paid order
// @Summary Settle a tab
// @Description Validate payment, decrement stock and record the sale
// @Tags settlement
// @Accept json
// @Produce json
// @Param id path string true "Tab ID"
// @Param request body request.SettleTabRequest true "Payment breakdown"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /tabs/{id}/settle [post]
func (h *SettlementHandler) SettleTab(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	tabID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	var req request.SettleTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, ok := paymentInput(req.Payment)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	order, err := h.settlementService.SettleTab(c.Request.Context(), &service.SettleTabInput{
		TabID:   tabID,
		Cashier: user,
		Payment: payment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab settled successfully", order)
}

// SellAccessories rings up a counter sale without a tab
func (h *SettlementHandler) SellAccessories(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AccessorySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, ok := paymentInput(req.Payment)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.settlementService.SellAccessories(c.Request.Context(), &service.AccessorySaleInput{
		Cashier:    user,
		CourtName:  req.CourtName,
		CustomerID: req.CustomerID,
		Items:      items,
		Payment:    payment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", order)
}

// List handles listing paid orders
func (h *SettlementHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PaidOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	params.Pagination.Validate()

	if filter.Channel != "" {
		if channel, ok := enum.ParseSaleChannel(filter.Channel); ok {
			params.Channel = &channel
		}
	}
	if filter.PaymentMethod != "" {
		if method, ok := enum.ParsePaymentMethod(filter.PaymentMethod); ok {
			params.PaymentMethod = &method
		}
	}
	if filter.CustomerID != "" {
		if customerID, err := uuid.Parse(filter.CustomerID); err == nil {
			params.CustomerID = &customerID
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

	result, err := h.settlementService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single paid order
func (h *SettlementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.settlementService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}
