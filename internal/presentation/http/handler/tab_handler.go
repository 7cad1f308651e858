package handler

import (
	"github.com/cancha-central/pos-api/internal/application/service"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/request"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TabHandler handles live tab HTTP requests
type TabHandler struct {
	tabService *service.TabService
}

// NewTabHandler creates a new tab handler
func NewTabHandler(tabService *service.TabService) *TabHandler {
	return &TabHandler{tabService: tabService}
}

// Board returns every live tab grouped by kind
func (h *TabHandler) Board(c *gin.Context) {
	board := h.tabService.GetBoard(c.Request.Context())
	response.OK(c, "Tabs retrieved successfully", board)
}

// Get returns one tab with its cart
func (h *TabHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	tab, err := h.tabService.GetTab(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab retrieved successfully", tab)
}

// Create opens a walk-up tab
func (h *TabHandler) Create(c *gin.Context) {
	var req request.CreateTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tab := h.tabService.CreateOpenTab(c.Request.Context(), req.Name)
	response.Created(c, "Tab created successfully", tab)
}

// Delete discards a walk-up tab
func (h *TabHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	if err := h.tabService.RemoveTab(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab removed successfully", nil)
}

// Park shelves a walk-up tab
func (h *TabHandler) Park(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	if err := h.tabService.ParkTab(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab parked successfully", nil)
}

// Resume brings a parked tab back to the active list
func (h *TabHandler) Resume(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	if err := h.tabService.ResumeTab(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab resumed successfully", nil)
}

// AddProduct puts a product on the tab's cart
func (h *TabHandler) AddProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	var req request.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	tab, err := h.tabService.AddProduct(c.Request.Context(), id, req.ProductID, quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product added successfully", tab)
}

// ChangeQuantity nudges a cart line up or down
func (h *TabHandler) ChangeQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	var req request.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tab, err := h.tabService.ChangeQuantity(c.Request.Context(), id, req.ProductID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated successfully", tab)
}

// LinkCustomer attaches or detaches a customer on the tab
func (h *TabHandler) LinkCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tab ID")
		return
	}

	var req request.LinkCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tab, err := h.tabService.LinkCustomer(c.Request.Context(), id, req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer linked successfully", tab)
}
