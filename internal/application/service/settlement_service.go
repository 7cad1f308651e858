package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/internal/tabs"
	"github.com/cancha-central/pos-api/pkg/apperror"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/google/uuid"
)

// walkInCustomerName is what a receipt shows when no customer is linked.
const walkInCustomerName = "Walk-in"

// SettlementService turns live tabs into paid orders: payment validation,
// atomic stock decrement, order snapshot, customer lifetime spend.
type SettlementService struct {
	registry     *tabs.Registry
	orderRepo    repository.PaidOrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	counterRepo  repository.CounterRepository
	audit        *AuditService
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	registry *tabs.Registry,
	orderRepo repository.PaidOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	counterRepo repository.CounterRepository,
	audit *AuditService,
) *SettlementService {
	return &SettlementService{
		registry:     registry,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		counterRepo:  counterRepo,
		audit:        audit,
	}
}

// PaymentInput is the breakdown handed over at the register, in decimal
// currency units. For cash, CashAmount is the tendered amount; for split,
// the three amounts together must cover the total.
type PaymentInput struct {
	Method     enum.PaymentMethod
	CashAmount float64
	CardAmount float64
	QRAmount   float64
}

// SettleTabInput represents the settle request for one tab
type SettleTabInput struct {
	TabID   uuid.UUID
	Cashier *entity.User
	Payment PaymentInput
}

// paymentBreakdown is the validated result in cents
type paymentBreakdown struct {
	cash   int64
	card   int64
	qr     int64
	change int64
}

// validatePayment enforces the register rules before anything touches the
// database. Cash must cover the total with change returned; split must cover
// the total across the three amounts; card, transfer and QR are assumed to
// capture the exact total.
func validatePayment(method enum.PaymentMethod, total int64, input PaymentInput) (*paymentBreakdown, error) {
	cash := utils.ToCents(input.CashAmount)
	card := utils.ToCents(input.CardAmount)
	qr := utils.ToCents(input.QRAmount)

	switch method {
	case enum.PaymentMethodCash:
		if cash < total {
			return nil, apperror.NewBadRequestError("Cash tendered does not cover the total")
		}
		return &paymentBreakdown{cash: cash, change: cash - total}, nil
	case enum.PaymentMethodCard:
		return &paymentBreakdown{card: total}, nil
	case enum.PaymentMethodTransfer:
		return &paymentBreakdown{}, nil
	case enum.PaymentMethodQR:
		return &paymentBreakdown{qr: total}, nil
	case enum.PaymentMethodSplit:
		if cash+card+qr < total {
			return nil, apperror.NewBadRequestError("Split amounts do not cover the total")
		}
		return &paymentBreakdown{cash: cash, card: card, qr: qr, change: cash + card + qr - total}, nil
	default:
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}
}

// discountedTotal applies a whole-percent discount to the cart total.
func discountedTotal(subTotal int64, discountPercent int) int64 {
	if discountPercent <= 0 {
		return subTotal
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	return subTotal - subTotal*int64(discountPercent)/100
}

// SettleTab charges a tab and writes the paid order. The tab is cleared (or
// removed, for walk-up tabs) only after everything else succeeded.
func (s *SettlementService) SettleTab(ctx context.Context, input *SettleTabInput) (*entity.PaidOrder, error) {
	tab, err := s.registry.Get(input.TabID)
	if err != nil {
		return nil, apperror.NewNotFoundError("Tab")
	}
	if len(tab.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cannot settle an empty tab")
	}

	subTotal := tab.Total()
	discount := 0
	customerName := walkInCustomerName
	var customerID *uuid.UUID
	if tab.Customer != nil {
		discount = tab.Customer.DiscountPercent
		customerName = tab.Customer.Name
		id := tab.Customer.ID
		customerID = &id
	}
	total := discountedTotal(subTotal, discount)

	breakdown, err := validatePayment(input.Payment.Method, total, input.Payment)
	if err != nil {
		return nil, err
	}

	order, err := s.persistSale(ctx, &saleDraft{
		channel:      enum.SaleChannelTab,
		tabName:      tab.Name,
		cashier:      input.Cashier,
		customerID:   customerID,
		customerName: customerName,
		lines:        tab.Lines,
		subTotal:     subTotal,
		discount:     discount,
		total:        total,
		method:       input.Payment.Method,
		breakdown:    breakdown,
	})
	if err != nil {
		return nil, err
	}

	if err := s.registry.Finalize(input.TabID); err != nil {
		// The sale is already persisted; a vanished tab is not a failure.
		s.audit.Record(ctx, input.Cashier, "settlement.finalize_failed",
			fmt.Sprintf("tab %s disappeared after settlement %s", tab.Name, order.ReceiptNo))
	}

	s.audit.Record(ctx, input.Cashier, "settlement",
		fmt.Sprintf("%s settled for %.2f (%s), receipt %s", tab.Name, order.GetTotalDecimal(), order.PaymentMethod, order.ReceiptNo))

	return order, nil
}

// AccessorySaleInput represents a direct counter sale of accessories
type AccessorySaleInput struct {
	Cashier    *entity.User
	CourtName  string // optional tag, which court the sale belongs to
	CustomerID *uuid.UUID
	Items      []SaleItemInput
	Payment    PaymentInput
}

// SaleItemInput is one requested product and quantity
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// SellAccessories rings up a counter sale without a tab. Prices come from
// the catalog at sale time.
func (s *SettlementService) SellAccessories(ctx context.Context, input *AccessorySaleInput) (*entity.PaidOrder, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale has no items")
	}

	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var lines []tabs.Line
	var subTotal int64
	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid quantity for %s", product.Name))
		}
		lines = append(lines, tabs.Line{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.SellingPrice,
			UnitCost:  product.BuyingPrice,
			Quantity:  item.Quantity,
		})
		subTotal += product.SellingPrice * int64(item.Quantity)
	}

	discount := 0
	customerName := walkInCustomerName
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		discount = customer.DiscountPercent
		customerName = customer.Name
	}
	total := discountedTotal(subTotal, discount)

	breakdown, err := validatePayment(input.Payment.Method, total, input.Payment)
	if err != nil {
		return nil, err
	}

	tabName := "Counter"
	if input.CourtName != "" {
		tabName = input.CourtName
	}

	order, err := s.persistSale(ctx, &saleDraft{
		channel:      enum.SaleChannelAccessory,
		tabName:      tabName,
		cashier:      input.Cashier,
		customerID:   input.CustomerID,
		customerName: customerName,
		lines:        lines,
		subTotal:     subTotal,
		discount:     discount,
		total:        total,
		method:       input.Payment.Method,
		breakdown:    breakdown,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.Cashier, "accessory_sale",
		fmt.Sprintf("accessory sale for %.2f (%s), receipt %s", order.GetTotalDecimal(), order.PaymentMethod, order.ReceiptNo))

	return order, nil
}

// saleDraft carries everything persistSale needs, already validated
type saleDraft struct {
	channel      enum.SaleChannel
	tabName      string
	cashier      *entity.User
	customerID   *uuid.UUID
	customerName string
	lines        []tabs.Line
	subTotal     int64
	discount     int
	total        int64
	method       enum.PaymentMethod
	breakdown    *paymentBreakdown
}

// persistSale is the shared commit path: resolve kits to component
// decrements, atomically take the stock, write the order with its line
// snapshots, then bump the customer's lifetime spend. The stock decrement is
// compensated if the order insert fails.
func (s *SettlementService) persistSale(ctx context.Context, draft *saleDraft) (*entity.PaidOrder, error) {
	// Batch fetch all products in one query (prevents N+1); kits carry their
	// components preloaded.
	productIDs := make([]uuid.UUID, len(draft.lines))
	for i, line := range draft.lines {
		productIDs[i] = line.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	nameByID := make(map[uuid.UUID]string)
	for i := range products {
		productMap[products[i].ID] = &products[i]
		nameByID[products[i].ID] = products[i].Name
	}

	var totalProducts int
	orderLines := make([]entity.OrderLine, 0, len(draft.lines))
	stockDecrements := make(map[uuid.UUID]int)

	for _, line := range draft.lines {
		product, exists := productMap[line.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", line.ProductID))
		}

		totalProducts += line.Quantity
		orderLines = append(orderLines, entity.OrderLine{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			UnitCost:    line.UnitCost,
			Total:       line.UnitPrice * int64(line.Quantity),
		})

		// Kits consume component stock; plain products consume their own.
		if product.IsKit {
			for _, comp := range product.Components {
				stockDecrements[comp.ComponentID] += line.Quantity * comp.Quantity
				if comp.Component != nil {
					nameByID[comp.ComponentID] = comp.Component.Name
				}
			}
		} else {
			stockDecrements[product.ID] += line.Quantity
		}
	}

	// Mint the receipt number before touching stock so a counter failure
	// needs no compensation.
	seq, err := s.counterRepo.Next(ctx, entity.CounterReceipts)
	if err != nil {
		return nil, err
	}
	receiptNo := utils.FormatReceiptNo(seq)

	// Atomically decrement stock; race-condition safe. If any product has
	// insufficient stock the entire batch rolls back.
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if name, exists := nameByID[id]; exists {
				failedNames = append(failedNames, name)
			} else {
				failedNames = append(failedNames, id.String())
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	order := &entity.PaidOrder{
		ReceiptNo:       receiptNo,
		Channel:         draft.channel,
		TabName:         draft.tabName,
		CashierID:       draft.cashier.ID,
		CashierName:     draft.cashier.FullName(),
		CustomerID:      draft.customerID,
		CustomerName:    draft.customerName,
		TotalProducts:   totalProducts,
		SubTotal:        draft.subTotal,
		DiscountPercent: draft.discount,
		Total:           draft.total,
		PaymentMethod:   draft.method,
		CashAmount:      draft.breakdown.cash,
		CardAmount:      draft.breakdown.card,
		QRAmount:        draft.breakdown.qr,
		Change:          draft.breakdown.change,
		PaidAt:          time.Now(),
	}

	if err := s.orderRepo.CreateWithLines(ctx, order, orderLines); err != nil {
		// Stock was already decremented - restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	if draft.customerID != nil {
		if err := s.customerRepo.AddLifetimeSpend(ctx, *draft.customerID, draft.total); err != nil {
			// The order is already on record; surface the miss in the trail
			// instead of failing the sale.
			s.audit.Record(ctx, draft.cashier, "settlement.spend_update_failed",
				fmt.Sprintf("lifetime spend not updated for customer %s on %s", draft.customerID, receiptNo))
		}
	}

	order.Lines = orderLines
	return order, nil
}

// GetOrder retrieves a paid order by ID
func (s *SettlementService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.PaidOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists paid orders with filtering
func (s *SettlementService) ListOrders(ctx context.Context, params *repository.PaidOrderFilterParams) (*pagination.PaginatedResult[entity.PaidOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
