package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/pkg/apperror"
	"github.com/cancha-central/pos-api/pkg/pagination"
	"github.com/cancha-central/pos-api/pkg/utils"
	"github.com/google/uuid"
)

// ProductService handles catalog operations: plain products, supplies and
// kits, plus stock and inventory valuation.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	counterRepo  repository.CounterRepository
	audit        *AuditService
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	counterRepo repository.CounterRepository,
	audit *AuditService,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		counterRepo:  counterRepo,
		audit:        audit,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	User          *entity.User
	CategoryID    *uuid.UUID
	Name          string
	Section       enum.Section
	Quantity      int
	QuantityAlert int
	BuyingPrice   float64
	SellingPrice  float64
	IsSupply      bool
}

// CreateProduct creates a plain product or supply. The display code is
// minted from the product counter: name initials plus a zero-padded
// sequence.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	seq, err := s.counterRepo.Next(ctx, entity.CounterProducts)
	if err != nil {
		return nil, err
	}
	code := utils.FormatProductCode(input.Name, seq)

	product := &entity.Product{
		CategoryID:    input.CategoryID,
		Name:          strings.TrimSpace(input.Name),
		Code:          code,
		Section:       input.Section,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		IsSupply:      input.IsSupply,
	}
	product.SetBuyingPriceFromDecimal(input.BuyingPrice)
	product.SetSellingPriceFromDecimal(input.SellingPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "product.create",
		fmt.Sprintf("created %s (%s)", product.Name, product.Code))

	return s.productRepo.GetByID(ctx, product.ID)
}

// KitComponentInput names one component and how many units each kit consumes
type KitComponentInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateKitInput represents the create kit input
type CreateKitInput struct {
	User          *entity.User
	CategoryID    *uuid.UUID
	Name          string
	Section       enum.Section
	ProfitPercent float64
	Components    []KitComponentInput
}

// CreateKit assembles a kit product. Cost is the sum of component costs;
// the selling price is cost marked up by the profit percentage. Kits carry
// no stock of their own.
func (s *ProductService) CreateKit(ctx context.Context, input *CreateKitInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Kit name is required")
	}
	if len(input.Components) == 0 {
		return nil, apperror.NewBadRequestError("A kit needs at least one component")
	}

	componentIDs := make([]uuid.UUID, len(input.Components))
	for i, comp := range input.Components {
		if comp.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Component quantities must be positive")
		}
		componentIDs[i] = comp.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, componentIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var cost int64
	components := make([]entity.KitComponent, 0, len(input.Components))
	for _, comp := range input.Components {
		product, exists := productMap[comp.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Component %s", comp.ProductID))
		}
		if product.IsKit {
			return nil, apperror.NewBadRequestError("Kits cannot contain other kits")
		}
		cost += product.BuyingPrice * int64(comp.Quantity)
		components = append(components, entity.KitComponent{
			ComponentID: comp.ProductID,
			Quantity:    comp.Quantity,
		})
	}

	sellingPrice := int64(float64(cost) * (1 + input.ProfitPercent/100))

	seq, err := s.counterRepo.Next(ctx, entity.CounterProducts)
	if err != nil {
		return nil, err
	}

	kit := &entity.Product{
		CategoryID:   input.CategoryID,
		Name:         strings.TrimSpace(input.Name),
		Code:         utils.FormatProductCode(input.Name, seq),
		Section:      input.Section,
		BuyingPrice:  cost,
		SellingPrice: sellingPrice,
		IsKit:        true,
	}

	if err := s.productRepo.Create(ctx, kit); err != nil {
		return nil, err
	}
	if err := s.productRepo.ReplaceComponents(ctx, kit.ID, components); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "product.create_kit",
		fmt.Sprintf("created kit %s (%s) with %d components", kit.Name, kit.Code, len(components)))

	return s.productRepo.GetByID(ctx, kit.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists catalog items with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	User          *entity.User
	ProductID     uuid.UUID
	CategoryID    *uuid.UUID
	Name          *string
	Section       *enum.Section
	QuantityAlert *int
	BuyingPrice   *float64
	SellingPrice  *float64
	IsSupply      *bool
}

// UpdateProduct updates catalog fields. Stock moves only through restock
// and settlement, never through this path.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Section != nil {
		product.Section = *input.Section
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.BuyingPrice != nil {
		product.SetBuyingPriceFromDecimal(*input.BuyingPrice)
	}
	if input.SellingPrice != nil {
		product.SetSellingPriceFromDecimal(*input.SellingPrice)
	}
	if input.IsSupply != nil {
		product.IsSupply = *input.IsSupply
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.User, "product.update",
		fmt.Sprintf("updated %s (%s)", product.Name, product.Code))

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct removes a catalog item
func (s *ProductService) DeleteProduct(ctx context.Context, user *entity.User, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, user, "product.delete",
		fmt.Sprintf("deleted %s (%s)", product.Name, product.Code))
	return nil
}

// AddStock registers a restock delivery.
func (s *ProductService) AddStock(ctx context.Context, user *entity.User, id uuid.UUID, amount int) (*entity.Product, error) {
	if amount < 1 {
		return nil, apperror.NewBadRequestError("Restock amount must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.IsKit {
		return nil, apperror.NewBadRequestError("Kits derive stock from their components")
	}

	if err := s.productRepo.AddQuantity(ctx, id, amount); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, user, "product.restock",
		fmt.Sprintf("added %d units to %s (%s)", amount, product.Name, product.Code))

	return s.productRepo.GetByID(ctx, id)
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// KitAvailability returns how many kits the current component stock can
// assemble: the floor of the scarcest component.
func KitAvailability(kit *entity.Product) int {
	if !kit.IsKit || len(kit.Components) == 0 {
		return 0
	}
	max := math.MaxInt
	for _, comp := range kit.Components {
		if comp.Quantity <= 0 {
			return 0
		}
		available := 0
		if comp.Component != nil {
			available = comp.Component.Quantity
		}
		if n := available / comp.Quantity; n < max {
			max = n
		}
	}
	return max
}

// GetKitAvailability resolves a kit and reports its sellable quantity.
func (s *ProductService) GetKitAvailability(ctx context.Context, id uuid.UUID) (int, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, apperror.NewNotFoundError("Product")
	}
	if !product.IsKit {
		return 0, apperror.NewBadRequestError("Product is not a kit")
	}
	return KitAvailability(product), nil
}

// InventoryValuationRow is one product's worth at cost and at price
type InventoryValuationRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Quantity  int       `json:"quantity"`
	CostValue float64   `json:"cost_value"`
	SaleValue float64   `json:"sale_value"`
	Margin    float64   `json:"margin"`
}

// InventoryValuation is the valorized inventory summary
type InventoryValuation struct {
	Rows            []InventoryValuationRow `json:"rows"`
	TotalCostValue  float64                 `json:"total_cost_value"`
	TotalSaleValue  float64                 `json:"total_sale_value"`
	PotentialProfit float64                 `json:"potential_profit"`
}

// GetInventoryValuation prices out current stock at cost and at selling
// price. Kits are skipped; their value lives in their components.
func (s *ProductService) GetInventoryValuation(ctx context.Context) (*InventoryValuation, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &InventoryValuation{Rows: make([]InventoryValuationRow, 0, len(products))}
	var totalCost, totalSale int64
	for i := range products {
		p := &products[i]
		if p.IsKit {
			continue
		}
		costValue := p.BuyingPrice * int64(p.Quantity)
		saleValue := p.SellingPrice * int64(p.Quantity)
		totalCost += costValue
		totalSale += saleValue
		out.Rows = append(out.Rows, InventoryValuationRow{
			ProductID: p.ID,
			Name:      p.Name,
			Code:      p.Code,
			Quantity:  p.Quantity,
			CostValue: float64(costValue) / 100,
			SaleValue: float64(saleValue) / 100,
			Margin:    float64(saleValue-costValue) / 100,
		})
	}
	out.TotalCostValue = float64(totalCost) / 100
	out.TotalSaleValue = float64(totalSale) / 100
	out.PotentialProfit = float64(totalSale-totalCost) / 100

	return out, nil
}
