package service

import (
	"context"
	"errors"

	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/internal/tabs"
	"github.com/cancha-central/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// TabService is the service layer over the tab registry: it resolves catalog
// and customer lookups so the registry itself never touches the database.
type TabService struct {
	registry     *tabs.Registry
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewTabService creates a new tab service
func NewTabService(
	registry *tabs.Registry,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *TabService {
	return &TabService{
		registry:     registry,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Board is the POS landing view: every live tab grouped by kind
type Board struct {
	Courts   []tabs.Tab `json:"courts"`
	OpenTabs []tabs.Tab `json:"open_tabs"`
	Parked   []tabs.Tab `json:"parked"`
}

// GetBoard returns all live tabs.
func (s *TabService) GetBoard(ctx context.Context) *Board {
	return &Board{
		Courts:   s.registry.Courts(),
		OpenTabs: s.registry.OpenTabs(),
		Parked:   s.registry.ParkedTabs(),
	}
}

// GetTab returns one tab.
func (s *TabService) GetTab(ctx context.Context, id uuid.UUID) (*tabs.Tab, error) {
	tab, err := s.registry.Get(id)
	if err != nil {
		return nil, apperror.NewNotFoundError("Tab")
	}
	return &tab, nil
}

// CreateOpenTab opens a walk-up tab.
func (s *TabService) CreateOpenTab(ctx context.Context, name string) *tabs.Tab {
	tab := s.registry.CreateOpenTab(name)
	return &tab
}

// RemoveTab discards a walk-up tab.
func (s *TabService) RemoveTab(ctx context.Context, id uuid.UUID) error {
	if err := s.registry.Remove(id); err != nil {
		if errors.Is(err, tabs.ErrTabNotFound) {
			return apperror.NewNotFoundError("Tab")
		}
		return apperror.NewBadRequestError(err.Error())
	}
	return nil
}

// ParkTab shelves a walk-up tab for later.
func (s *TabService) ParkTab(ctx context.Context, id uuid.UUID) error {
	if err := s.registry.Park(id); err != nil {
		if errors.Is(err, tabs.ErrTabNotFound) {
			return apperror.NewNotFoundError("Tab")
		}
		return apperror.NewBadRequestError(err.Error())
	}
	return nil
}

// ResumeTab brings a parked tab back.
func (s *TabService) ResumeTab(ctx context.Context, id uuid.UUID) error {
	if err := s.registry.Resume(id); err != nil {
		if errors.Is(err, tabs.ErrTabNotFound) {
			return apperror.NewNotFoundError("Tab")
		}
		return apperror.NewBadRequestError(err.Error())
	}
	return nil
}

// AddProduct puts a product on the tab, snapshotting its current price and
// cost. Supply-only items never reach a cart.
func (s *TabService) AddProduct(ctx context.Context, tabID, productID uuid.UUID, quantity int) (*tabs.Tab, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.IsSupply {
		return nil, apperror.NewBadRequestError("Supply items cannot be sold")
	}

	tab, err := s.registry.AddLine(tabID, tabs.Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.SellingPrice,
		UnitCost:  product.BuyingPrice,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, apperror.NewNotFoundError("Tab")
	}
	return &tab, nil
}

// ChangeQuantity nudges a line up or down; at zero the line is removed.
func (s *TabService) ChangeQuantity(ctx context.Context, tabID, productID uuid.UUID, delta int) (*tabs.Tab, error) {
	tab, err := s.registry.ChangeQuantity(tabID, productID, delta)
	if err != nil {
		return nil, apperror.NewNotFoundError("Tab")
	}
	return &tab, nil
}

// LinkCustomer attaches a customer to the tab; a nil ID detaches.
func (s *TabService) LinkCustomer(ctx context.Context, tabID uuid.UUID, customerID *uuid.UUID) (*tabs.Tab, error) {
	var ref *tabs.CustomerRef
	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		ref = &tabs.CustomerRef{
			ID:              customer.ID,
			Name:            customer.Name,
			DiscountPercent: customer.DiscountPercent,
		}
	}

	if err := s.registry.LinkCustomer(tabID, ref); err != nil {
		return nil, apperror.NewNotFoundError("Tab")
	}
	tab, err := s.registry.Get(tabID)
	if err != nil {
		return nil, apperror.NewNotFoundError("Tab")
	}
	return &tab, nil
}
