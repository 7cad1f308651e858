package service

import (
	"context"
	"testing"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/tabs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabFixture(t *testing.T) (*TabService, *tabs.Registry, *fakeProductRepo, *fakeCustomerRepo) {
	t.Helper()
	registry := tabs.NewRegistry([]string{"Cancha 1", "Cancha 2"})
	productRepo := newFakeProductRepo()
	customerRepo := newFakeCustomerRepo()
	return NewTabService(registry, productRepo, customerRepo), registry, productRepo, customerRepo
}

func TestGetBoard(t *testing.T) {
	svc, registry, _, _ := tabFixture(t)
	open := registry.CreateOpenTab("Mesa 1")
	parked := registry.CreateOpenTab("Mesa 2")
	require.NoError(t, registry.Park(parked.ID))

	board := svc.GetBoard(context.Background())
	assert.Len(t, board.Courts, 2)
	require.Len(t, board.OpenTabs, 1)
	assert.Equal(t, open.ID, board.OpenTabs[0].ID)
	require.Len(t, board.Parked, 1)
	assert.Equal(t, parked.ID, board.Parked[0].ID)
}

func TestAddProduct_SnapshotsPrice(t *testing.T) {
	svc, registry, productRepo, _ := tabFixture(t)
	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, BuyingPrice: 400, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), soda))
	court := registry.Courts()[0]

	tab, err := svc.AddProduct(context.Background(), court.ID, soda.ID, 2)
	require.NoError(t, err)
	require.Len(t, tab.Lines, 1)
	assert.Equal(t, int64(1000), tab.Lines[0].UnitPrice)
	assert.Equal(t, int64(400), tab.Lines[0].UnitCost)

	// a later price change does not touch the cart
	soda.SellingPrice = 2000
	got, err := svc.GetTab(context.Background(), court.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Lines[0].UnitPrice)
}

func TestAddProduct_SupplyRejected(t *testing.T) {
	svc, registry, productRepo, _ := tabFixture(t)
	ice := &entity.Product{ID: uuid.New(), Name: "Hielo", IsSupply: true, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), ice))

	_, err := svc.AddProduct(context.Background(), registry.Courts()[0].ID, ice.ID, 1)
	assert.Error(t, err)
}

func TestAddProduct_UnknownProduct(t *testing.T) {
	svc, registry, _, _ := tabFixture(t)

	_, err := svc.AddProduct(context.Background(), registry.Courts()[0].ID, uuid.New(), 1)
	assert.Error(t, err)
}

func TestLinkCustomer_ResolvesDiscount(t *testing.T) {
	svc, registry, _, customerRepo := tabFixture(t)
	customer := &entity.Customer{ID: uuid.New(), Code: "0001", Name: "Maria", DiscountPercent: 15}
	require.NoError(t, customerRepo.Create(context.Background(), customer))
	court := registry.Courts()[0]

	tab, err := svc.LinkCustomer(context.Background(), court.ID, &customer.ID)
	require.NoError(t, err)
	require.NotNil(t, tab.Customer)
	assert.Equal(t, 15, tab.Customer.DiscountPercent)

	// nil detaches
	tab, err = svc.LinkCustomer(context.Background(), court.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, tab.Customer)
}

func TestLinkCustomer_UnknownCustomer(t *testing.T) {
	svc, registry, _, _ := tabFixture(t)
	missing := uuid.New()

	_, err := svc.LinkCustomer(context.Background(), registry.Courts()[0].ID, &missing)
	assert.Error(t, err)
}

func TestRemoveTab_CourtRejected(t *testing.T) {
	svc, registry, _, _ := tabFixture(t)

	err := svc.RemoveTab(context.Background(), registry.Courts()[0].ID)
	assert.Error(t, err)
}
