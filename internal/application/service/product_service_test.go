package service

import (
	"context"
	"testing"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productFixture(t *testing.T) (*ProductService, *fakeProductRepo, *fakeAuditRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewProductService(productRepo, nil, newFakeCounterRepo(), NewAuditService(auditRepo))
	return svc, productRepo, auditRepo
}

func TestCreateProduct_MintsDisplayCode(t *testing.T) {
	svc, _, auditRepo := productFixture(t)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		User:         testCashier(),
		Name:         "Cerveza Brava",
		Section:      enum.SectionRestaurant,
		Quantity:     24,
		BuyingPrice:  8.50,
		SellingPrice: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, "CB-001", product.Code)
	assert.Equal(t, int64(850), product.BuyingPrice)
	assert.Equal(t, int64(1500), product.SellingPrice)
	assert.Contains(t, auditRepo.actions(), "product.create")

	second, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		User: testCashier(), Name: "Agua",
	})
	require.NoError(t, err)
	assert.Equal(t, "A-002", second.Code)
}

func TestCreateProduct_EmptyName(t *testing.T) {
	svc, _, _ := productFixture(t)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		User: testCashier(), Name: "   ",
	})
	assert.Error(t, err)
}

func TestCreateKit_PricesFromComponents(t *testing.T) {
	svc, productRepo, _ := productFixture(t)

	ball := &entity.Product{ID: uuid.New(), Name: "Pelota", BuyingPrice: 2000, Quantity: 20}
	grip := &entity.Product{ID: uuid.New(), Name: "Grip", BuyingPrice: 1000, Quantity: 20}
	require.NoError(t, productRepo.Create(context.Background(), ball))
	require.NoError(t, productRepo.Create(context.Background(), grip))

	kit, err := svc.CreateKit(context.Background(), &CreateKitInput{
		User:          testCashier(),
		Name:          "Kit Padel",
		Section:       enum.SectionAccessories,
		ProfitPercent: 50,
		Components: []KitComponentInput{
			{ProductID: ball.ID, Quantity: 2},
			{ProductID: grip.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, kit.IsKit)
	// cost 2*2000 + 1*1000 = 5000; marked up 50%
	assert.Equal(t, int64(5000), kit.BuyingPrice)
	assert.Equal(t, int64(7500), kit.SellingPrice)
	assert.Equal(t, 0, kit.Quantity)
	require.Len(t, kit.Components, 2)
}

func TestCreateKit_RejectsNestedKits(t *testing.T) {
	svc, productRepo, _ := productFixture(t)

	inner := &entity.Product{ID: uuid.New(), Name: "Inner", IsKit: true}
	require.NoError(t, productRepo.Create(context.Background(), inner))

	_, err := svc.CreateKit(context.Background(), &CreateKitInput{
		User: testCashier(), Name: "Outer",
		Components: []KitComponentInput{{ProductID: inner.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestCreateKit_RejectsMissingComponent(t *testing.T) {
	svc, _, _ := productFixture(t)

	_, err := svc.CreateKit(context.Background(), &CreateKitInput{
		User: testCashier(), Name: "Kit",
		Components: []KitComponentInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestKitAvailability(t *testing.T) {
	ball := &entity.Product{ID: uuid.New(), Quantity: 7}
	grip := &entity.Product{ID: uuid.New(), Quantity: 5}
	kit := &entity.Product{
		IsKit: true,
		Components: []entity.KitComponent{
			{ComponentID: ball.ID, Quantity: 2, Component: ball},
			{ComponentID: grip.ID, Quantity: 1, Component: grip},
		},
	}

	// scarcest component floors the count: 7/2=3, 5/1=5
	assert.Equal(t, 3, KitAvailability(kit))

	grip.Quantity = 2
	assert.Equal(t, 2, KitAvailability(kit))

	assert.Equal(t, 0, KitAvailability(&entity.Product{IsKit: true}))
	assert.Equal(t, 0, KitAvailability(&entity.Product{}))
}

func TestAddStock(t *testing.T) {
	svc, productRepo, _ := productFixture(t)
	soda := &entity.Product{ID: uuid.New(), Name: "Soda", Quantity: 2}
	require.NoError(t, productRepo.Create(context.Background(), soda))

	got, err := svc.AddStock(context.Background(), testCashier(), soda.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)

	_, err = svc.AddStock(context.Background(), testCashier(), soda.ID, 0)
	assert.Error(t, err)
}

func TestAddStock_KitRejected(t *testing.T) {
	svc, productRepo, _ := productFixture(t)
	kit := &entity.Product{ID: uuid.New(), Name: "Kit", IsKit: true}
	require.NoError(t, productRepo.Create(context.Background(), kit))

	_, err := svc.AddStock(context.Background(), testCashier(), kit.ID, 5)
	assert.Error(t, err)
}

func TestGetInventoryValuation_SkipsKits(t *testing.T) {
	svc, productRepo, _ := productFixture(t)
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID: uuid.New(), Name: "Soda", Code: "S-001", Quantity: 10, BuyingPrice: 400, SellingPrice: 1000,
	}))
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID: uuid.New(), Name: "Kit", Code: "K-001", IsKit: true, BuyingPrice: 5000, SellingPrice: 7500,
	}))

	valuation, err := svc.GetInventoryValuation(context.Background())
	require.NoError(t, err)

	require.Len(t, valuation.Rows, 1)
	assert.Equal(t, 40.0, valuation.TotalCostValue)
	assert.Equal(t, 100.0, valuation.TotalSaleValue)
	assert.Equal(t, 60.0, valuation.PotentialProfit)
}
