package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/tabs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCashier() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		FirstName: "Ana",
		LastName:  "Lopez",
		Role:      enum.UserRoleCashier,
		Active:    true,
	}
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name       string
		method     enum.PaymentMethod
		total      int64
		input      PaymentInput
		wantErr    bool
		wantChange int64
		wantCash   int64
	}{
		{
			name:       "cash with change",
			method:     enum.PaymentMethodCash,
			total:      4500,
			input:      PaymentInput{CashAmount: 50},
			wantChange: 500,
			wantCash:   5000,
		},
		{
			name:    "cash short",
			method:  enum.PaymentMethodCash,
			total:   4500,
			input:   PaymentInput{CashAmount: 40},
			wantErr: true,
		},
		{
			name:   "card captures exact total",
			method: enum.PaymentMethodCard,
			total:  4500,
		},
		{
			name:   "transfer has no breakdown",
			method: enum.PaymentMethodTransfer,
			total:  4500,
		},
		{
			name:       "split covers total",
			method:     enum.PaymentMethodSplit,
			total:      4500,
			input:      PaymentInput{CashAmount: 20, CardAmount: 20, QRAmount: 10},
			wantChange: 500,
			wantCash:   2000,
		},
		{
			name:    "split short",
			method:  enum.PaymentMethodSplit,
			total:   4500,
			input:   PaymentInput{CashAmount: 10, CardAmount: 10},
			wantErr: true,
		},
		{
			name:    "unknown method",
			method:  enum.PaymentMethod(99),
			total:   4500,
			wantErr: true,
		},
		{
			name:       "exact cash tender 1.15",
			method:     enum.PaymentMethodCash,
			total:      115,
			input:      PaymentInput{CashAmount: 1.15},
			wantChange: 0,
			wantCash:   115,
		},
		{
			name:       "exact cash tender 0.29",
			method:     enum.PaymentMethodCash,
			total:      29,
			input:      PaymentInput{CashAmount: 0.29},
			wantChange: 0,
			wantCash:   29,
		},
		{
			name:       "exact split tender with decimals",
			method:     enum.PaymentMethodSplit,
			total:      1015,
			input:      PaymentInput{CashAmount: 5.05, CardAmount: 5.10},
			wantChange: 0,
			wantCash:   505,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validatePayment(tt.method, tt.total, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChange, got.change)
			assert.Equal(t, tt.wantCash, got.cash)
		})
	}
}

func TestDiscountedTotal(t *testing.T) {
	assert.Equal(t, int64(10000), discountedTotal(10000, 0))
	assert.Equal(t, int64(9000), discountedTotal(10000, 10))
	assert.Equal(t, int64(0), discountedTotal(10000, 100))
	assert.Equal(t, int64(0), discountedTotal(10000, 150))
	assert.Equal(t, int64(10000), discountedTotal(10000, -5))
}

func settlementFixture(t *testing.T) (*SettlementService, *tabs.Registry, *fakeProductRepo, *fakeOrderRepo, *fakeCustomerRepo, *fakeAuditRepo) {
	t.Helper()
	registry := tabs.NewRegistry([]string{"Cancha 1"})
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	customerRepo := newFakeCustomerRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewSettlementService(registry, orderRepo, productRepo, customerRepo, newFakeCounterRepo(), NewAuditService(auditRepo))
	return svc, registry, productRepo, orderRepo, customerRepo, auditRepo
}

func TestSettleTab_CashWithChange(t *testing.T) {
	svc, registry, productRepo, orderRepo, _, _ := settlementFixture(t)

	soda := &entity.Product{ID: uuid.New(), Name: "Soda", Code: "S-001", SellingPrice: 1000, BuyingPrice: 400, Quantity: 10}
	burger := &entity.Product{ID: uuid.New(), Name: "Burger", Code: "B-001", SellingPrice: 2500, BuyingPrice: 1200, Quantity: 5}
	require.NoError(t, productRepo.Create(context.Background(), soda))
	require.NoError(t, productRepo.Create(context.Background(), burger))

	court := registry.Courts()[0]
	_, err := registry.AddLine(court.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, UnitCost: 400, Quantity: 2})
	require.NoError(t, err)
	_, err = registry.AddLine(court.ID, tabs.Line{ProductID: burger.ID, Name: burger.Name, UnitPrice: 2500, UnitCost: 1200, Quantity: 1})
	require.NoError(t, err)

	order, err := svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   court.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 50},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4500), order.Total)
	assert.Equal(t, int64(5000), order.CashAmount)
	assert.Equal(t, int64(500), order.Change)
	assert.Equal(t, "REC-000001", order.ReceiptNo)
	assert.Equal(t, enum.SaleChannelTab, order.Channel)
	assert.Equal(t, "Cancha 1", order.TabName)
	assert.Equal(t, "Walk-in", order.CustomerName)
	assert.Equal(t, 3, order.TotalProducts)
	require.Len(t, orderRepo.orders, 1)

	// stock taken
	assert.Equal(t, 8, productRepo.products[soda.ID].Quantity)
	assert.Equal(t, 4, productRepo.products[burger.ID].Quantity)

	// court tab is wiped, not removed
	cleared, err := registry.Get(court.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Lines)
}

func TestSettleTab_CustomerDiscountAndLifetimeSpend(t *testing.T) {
	svc, registry, productRepo, _, customerRepo, _ := settlementFixture(t)

	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), soda))
	customer := &entity.Customer{ID: uuid.New(), Code: "0001", Name: "Maria", DiscountPercent: 10}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	court := registry.Courts()[0]
	_, err := registry.AddLine(court.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, Quantity: 10})
	require.NoError(t, err)
	require.NoError(t, registry.LinkCustomer(court.ID, &tabs.CustomerRef{ID: customer.ID, Name: customer.Name, DiscountPercent: customer.DiscountPercent}))

	order, err := svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   court.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodCard},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), order.SubTotal)
	assert.Equal(t, 10, order.DiscountPercent)
	assert.Equal(t, int64(9000), order.Total)
	assert.Equal(t, "Maria", order.CustomerName)
	assert.Equal(t, int64(9000), customerRepo.customers[customer.ID].LifetimeSpend)
}

func TestSettleTab_EmptyTabRejected(t *testing.T) {
	svc, registry, _, _, _, _ := settlementFixture(t)
	court := registry.Courts()[0]

	_, err := svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   court.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 10},
	})
	assert.Error(t, err)
}

func TestSettleTab_InsufficientStockNamesProducts(t *testing.T) {
	svc, registry, productRepo, orderRepo, _, _ := settlementFixture(t)

	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, Quantity: 1}
	require.NoError(t, productRepo.Create(context.Background(), soda))

	court := registry.Courts()[0]
	_, err := registry.AddLine(court.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, Quantity: 3})
	require.NoError(t, err)

	_, err = svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   court.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 100},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Soda")

	// nothing persisted, stock untouched, tab still live
	assert.Empty(t, orderRepo.orders)
	assert.Equal(t, 1, productRepo.products[soda.ID].Quantity)
	live, _ := registry.Get(court.ID)
	assert.Len(t, live.Lines, 1)
}

func TestSettleTab_KitConsumesComponentStock(t *testing.T) {
	svc, registry, productRepo, _, _, _ := settlementFixture(t)

	ball := &entity.Product{ID: uuid.New(), Name: "Pelota", Quantity: 10}
	grip := &entity.Product{ID: uuid.New(), Name: "Grip", Quantity: 10}
	kit := &entity.Product{
		ID: uuid.New(), Name: "Kit Padel", SellingPrice: 5000, IsKit: true,
		Components: []entity.KitComponent{
			{ComponentID: ball.ID, Quantity: 2, Component: ball},
			{ComponentID: grip.ID, Quantity: 1, Component: grip},
		},
	}
	require.NoError(t, productRepo.Create(context.Background(), ball))
	require.NoError(t, productRepo.Create(context.Background(), grip))
	require.NoError(t, productRepo.Create(context.Background(), kit))

	court := registry.Courts()[0]
	_, err := registry.AddLine(court.ID, tabs.Line{ProductID: kit.ID, Name: kit.Name, UnitPrice: 5000, Quantity: 2})
	require.NoError(t, err)

	_, err = svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   court.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodQR},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, productRepo.products[ball.ID].Quantity)
	assert.Equal(t, 8, productRepo.products[grip.ID].Quantity)
	// the kit itself carries no stock of its own
	assert.Equal(t, 0, productRepo.products[kit.ID].Quantity)
}

func TestSettleTab_CompensatesStockWhenOrderInsertFails(t *testing.T) {
	svc, registry, productRepo, orderRepo, _, _ := settlementFixture(t)
	orderRepo.createErr = errors.New("db down")

	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, Quantity: 5}
	require.NoError(t, productRepo.Create(context.Background(), soda))

	court := registry.Courts()[0]
	_, err := registry.AddLine(court.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)

	_, err = svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   court.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 20},
	})
	require.Error(t, err)
	assert.Equal(t, 5, productRepo.products[soda.ID].Quantity)
}

func TestSettleTab_WalkUpTabRemovedAfterSettle(t *testing.T) {
	svc, registry, productRepo, _, _, _ := settlementFixture(t)

	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, Quantity: 5}
	require.NoError(t, productRepo.Create(context.Background(), soda))

	open := registry.CreateOpenTab("Mesa 2")
	_, err := registry.AddLine(open.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.SettleTab(context.Background(), &SettleTabInput{
		TabID:   open.ID,
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodTransfer},
	})
	require.NoError(t, err)

	_, err = registry.Get(open.ID)
	assert.ErrorIs(t, err, tabs.ErrTabNotFound)
}

func TestSellAccessories(t *testing.T) {
	svc, _, productRepo, orderRepo, _, auditRepo := settlementFixture(t)

	paddle := &entity.Product{ID: uuid.New(), Name: "Paleta", Section: enum.SectionAccessories, SellingPrice: 15000, BuyingPrice: 9000, Quantity: 3}
	require.NoError(t, productRepo.Create(context.Background(), paddle))

	order, err := svc.SellAccessories(context.Background(), &AccessorySaleInput{
		Cashier:   testCashier(),
		CourtName: "Cancha 2",
		Items:     []SaleItemInput{{ProductID: paddle.ID, Quantity: 1}},
		Payment:   PaymentInput{Method: enum.PaymentMethodCard},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.SaleChannelAccessory, order.Channel)
	assert.Equal(t, "Cancha 2", order.TabName)
	assert.Equal(t, int64(15000), order.Total)
	assert.Equal(t, 2, productRepo.products[paddle.ID].Quantity)
	require.Len(t, orderRepo.orders, 1)
	assert.Contains(t, auditRepo.actions(), "accessory_sale")
}

func TestSellAccessories_UnknownProduct(t *testing.T) {
	svc, _, _, _, _, _ := settlementFixture(t)

	_, err := svc.SellAccessories(context.Background(), &AccessorySaleInput{
		Cashier: testCashier(),
		Items:   []SaleItemInput{{ProductID: uuid.New(), Quantity: 1}},
		Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 100},
	})
	assert.Error(t, err)
}

func TestSellAccessories_NoItems(t *testing.T) {
	svc, _, _, _, _, _ := settlementFixture(t)

	_, err := svc.SellAccessories(context.Background(), &AccessorySaleInput{
		Cashier: testCashier(),
		Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 100},
	})
	assert.Error(t, err)
}

func TestSettleTab_ReceiptNumbersAreSequential(t *testing.T) {
	svc, registry, productRepo, _, _, _ := settlementFixture(t)

	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), soda))

	for i, want := range []string{"REC-000001", "REC-000002"} {
		open := registry.CreateOpenTab("")
		_, err := registry.AddLine(open.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, Quantity: 1})
		require.NoError(t, err)

		order, err := svc.SettleTab(context.Background(), &SettleTabInput{
			TabID:   open.ID,
			Cashier: testCashier(),
			Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 10},
		})
		require.NoError(t, err, "sale %d", i)
		assert.Equal(t, want, order.ReceiptNo)
	}
}

func TestSettleTab_ConcurrentSettlementsNeverOversell(t *testing.T) {
	svc, registry, productRepo, orderRepo, _, _ := settlementFixture(t)

	const tabCount = 16
	const stock = 5
	soda := &entity.Product{ID: uuid.New(), Name: "Soda", SellingPrice: 1000, Quantity: stock}
	require.NoError(t, productRepo.Create(context.Background(), soda))

	tabIDs := make([]uuid.UUID, tabCount)
	for i := range tabIDs {
		open := registry.CreateOpenTab("")
		_, err := registry.AddLine(open.ID, tabs.Line{ProductID: soda.ID, Name: soda.Name, UnitPrice: 1000, Quantity: 1})
		require.NoError(t, err)
		tabIDs[i] = open.ID
	}

	errs := make([]error, tabCount)
	var wg sync.WaitGroup
	for i, tabID := range tabIDs {
		wg.Add(1)
		go func(i int, tabID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = svc.SettleTab(context.Background(), &SettleTabInput{
				TabID:   tabID,
				Cashier: testCashier(),
				Payment: PaymentInput{Method: enum.PaymentMethodCash, CashAmount: 10},
			})
		}(i, tabID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, stock, succeeded)
	assert.Equal(t, 0, productRepo.products[soda.ID].Quantity)
	require.Len(t, orderRepo.orders, stock)
	for _, order := range orderRepo.orders {
		assert.Equal(t, int64(1000), order.Total)
	}
}
