package service

import (
	"context"
	"testing"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/tabs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	registry := tabs.NewRegistry([]string{"Cancha 1", "Cancha 2"})
	orderRepo := newFakeOrderRepo()
	ledgerRepo := &fakeLedgerRepo{}
	productRepo := newFakeProductRepo(
		&entity.Product{ID: uuid.New(), Name: "Soda", Quantity: 1, QuantityAlert: 5},
		&entity.Product{ID: uuid.New(), Name: "Burger", Quantity: 50, QuantityAlert: 5},
	)
	customerRepo := newFakeCustomerRepo(&entity.Customer{ID: uuid.New(), Code: "0001", Name: "Maria", LifetimeSpend: 9000})
	svc := NewDashboardService(orderRepo, ledgerRepo, productRepo, customerRepo, registry)

	now := time.Now()
	orderRepo.reportSets = []entity.PaidOrder{
		{Total: 4500, PaidAt: now, Lines: []entity.OrderLine{{Quantity: 1, UnitCost: 2000}}},
		{Total: 10000, PaidAt: now.AddDate(0, 0, -2)},
	}
	require.NoError(t, ledgerRepo.Create(context.Background(), &entity.LedgerEntry{
		Kind: enum.LedgerKindIncome, Concept: "Alquiler", Amount: 20000, EntryDate: now,
	}))
	require.NoError(t, ledgerRepo.Create(context.Background(), &entity.LedgerEntry{
		Kind: enum.LedgerKindExpense, Concept: "Hielo", Amount: 3000, EntryDate: now,
	}))

	// one court with a cart, one walk-up tab
	court := registry.Courts()[0]
	_, err := registry.AddLine(court.ID, tabs.Line{ProductID: uuid.New(), Name: "Soda", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)
	registry.CreateOpenTab("")

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 245.0, stats.TodayRevenue)
	assert.Equal(t, 30.0, stats.TodayExpenses)
	assert.Equal(t, 1, stats.TodayOrders)
	assert.Equal(t, 2, stats.OpenTabs)
	assert.Equal(t, 1, stats.LowStockCount)
	require.Len(t, stats.DailySalesData, 7)
	assert.Equal(t, 245.0, stats.DailySalesData[6].Revenue)
	assert.Equal(t, 100.0, stats.DailySalesData[4].Revenue)
	require.Len(t, stats.TopConsumers, 1)
}
