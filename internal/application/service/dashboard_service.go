package service

import (
	"context"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/cancha-central/pos-api/internal/tabs"
)

// DashboardService provides the back-office overview screen
type DashboardService struct {
	orderRepo    repository.PaidOrderRepository
	ledgerRepo   repository.LedgerRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	registry     *tabs.Registry
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.PaidOrderRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	registry *tabs.Registry,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		ledgerRepo:   ledgerRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		registry:     registry,
	}
}

// DashboardStats represents the overview numbers
type DashboardStats struct {
	TodayRevenue   float64           `json:"today_revenue"`
	TodayExpenses  float64           `json:"today_expenses"`
	TodayOrders    int               `json:"today_orders"`
	OpenTabs       int               `json:"open_tabs"`
	LowStockCount  int               `json:"low_stock_count"`
	DailySalesData []DailySalesPoint `json:"daily_sales_data"`
	TopConsumers   []entity.Customer `json:"top_consumers"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Margin  float64 `json:"margin"`
}

// GetDashboardStats returns the overview for the last 7 days
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := startOfToday.AddDate(0, 0, -6)

	orders, err := s.orderRepo.ListForReport(ctx, &weekAgo, nil)
	if err != nil {
		return nil, err
	}

	incomes, err := s.ledgerRepo.ListForReport(ctx, enum.LedgerKindIncome, &weekAgo, nil)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ledgerRepo.ListForReport(ctx, enum.LedgerKindExpense, &startOfToday, nil)
	if err != nil {
		return nil, err
	}

	var todayRevenue, todayExpenses int64
	for _, o := range orders {
		if !o.PaidAt.Before(startOfToday) {
			todayRevenue += o.Total
			stats.TodayOrders++
		}
	}
	for _, e := range incomes {
		if !e.EntryDate.Before(startOfToday) {
			todayRevenue += e.Amount
		}
	}
	for _, e := range expenses {
		todayExpenses += e.Amount
	}
	stats.TodayRevenue = float64(todayRevenue) / 100
	stats.TodayExpenses = float64(todayExpenses) / 100

	for _, t := range s.registry.Courts() {
		if len(t.Lines) > 0 {
			stats.OpenTabs++
		}
	}
	stats.OpenTabs += len(s.registry.OpenTabs()) + len(s.registry.ParkedTabs())

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)

	stats.DailySalesData = make([]DailySalesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := startOfToday.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var revenue, margin int64
		for _, o := range orders {
			if !o.PaidAt.Before(dayStart) && o.PaidAt.Before(dayEnd) {
				revenue += o.Total
				margin += o.Total - o.LineCost()
			}
		}
		for _, e := range incomes {
			if !e.EntryDate.Before(dayStart) && e.EntryDate.Before(dayEnd) {
				revenue += e.Amount
				margin += e.Amount
			}
		}

		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:    dayStart.Format("Jan 02"),
			Revenue: float64(revenue) / 100,
			Margin:  float64(margin) / 100,
		})
	}

	top, err := s.customerRepo.TopBySpend(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopConsumers = top

	return stats, nil
}
