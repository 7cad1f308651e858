package service

import (
	"context"
	"testing"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerFixture(t *testing.T) (*LedgerService, *fakeLedgerRepo, *fakeCustomerRepo, *fakeAuditRepo) {
	t.Helper()
	ledgerRepo := &fakeLedgerRepo{}
	customerRepo := newFakeCustomerRepo()
	auditRepo := &fakeAuditRepo{}
	return NewLedgerService(ledgerRepo, customerRepo, NewAuditService(auditRepo)), ledgerRepo, customerRepo, auditRepo
}

func TestRecordIncome(t *testing.T) {
	svc, ledgerRepo, _, auditRepo := ledgerFixture(t)
	court := "Cancha 2"

	entry, err := svc.RecordIncome(context.Background(), &RecordIncomeInput{
		User:          testCashier(),
		Concept:       "Alquiler 19hs",
		Category:      "Alquiler de cancha",
		Amount:        25000,
		PaymentMethod: enum.PaymentMethodCash,
		CourtName:     &court,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.LedgerKindIncome, entry.Kind)
	assert.Equal(t, int64(25000), entry.Amount)
	assert.Equal(t, "Ana Lopez", entry.RecordedBy)
	assert.False(t, entry.EntryDate.IsZero())
	require.Len(t, ledgerRepo.entries, 1)
	assert.Contains(t, auditRepo.actions(), "ledger.income")
}

func TestRecordIncome_KeepsGivenEntryDate(t *testing.T) {
	svc, _, _, _ := ledgerFixture(t)
	backdated := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	entry, err := svc.RecordIncome(context.Background(), &RecordIncomeInput{
		User:          testCashier(),
		Concept:       "Torneo relampago",
		Category:      "Torneo",
		Amount:        100000,
		PaymentMethod: enum.PaymentMethodTransfer,
		EntryDate:     backdated,
	})
	require.NoError(t, err)
	assert.Equal(t, backdated, entry.EntryDate)
}

func TestRecordIncome_Validation(t *testing.T) {
	svc, ledgerRepo, _, _ := ledgerFixture(t)

	tests := []struct {
		name  string
		input RecordIncomeInput
	}{
		{"empty concept", RecordIncomeInput{Concept: "  ", Category: "Otros", Amount: 100, PaymentMethod: enum.PaymentMethodCash}},
		{"unknown category", RecordIncomeInput{Concept: "x", Category: "Propinas", Amount: 100, PaymentMethod: enum.PaymentMethodCash}},
		{"zero amount", RecordIncomeInput{Concept: "x", Category: "Otros", Amount: 0, PaymentMethod: enum.PaymentMethodCash}},
		{"split not allowed", RecordIncomeInput{Concept: "x", Category: "Otros", Amount: 100, PaymentMethod: enum.PaymentMethodSplit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.User = testCashier()
			_, err := svc.RecordIncome(context.Background(), &tt.input)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, ledgerRepo.entries)
}

func TestRecordIncome_UnknownCustomerRejected(t *testing.T) {
	svc, _, _, _ := ledgerFixture(t)
	missing := uuid.New()

	_, err := svc.RecordIncome(context.Background(), &RecordIncomeInput{
		User:          testCashier(),
		Concept:       "Alquiler",
		Category:      "Alquiler de cancha",
		Amount:        100,
		PaymentMethod: enum.PaymentMethodCash,
		CustomerID:    &missing,
	})
	assert.Error(t, err)
}

func TestRecordIncome_LinkedCustomer(t *testing.T) {
	svc, _, customerRepo, _ := ledgerFixture(t)
	customer := &entity.Customer{ID: uuid.New(), Code: "0001", Name: "Maria"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	entry, err := svc.RecordIncome(context.Background(), &RecordIncomeInput{
		User:          testCashier(),
		Concept:       "Alquiler",
		Category:      "Alquiler de cancha",
		Amount:        20000,
		PaymentMethod: enum.PaymentMethodQR,
		CustomerID:    &customer.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.CustomerID)
	assert.Equal(t, customer.ID, *entry.CustomerID)

	// ledger income never touches lifetime spend, only settlement does
	assert.Equal(t, int64(0), customerRepo.customers[customer.ID].LifetimeSpend)
}

func TestRecordExpense(t *testing.T) {
	svc, ledgerRepo, _, auditRepo := ledgerFixture(t)
	receipt := "FAC-0044"

	entry, err := svc.RecordExpense(context.Background(), &RecordExpenseInput{
		User:          testCashier(),
		Concept:       "Hielo",
		Category:      "Mercaderia",
		Amount:        3000,
		PaymentMethod: enum.PaymentMethodCash,
		ReceiptNo:     &receipt,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.LedgerKindExpense, entry.Kind)
	// stored positive; reports negate
	assert.Equal(t, int64(3000), entry.Amount)
	require.NotNil(t, entry.ReceiptNo)
	assert.Equal(t, "FAC-0044", *entry.ReceiptNo)
	require.Len(t, ledgerRepo.entries, 1)
	assert.Contains(t, auditRepo.actions(), "ledger.expense")
}

func TestRecordExpense_UnknownCategory(t *testing.T) {
	svc, _, _, _ := ledgerFixture(t)

	_, err := svc.RecordExpense(context.Background(), &RecordExpenseInput{
		User:          testCashier(),
		Concept:       "Hielo",
		Category:      "Alquiler de cancha", // income category
		Amount:        3000,
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Error(t, err)
}

func TestCategories_ReturnCopies(t *testing.T) {
	svc, _, _, _ := ledgerFixture(t)

	income := svc.IncomeCategories()
	require.NotEmpty(t, income)
	assert.Contains(t, income, "Alquiler de cancha")
	income[0] = "mutated"
	assert.NotEqual(t, "mutated", svc.IncomeCategories()[0])

	expense := svc.ExpenseCategories()
	assert.Contains(t, expense, "Mercaderia")
}
