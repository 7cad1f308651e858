package service

import (
	"context"
	"testing"

	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerFixture(t *testing.T) (*CustomerService, *fakeCustomerRepo, *fakeAuditRepo) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewCustomerService(customerRepo, newFakeCounterRepo(), NewAuditService(auditRepo))
	return svc, customerRepo, auditRepo
}

func strPtr(s string) *string { return &s }

func TestCreateCustomer_MintsSequentialCode(t *testing.T) {
	svc, _, auditRepo := customerFixture(t)

	first, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		User: testCashier(), Name: "Maria Gomez", DiscountPercent: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "0001", first.Code)
	assert.Equal(t, int64(0), first.LifetimeSpend)
	assert.Contains(t, auditRepo.actions(), "customer.create")

	second, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		User: testCashier(), Name: "Juan Perez",
	})
	require.NoError(t, err)
	assert.Equal(t, "0002", second.Code)
}

func TestCreateCustomer_Validation(t *testing.T) {
	svc, _, _ := customerFixture(t)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		User: testCashier(), Name: "  ",
	})
	assert.Error(t, err)

	_, err = svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		User: testCashier(), Name: "Maria", Email: strPtr("not-an-email"),
	})
	assert.Error(t, err)

	_, err = svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		User: testCashier(), Name: "Maria", DiscountPercent: 150,
	})
	assert.Error(t, err)
}

func TestUpdateCustomer_CodeAndSpendImmutable(t *testing.T) {
	svc, customerRepo, _ := customerFixture(t)
	customer := &entity.Customer{ID: uuid.New(), Code: "0001", Name: "Maria", LifetimeSpend: 5000}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	discount := 20
	got, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		User:            testCashier(),
		CustomerID:      customer.ID,
		Name:            strPtr("Maria G."),
		DiscountPercent: &discount,
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria G.", got.Name)
	assert.Equal(t, 20, got.DiscountPercent)
	assert.Equal(t, "0001", got.Code)
	assert.Equal(t, int64(5000), got.LifetimeSpend)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	svc, _, _ := customerFixture(t)

	_, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		User: testCashier(), CustomerID: uuid.New(),
	})
	assert.Error(t, err)
}

func TestTopConsumers_ClampsLimit(t *testing.T) {
	svc, customerRepo, _ := customerFixture(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, customerRepo.Create(context.Background(), &entity.Customer{
			ID: uuid.New(), Code: uuid.NewString()[:4], Name: "C",
		}))
	}

	got, err := svc.TopConsumers(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// zero falls back to the default of ten
	got, err = svc.TopConsumers(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestDeleteCustomer(t *testing.T) {
	svc, customerRepo, auditRepo := customerFixture(t)
	customer := &entity.Customer{ID: uuid.New(), Code: "0001", Name: "Maria"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	require.NoError(t, svc.DeleteCustomer(context.Background(), testCashier(), customer.ID))
	assert.NotContains(t, customerRepo.customers, customer.ID)
	assert.Contains(t, auditRepo.actions(), "customer.delete")

	assert.Error(t, svc.DeleteCustomer(context.Background(), testCashier(), customer.ID))
}
