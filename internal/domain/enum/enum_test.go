package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_KnownValues(t *testing.T) {
	assert.Equal(t, "cash", PaymentMethodCash.String())
	assert.Equal(t, "split", PaymentMethodSplit.String())
	assert.Equal(t, "income", LedgerKindIncome.String())
	assert.Equal(t, "accessory", SaleChannelAccessory.String())
	assert.Equal(t, "accessories", SectionAccessories.String())
	assert.Equal(t, "expense", TransactionTypeExpense.String())
	assert.Equal(t, "admin", UserRoleAdmin.String())
}

func TestString_OutOfRangeDoesNotPanic(t *testing.T) {
	assert.Equal(t, "unknown", PaymentMethod(99).String())
	assert.Equal(t, "unknown", PaymentMethod(-1).String())
	assert.Equal(t, "unknown", LedgerKind(7).String())
	assert.Equal(t, "unknown", SaleChannel(7).String())
	assert.Equal(t, "unknown", Section(7).String())
	assert.Equal(t, "unknown", TransactionType(7).String())
	assert.Equal(t, "unknown", UserRole(7).String())
}
