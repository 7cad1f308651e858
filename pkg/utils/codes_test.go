package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Cerveza Brava", "CB"},
		{"agua", "A"},
		{"Kit Padel Pro", "KPP"},
		{"7up", "7"},
		{"", "P"},
		{"   ", "P"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.name), "Initials(%q)", tt.name)
	}
}

func TestFormatProductCode(t *testing.T) {
	assert.Equal(t, "CB-007", FormatProductCode("Cerveza Brava", 7))
	assert.Equal(t, "A-120", FormatProductCode("Agua", 120))
}

func TestFormatCustomerCode(t *testing.T) {
	assert.Equal(t, "0042", FormatCustomerCode(42))
	assert.Equal(t, "10000", FormatCustomerCode(10000))
}

func TestFormatReceiptNo(t *testing.T) {
	assert.Equal(t, "REC-000123", FormatReceiptNo(123))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "bebidas-sin-alcohol", Slugify("Bebidas Sin Alcohol"))
	assert.Equal(t, "snacks", Slugify("  Snacks!  "))
}
