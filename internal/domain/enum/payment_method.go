package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod identifies how a sale or settlement was paid
type PaymentMethod int

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodCard     PaymentMethod = 1
	PaymentMethodTransfer PaymentMethod = 2
	PaymentMethodQR       PaymentMethod = 3
	PaymentMethodSplit    PaymentMethod = 4
)

func (m PaymentMethod) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return [...]string{"cash", "card", "transfer", "qr", "split"}[m]
}

// Valid reports whether the value is one of the known methods.
func (m PaymentMethod) Valid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodSplit
}

// ParsePaymentMethod maps a query-string value to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch s {
	case "cash":
		return PaymentMethodCash, true
	case "card":
		return PaymentMethodCard, true
	case "transfer":
		return PaymentMethodTransfer, true
	case "qr":
		return PaymentMethodQR, true
	case "split":
		return PaymentMethodSplit, true
	}
	return PaymentMethodCash, false
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "cash":
		*m = PaymentMethodCash
	case "card":
		*m = PaymentMethodCard
	case "transfer":
		*m = PaymentMethodTransfer
	case "qr":
		*m = PaymentMethodQR
	case "split":
		*m = PaymentMethodSplit
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
