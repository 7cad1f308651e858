package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType classifies a row in the consolidated report
type TransactionType int

const (
	TransactionTypeRental        TransactionType = 0
	TransactionTypeAccessorySale TransactionType = 1
	TransactionTypeTabOrder      TransactionType = 2
	TransactionTypeExpense       TransactionType = 3
)

func (t TransactionType) String() string {
	if t < TransactionTypeRental || t > TransactionTypeExpense {
		return "unknown"
	}
	return [...]string{"rental", "accessory_sale", "tab_order", "expense"}[t]
}

// ParseTransactionType maps a query-string value to a TransactionType.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch s {
	case "rental":
		return TransactionTypeRental, true
	case "accessory_sale":
		return TransactionTypeAccessorySale, true
	case "tab_order":
		return TransactionTypeTabOrder, true
	case "expense":
		return TransactionTypeExpense, true
	}
	return TransactionTypeRental, false
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	switch str {
	case "rental":
		*t = TransactionTypeRental
	case "accessory_sale":
		*t = TransactionTypeAccessorySale
	case "tab_order":
		*t = TransactionTypeTabOrder
	case "expense":
		*t = TransactionTypeExpense
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeRental
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}
