package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LedgerKind distinguishes money entering the register from money leaving it
type LedgerKind int

const (
	LedgerKindIncome  LedgerKind = 0
	LedgerKindExpense LedgerKind = 1
)

func (k LedgerKind) String() string {
	if k < LedgerKindIncome || k > LedgerKindExpense {
		return "unknown"
	}
	return [...]string{"income", "expense"}[k]
}

// ParseLedgerKind maps a query-string value to a LedgerKind.
func ParseLedgerKind(s string) (LedgerKind, bool) {
	switch s {
	case "income":
		return LedgerKindIncome, true
	case "expense":
		return LedgerKindExpense, true
	}
	return LedgerKindIncome, false
}

func (k LedgerKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *LedgerKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = LedgerKind(i)
		return nil
	}
	switch str {
	case "income":
		*k = LedgerKindIncome
	case "expense":
		*k = LedgerKindExpense
	}
	return nil
}

func (k LedgerKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *LedgerKind) Scan(value interface{}) error {
	if value == nil {
		*k = LedgerKindIncome
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = LedgerKind(v)
	case int:
		*k = LedgerKind(v)
	}
	return nil
}
