package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleChannel records whether a paid order came from a settled tab or from a
// direct accessory sale at the counter
type SaleChannel int

const (
	SaleChannelTab       SaleChannel = 0
	SaleChannelAccessory SaleChannel = 1
)

func (c SaleChannel) String() string {
	if c < SaleChannelTab || c > SaleChannelAccessory {
		return "unknown"
	}
	return [...]string{"tab", "accessory"}[c]
}

// ParseSaleChannel maps a query-string value to a SaleChannel.
func ParseSaleChannel(s string) (SaleChannel, bool) {
	switch s {
	case "tab":
		return SaleChannelTab, true
	case "accessory":
		return SaleChannelAccessory, true
	}
	return SaleChannelTab, false
}

func (c SaleChannel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *SaleChannel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = SaleChannel(i)
		return nil
	}
	switch str {
	case "tab":
		*c = SaleChannelTab
	case "accessory":
		*c = SaleChannelAccessory
	}
	return nil
}

func (c SaleChannel) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *SaleChannel) Scan(value interface{}) error {
	if value == nil {
		*c = SaleChannelTab
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = SaleChannel(v)
	case int:
		*c = SaleChannel(v)
	}
	return nil
}
