package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Section is the sales area a product belongs to
type Section int

const (
	SectionRestaurant  Section = 0
	SectionAccessories Section = 1
)

func (s Section) String() string {
	if s < SectionRestaurant || s > SectionAccessories {
		return "unknown"
	}
	return [...]string{"restaurant", "accessories"}[s]
}

// ParseSection maps a query-string value to a Section.
func ParseSection(s string) (Section, bool) {
	switch s {
	case "restaurant":
		return SectionRestaurant, true
	case "accessories":
		return SectionAccessories, true
	}
	return SectionRestaurant, false
}

func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = Section(i)
		return nil
	}
	switch str {
	case "restaurant":
		*s = SectionRestaurant
	case "accessories":
		*s = SectionAccessories
	}
	return nil
}

func (s Section) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *Section) Scan(value interface{}) error {
	if value == nil {
		*s = SectionRestaurant
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = Section(v)
	case int:
		*s = Section(v)
	}
	return nil
}
