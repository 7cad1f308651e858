package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserRole is the access level of a staff account
type UserRole int

const (
	UserRoleCashier UserRole = 0
	UserRoleAdmin   UserRole = 1
)

func (r UserRole) String() string {
	if r < UserRoleCashier || r > UserRoleAdmin {
		return "unknown"
	}
	return [...]string{"cashier", "admin"}[r]
}

// ParseUserRole maps a request value to a UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	switch s {
	case "cashier":
		return UserRoleCashier, true
	case "admin":
		return UserRoleAdmin, true
	}
	return UserRoleCashier, false
}

// Valid reports whether the value is one of the known roles.
func (r UserRole) Valid() bool {
	return r == UserRoleCashier || r == UserRoleAdmin
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = UserRole(i)
		return nil
	}
	switch str {
	case "cashier":
		*r = UserRoleCashier
	case "admin":
		*r = UserRoleAdmin
	}
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleCashier
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = UserRole(v)
	case int:
		*r = UserRole(v)
	}
	return nil
}
