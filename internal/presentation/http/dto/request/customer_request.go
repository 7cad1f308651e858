package request

// CreateCustomerRequest represents a customer registration request
type CreateCustomerRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	NationalID      *string `json:"national_id"`
	Phone           *string `json:"phone"`
	Instagram       *string `json:"instagram"`
	Email           *string `json:"email" binding:"omitempty,email"`
	DiscountPercent int     `json:"discount_percent" binding:"min=0,max=100"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=2,max=255"`
	NationalID      *string `json:"national_id"`
	Phone           *string `json:"phone"`
	Instagram       *string `json:"instagram"`
	Email           *string `json:"email" binding:"omitempty,email"`
	DiscountPercent *int    `json:"discount_percent" binding:"omitempty,min=0,max=100"`
}
