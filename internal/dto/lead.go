package dto

import "github.com/shopspring/decimal"

// ListLeadsRequest represents the lead list query parameters. Both filters are
// optional; status "All" (or empty) means no status filter.
type ListLeadsRequest struct {
	CustomerID string `query:"customerId" validate:"omitempty,uuid4"`
	Status     string `query:"status" validate:"omitempty,lead_status_filter"`
}

// CreateLeadRequest represents the request to create a new lead
type CreateLeadRequest struct {
	CustomerID  string          `json:"customerId" validate:"required,uuid4"`
	Title       string          `json:"title" validate:"required,min=3,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Status      string          `json:"status" validate:"omitempty,lead_status"`
	Value       decimal.Decimal `json:"value" validate:"omitempty"`
}

// UpdateLeadRequest represents a partial lead update. Nil fields are left
// untouched.
type UpdateLeadRequest struct {
	CustomerID  *string          `json:"customerId" validate:"omitempty,uuid4"`
	Title       *string          `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Status      *string          `json:"status" validate:"omitempty,lead_status"`
	Value       *decimal.Decimal `json:"value" validate:"omitempty"`
}
