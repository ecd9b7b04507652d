package dto

import "crm-assessment/internal/models"

// ListCustomersRequest represents the customer list query parameters
type ListCustomersRequest struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"omitempty,max=255"`
}

// CustomerListResponse is a page of customers plus pagination metadata.
// Pagination is computed over the filtered set, not the full table.
type CustomerListResponse struct {
	Data       []models.Customer `json:"data"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Company   string `json:"company" validate:"omitempty,min=2,max=255"`
}

// UpdateCustomerRequest represents a partial customer update. Nil fields are
// left untouched.
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Company   *string `json:"company" validate:"omitempty,min=2,max=255"`
}
