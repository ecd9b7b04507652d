// Package client is the domain state module consumed by app screens: entity
// stores with an explicit request lifecycle, a session store, and the remote
// service facade they all talk through. The facade is the sole boundary
// between store state and the persistence world.
package client

import (
	"errors"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
)

// Response is the uniform envelope every facade operation resolves with.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// RequestError is the failure shape of a facade operation. Reason is a
// human-readable display string; stores surface it verbatim as lastError.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string {
	return e.Reason
}

// NewRequestError wraps a display reason as a facade failure.
func NewRequestError(reason string) *RequestError {
	return &RequestError{Reason: reason}
}

// FailureReason extracts the display string from a facade error.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.Reason
	}
	return err.Error()
}

// RemoteService is the facade contract. Implementations persist the bearer
// token as a side effect of Login/Register and remove it on Logout; all other
// operations are side-effect-free beyond the entities they touch.
type RemoteService interface {
	Login(email, password string) (Response[*dto.AuthResponse], error)
	Register(req dto.RegisterRequest) (Response[*dto.AuthResponse], error)
	Logout() error

	ListCustomers(page, limit int, search string) (Response[*dto.CustomerListResponse], error)
	GetCustomer(id string) (Response[*models.Customer], error)
	CreateCustomer(req dto.CreateCustomerRequest) (Response[*models.Customer], error)
	UpdateCustomer(id string, req dto.UpdateCustomerRequest) (Response[*models.Customer], error)
	DeleteCustomer(id string) error

	ListLeads(customerID, status string) (Response[[]models.Lead], error)
	GetLead(id string) (Response[*models.Lead], error)
	CreateLead(req dto.CreateLeadRequest) (Response[*models.Lead], error)
	UpdateLead(id string, req dto.UpdateLeadRequest) (Response[*models.Lead], error)
	DeleteLead(id string) error

	GetDashboardStats() (Response[models.DashboardStats], error)
}

func succeed[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Message: message, Success: true}
}
