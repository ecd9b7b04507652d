package handlers

import (
	"net/http"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/errors"
	"crm-assessment/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService services.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List returns a page of customers. Supports ?page, ?limit and ?search; the
// search term matches first name, last name, email and company.
func (h *CustomerHandler) List(c echo.Context) error {
	req := dto.ListCustomersRequest{
		Page:   getIntParam(c, "page", services.DefaultPage),
		Limit:  getIntParam(c, "limit", services.DefaultLimit),
		Search: c.QueryParam("search"),
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.customerService.ListCustomers(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single customer by ID
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: customer})
}

// Create creates a new customer
func (h *CustomerHandler) Create(c echo.Context) error {
	var req dto.CreateCustomerRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	customer, err := h.customerService.CreateCustomer(&req, performedBy(c), getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    customer,
		Message: "Customer created successfully",
	})
}

// Update applies a partial update to a customer
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	var req dto.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	customer, err := h.customerService.UpdateCustomer(id, &req, performedBy(c), getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    customer,
		Message: "Customer updated successfully",
	})
}

// Delete removes a customer and their leads
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	if err := h.customerService.DeleteCustomer(id, performedBy(c), getClientIP(c), c.Request().UserAgent()); err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Customer deleted successfully",
	})
}
