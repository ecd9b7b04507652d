package handlers

import (
	"net/http"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/errors"
	"crm-assessment/internal/repositories"
	"crm-assessment/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService services.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService services.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// List returns leads, optionally filtered by ?customerId and ?status.
// Status "All" (or omitted) means no status filter.
func (h *LeadHandler) List(c echo.Context) error {
	req := dto.ListLeadsRequest{
		CustomerID: c.QueryParam("customerId"),
		Status:     c.QueryParam("status"),
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	filter := repositories.LeadFilter{Status: req.Status}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return SendError(c, errors.CustomerInvalidID)
		}
		filter.CustomerID = &customerID
	}

	leads, err := h.leadService.ListLeads(filter)
	if err != nil {
		if err == services.ErrInvalidLeadStatus {
			return SendError(c, errors.LeadInvalidStatus)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: leads})
}

// Get returns a single lead by ID
func (h *LeadHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.LeadInvalidID)
	}

	lead, err := h.leadService.GetLead(id)
	if err != nil {
		if err == services.ErrLeadNotFound {
			return SendError(c, errors.LeadNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: lead})
}

// Create creates a new lead
func (h *LeadHandler) Create(c echo.Context) error {
	var req dto.CreateLeadRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Value.IsNegative() {
		return SendError(c, errors.LeadInvalidValue)
	}

	lead, err := h.leadService.CreateLead(&req, performedBy(c), getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch err {
		case services.ErrLeadCustomerGone:
			return SendError(c, errors.CustomerNotFound)
		case services.ErrInvalidLeadStatus:
			return SendError(c, errors.LeadInvalidStatus)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    lead,
		Message: "Lead created successfully",
	})
}

// Update applies a partial update to a lead
func (h *LeadHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.LeadInvalidID)
	}

	var req dto.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Value != nil && req.Value.IsNegative() {
		return SendError(c, errors.LeadInvalidValue)
	}

	lead, err := h.leadService.UpdateLead(id, &req, performedBy(c), getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch err {
		case services.ErrLeadNotFound:
			return SendError(c, errors.LeadNotFound)
		case services.ErrLeadCustomerGone:
			return SendError(c, errors.CustomerNotFound)
		case services.ErrInvalidLeadStatus:
			return SendError(c, errors.LeadInvalidStatus)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    lead,
		Message: "Lead updated successfully",
	})
}

// Delete removes a lead
func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.LeadInvalidID)
	}

	if err := h.leadService.DeleteLead(id, performedBy(c), getClientIP(c), c.Request().UserAgent()); err != nil {
		if err == services.ErrLeadNotFound {
			return SendError(c, errors.LeadNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Lead deleted successfully",
	})
}
