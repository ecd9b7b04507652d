package services

import (
	"errors"
	"fmt"
	"log/slog"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	ErrLeadCustomerGone  = errors.New("lead references a missing customer")
)

// LeadService handles lead business logic
type LeadService struct {
	leadRepo     repositories.LeadRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repositories.LeadRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LeadServiceInterface {
	return &LeadService{
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListLeads returns leads matching the filter, newest first. A status of
// "All" is normalized to no filter before it reaches the repository.
func (s *LeadService) ListLeads(filter repositories.LeadFilter) ([]models.Lead, error) {
	if filter.Status == models.LeadStatusFilterAll {
		filter.Status = ""
	}

	if filter.Status != "" && !models.IsValidLeadStatus(filter.Status) {
		return nil, ErrInvalidLeadStatus
	}

	leads, err := s.leadRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// GetLead retrieves a single lead by ID
func (s *LeadService) GetLead(id uuid.UUID) (*models.Lead, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrLeadNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// CreateLead creates a new lead attached to an existing customer
func (s *LeadService) CreateLead(req *dto.CreateLeadRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Lead, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}

	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrLeadCustomerGone
		}
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.LeadStatusNew
	}
	if !models.IsValidLeadStatus(status) {
		return nil, ErrInvalidLeadStatus
	}

	lead := &models.Lead{
		CustomerID:  customerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Value:       req.Value,
	}

	if err := s.leadRepo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.auditLead(models.AuditActionLeadCreated, lead.ID, performedBy, ipAddress, userAgent, map[string]interface{}{
		"customerId": customerID.String(),
		"status":     lead.Status,
	})
	s.countLeadEvent("lead_created", map[string]string{"status": lead.Status})

	return lead, nil
}

// UpdateLead applies a partial update and returns the updated lead
func (s *LeadService) UpdateLead(id uuid.UUID, req *dto.UpdateLeadRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Lead, error) {
	fields := map[string]interface{}{}

	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer ID: %w", err)
		}
		if _, err := s.customerRepo.GetByID(customerID); err != nil {
			if errors.Is(err, repositories.ErrCustomerNotFound) {
				return nil, ErrLeadCustomerGone
			}
			return nil, fmt.Errorf("failed to check customer: %w", err)
		}
		fields["customer_id"] = customerID
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		if !models.IsValidLeadStatus(*req.Status) {
			return nil, ErrInvalidLeadStatus
		}
		fields["status"] = *req.Status
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, errors.New("value cannot be negative")
		}
		fields["value"] = *req.Value
	}

	if len(fields) > 0 {
		if err := s.leadRepo.UpdateFields(id, fields); err != nil {
			if errors.Is(err, repositories.ErrLeadNotFound) {
				return nil, ErrLeadNotFound
			}
			return nil, fmt.Errorf("failed to update lead: %w", err)
		}
	}

	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	s.auditLead(models.AuditActionLeadUpdated, id, performedBy, ipAddress, userAgent, nil)
	s.countLeadEvent("lead_updated", map[string]string{"status": lead.Status})

	return lead, nil
}

// DeleteLead removes a lead
func (s *LeadService) DeleteLead(id uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string) error {
	if err := s.leadRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrLeadNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	s.auditLead(models.AuditActionLeadDeleted, id, performedBy, ipAddress, userAgent, nil)
	s.countLeadEvent("lead_deleted", nil)

	return nil
}

func (s *LeadService) auditLead(action string, leadID uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string, metadata map[string]interface{}) {
	if err := s.auditService.LogLeadEvent(action, leadID, performedBy, ipAddress, userAgent, metadata); err != nil {
		s.logger.Warn("failed to audit lead event", "error", err, "action", action)
	}
}

func (s *LeadService) countLeadEvent(name string, tags map[string]string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, tags)
}
