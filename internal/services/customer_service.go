package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errors.New("customer not found")

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// CustomerService handles customer business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	leadRepo     repositories.LeadRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	leadRepo repositories.LeadRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		leadRepo:     leadRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListCustomers returns a page of customers. The search term matches
// case-insensitively as a substring of first name, last name, email or
// company. Total and totalPages describe the filtered set.
func (s *CustomerService) ListCustomers(req *dto.ListCustomersRequest) (*dto.CustomerListResponse, error) {
	page := req.Page
	if page < 1 {
		page = DefaultPage
	}

	limit := req.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := (page - 1) * limit

	customers, total, err := s.customerRepo.List(repositories.CustomerFilter{Search: req.Search}, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &dto.CustomerListResponse{
		Data:       customers,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// GetCustomer retrieves a single customer by ID
func (s *CustomerService) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(req *dto.CreateCustomerRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Customer, error) {
	customer := &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.auditCustomer(models.AuditActionCustomerCreated, customer.ID, performedBy, ipAddress, userAgent, nil)
	s.countCustomerEvent("customer_created", nil)

	return customer, nil
}

// UpdateCustomer applies a partial update and returns the updated customer
func (s *CustomerService) UpdateCustomer(id uuid.UUID, req *dto.UpdateCustomerRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Customer, error) {
	fields := map[string]interface{}{}
	changed := []string{}

	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
		changed = append(changed, "firstName")
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
		changed = append(changed, "lastName")
	}
	if req.Email != nil {
		fields["email"] = *req.Email
		changed = append(changed, "email")
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
		changed = append(changed, "phone")
	}
	if req.Company != nil {
		fields["company"] = *req.Company
		changed = append(changed, "company")
	}

	if len(fields) > 0 {
		if err := s.customerRepo.UpdateFields(id, fields); err != nil {
			if errors.Is(err, repositories.ErrCustomerNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
	}

	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	s.auditCustomer(models.AuditActionCustomerUpdated, id, performedBy, ipAddress, userAgent, map[string]interface{}{
		"fields": changed,
	})
	for _, field := range changed {
		s.countCustomerEvent("customer_updated", map[string]string{"field": field})
	}

	return customer, nil
}

// DeleteCustomer removes a customer along with their leads
func (s *CustomerService) DeleteCustomer(id uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	// Leads hang off customers; orphans would never show up in any view
	leads, err := s.leadRepo.List(repositories.LeadFilter{CustomerID: &id})
	if err != nil {
		s.logger.Warn("failed to list leads for deleted customer", "error", err, "customer_id", id)
	} else {
		for _, lead := range leads {
			if err := s.leadRepo.Delete(lead.ID); err != nil {
				s.logger.Warn("failed to delete orphaned lead", "error", err, "lead_id", lead.ID)
			}
		}
	}

	s.auditCustomer(models.AuditActionCustomerDeleted, id, performedBy, ipAddress, userAgent, nil)
	s.countCustomerEvent("customer_deleted", nil)

	return nil
}

func (s *CustomerService) auditCustomer(action string, customerID uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string, metadata map[string]interface{}) {
	if err := s.auditService.LogCustomerEvent(action, customerID, performedBy, ipAddress, userAgent, metadata); err != nil {
		s.logger.Warn("failed to audit customer event", "error", err, "action", action)
	}
}

func (s *CustomerService) countCustomerEvent(name string, tags map[string]string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, tags)
}

// TotalPages computes the page count for a total row count and page size.
// Zero rows means zero pages.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
