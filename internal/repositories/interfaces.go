package repositories

import (
	"time"

	"crm-assessment/internal/models"

	"github.com/google/uuid"
)

// CustomerFilter narrows the customer list. Search matches case-insensitively
// against first name, last name, email and company as a substring OR.
type CustomerFilter struct {
	Search string
}

// LeadFilter narrows the lead list. Nil/empty fields mean no filter.
type LeadFilter struct {
	CustomerID *uuid.UUID
	Status     string
}

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	List(filter CustomerFilter, offset, limit int) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	UpdateFields(customerID uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// LeadRepositoryInterface defines the contract for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	List(filter LeadFilter) ([]models.Lead, error)
	ListAll() ([]models.Lead, error)
	Update(lead *models.Lead) error
	UpdateFields(leadID uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	CountByStatus() (map[string]int, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
