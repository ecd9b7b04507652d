package services

import (
	"time"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
	GetUserByID(userID uuid.UUID) (*models.User, error)
	IsTokenBlacklisted(jti string) bool
}

// TokenServiceInterface defines the contract for JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	HashPasswordWithoutValidation(password string) (string, error)
}

// CustomerServiceInterface defines the contract for customer operations
type CustomerServiceInterface interface {
	ListCustomers(req *dto.ListCustomersRequest) (*dto.CustomerListResponse, error)
	GetCustomer(id uuid.UUID) (*models.Customer, error)
	CreateCustomer(req *dto.CreateCustomerRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Customer, error)
	UpdateCustomer(id uuid.UUID, req *dto.UpdateCustomerRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Customer, error)
	DeleteCustomer(id uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string) error
}

// LeadServiceInterface defines the contract for lead operations
type LeadServiceInterface interface {
	ListLeads(filter repositories.LeadFilter) ([]models.Lead, error)
	GetLead(id uuid.UUID) (*models.Lead, error)
	CreateLead(req *dto.CreateLeadRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Lead, error)
	UpdateLead(id uuid.UUID, req *dto.UpdateLeadRequest, performedBy *uuid.UUID, ipAddress, userAgent string) (*models.Lead, error)
	DeleteLead(id uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string) error
}

// DashboardServiceInterface defines the contract for dashboard aggregation
type DashboardServiceInterface interface {
	GetStats() (*models.DashboardStats, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	LogLogin(userID uuid.UUID, ipAddress, userAgent string) error
	LogLogout(userID uuid.UUID, ipAddress, userAgent string) error
	LogRegister(userID uuid.UUID, ipAddress, userAgent string) error
	LogFailedLogin(email, reason, ipAddress, userAgent string) error
	LogAccountLocked(userID uuid.UUID, ipAddress, userAgent string) error
	LogCustomerEvent(action string, customerID uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string, metadata map[string]interface{}) error
	LogLeadEvent(action string, leadID uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string, metadata map[string]interface{}) error
}

// MetricsRecorderInterface abstracts the metrics backend so services stay
// testable without a live prometheus registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
