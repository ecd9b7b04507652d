package services

import (
	"errors"
	"log/slog"

	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"

	"github.com/google/uuid"
)

// AuditService records who did what. Failures are logged but never propagated
// to the operation being audited.
type AuditService struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// CreateAuditLog persists an audit log entry
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", log.Action,
			"resource", log.Resource)
		return err
	}

	return nil
}

// GetUserActivity returns a page of audit entries for a user, newest first
func (s *AuditService) GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	return s.auditRepo.GetByUserID(userID, offset, limit)
}

func (s *AuditService) LogLogin(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogin,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogLogout(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogout,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogRegister(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionRegister,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogFailedLogin(email, reason, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		Action:    models.AuditActionFailedLogin,
		Resource:  "user",
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Metadata: models.JSONBMap{
			"email":  email,
			"reason": reason,
		},
	})
}

func (s *AuditService) LogAccountLocked(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionAccountLocked,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogCustomerEvent(action string, customerID uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string, metadata map[string]interface{}) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     performedBy,
		Action:     action,
		Resource:   "customer",
		ResourceID: customerID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	})
}

func (s *AuditService) LogLeadEvent(action string, leadID uuid.UUID, performedBy *uuid.UUID, ipAddress, userAgent string, metadata map[string]interface{}) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     performedBy,
		Action:     action,
		Resource:   "lead",
		ResourceID: leadID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	})
}
