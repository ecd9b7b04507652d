package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	auditService         AuditServiceInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		auditService:         auditService,
		metrics:              metrics,
		logger:               logger,
	}
}

// Register creates a new user account and logs them straight in
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		s.recordAuthEvent("register_email_taken")
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.auditService.LogRegister(user.ID, ipAddress, userAgent); err != nil {
		s.logger.Warn("failed to audit registration", "error", err, "user_id", user.ID)
	}
	s.recordAuthEvent("register")

	return s.buildAuthResponse(user)
}

// Login authenticates a user and returns a bearer token
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditFailedLogin(req.Email, "user_not_found", ipAddress, userAgent)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		s.auditFailedLogin(req.Email, "account_locked", ipAddress, userAgent)
		return nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		user.IncrementFailedAttempts()
		if err := s.userRepo.UpdateFailedLoginAttempts(user); err != nil {
			// Never reveal user existence via error messages
			s.logger.Error("failed to update login attempts",
				"error", err,
				"user_id", user.ID)
		}

		if user.IsLocked() {
			if err := s.auditService.LogAccountLocked(user.ID, ipAddress, userAgent); err != nil {
				s.logger.Warn("failed to audit lockout", "error", err, "user_id", user.ID)
			}
		}

		s.auditFailedLogin(req.Email, "invalid_password", ipAddress, userAgent)
		return nil, ErrInvalidCredentials
	}

	user.ResetFailedAttempts()
	user.UpdateLastLogin()
	if err := s.userRepo.Update(user); err != nil {
		// Non-critical, login still succeeds
		s.logger.Warn("failed to update login state",
			"error", err,
			"user_id", user.ID)
	}

	if err := s.auditService.LogLogin(user.ID, ipAddress, userAgent); err != nil {
		s.logger.Warn("failed to audit login", "error", err, "user_id", user.ID)
	}
	s.recordAuthEvent("login")

	return s.buildAuthResponse(user)
}

// Logout invalidates the presented token. Logout always succeeds from the
// caller's perspective: even an expired or garbled token ends the session.
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		// Blacklist even expired tokens to prevent reuse
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			if err := s.blacklistToken(jti, uuid.Nil, time.Now().Add(24*time.Hour)); err != nil {
				s.logger.Error("failed to blacklist expired token",
					"error", err,
					"jti", jti)
			}
		}
		s.recordAuthEvent("logout")
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)

	expiry, _ := s.tokenService.GetTokenExpiry(accessToken)
	if err := s.blacklistToken(claims.ID, userID, expiry); err != nil {
		s.logger.Error("failed to blacklist token",
			"error", err,
			"jti", claims.ID,
			"user_id", userID)
	}

	if err := s.auditService.LogLogout(userID, ipAddress, userAgent); err != nil {
		s.logger.Warn("failed to audit logout", "error", err, "user_id", userID)
	}
	s.recordAuthEvent("logout")

	return nil
}

// GetUserByID loads a user profile
func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// IsTokenBlacklisted reports whether a token's JTI has been revoked
func (s *AuthService) IsTokenBlacklisted(jti string) bool {
	if jti == "" {
		return false
	}

	token, err := s.blacklistedTokenRepo.GetByJTI(jti)
	if err != nil {
		return false
	}

	return token != nil
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.AuthResponse{
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AuthService) blacklistToken(jti string, userID uuid.UUID, expiresAt time.Time) error {
	token := &models.BlacklistedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return s.blacklistedTokenRepo.Create(token)
}

func (s *AuthService) auditFailedLogin(email, reason, ipAddress, userAgent string) {
	if err := s.auditService.LogFailedLogin(email, reason, ipAddress, userAgent); err != nil {
		s.logger.Warn("failed to audit failed login", "error", err)
	}
	s.recordAuthEvent("failed_login")
}

func (s *AuthService) recordAuthEvent(eventType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}
