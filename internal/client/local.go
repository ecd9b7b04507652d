package client

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crm-assessment/internal/config"
	"crm-assessment/internal/database"
	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"
	"crm-assessment/internal/services"

	"github.com/google/uuid"
)

// DefaultLatency approximates the round trip the stores would see against a
// real backend, so loading states are observable during development.
const DefaultLatency = 500 * time.Millisecond

const (
	localIPAddress = "127.0.0.1"
	localUserAgent = "mini-crm-client"
)

// LocalRemote implements RemoteService in-process by wrapping the real
// services over an in-memory database. It is the mock API the mobile client
// develops against: same wire semantics as the echo server, no transport.
type LocalRemote struct {
	auth      services.AuthServiceInterface
	customers services.CustomerServiceInterface
	leads     services.LeadServiceInterface
	dashboard services.DashboardServiceInterface
	tokens    TokenStore
	latency   time.Duration
}

// NewLocalRemote wires a facade over already constructed services. A zero
// latency disables the simulated delay.
func NewLocalRemote(
	auth services.AuthServiceInterface,
	customers services.CustomerServiceInterface,
	leads services.LeadServiceInterface,
	dashboard services.DashboardServiceInterface,
	tokens TokenStore,
	latency time.Duration,
) *LocalRemote {
	return &LocalRemote{
		auth:      auth,
		customers: customers,
		leads:     leads,
		dashboard: dashboard,
		tokens:    tokens,
		latency:   latency,
	}
}

// NewDemoRemote builds a fully self-contained facade: in-memory sqlite,
// generated signing keys, and seeded demo data. This is the mock mode the
// app runs in when no backend is configured.
func NewDemoRemote(latency time.Duration, logger *slog.Logger) (*LocalRemote, error) {
	db, err := database.New(&config.DatabaseConfig{Driver: config.DriverSQLite})
	if err != nil {
		return nil, fmt.Errorf("failed to open demo database: %w", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate demo database: %w", err)
	}

	if err := database.SeedDemoData(db.DB); err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	customerRepo := repositories.NewCustomerRepository(db.DB)
	leadRepo := repositories.NewLeadRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditService := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), logger)

	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: 24 * time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "mini-crm-demo",
	})

	return NewLocalRemote(
		services.NewAuthService(userRepo, blacklistRepo, services.NewPasswordService(), tokenService, auditService, nil, logger),
		services.NewCustomerService(customerRepo, leadRepo, auditService, nil, logger),
		services.NewLeadService(leadRepo, customerRepo, auditService, nil, logger),
		services.NewDashboardService(leadRepo, logger),
		NewMemoryTokenStore(),
		latency,
	), nil
}

// TokenStore exposes the token slot this facade persists sessions into.
func (r *LocalRemote) TokenStore() TokenStore {
	return r.tokens
}

func (r *LocalRemote) simulate() {
	if r.latency > 0 {
		time.Sleep(r.latency)
	}
}

// Login authenticates and persists the returned bearer token.
func (r *LocalRemote) Login(email, password string) (Response[*dto.AuthResponse], error) {
	r.simulate()

	resp, err := r.auth.Login(&dto.LoginRequest{Email: email, Password: password}, localIPAddress, localUserAgent)
	if err != nil {
		return Response[*dto.AuthResponse]{}, authFailure(err)
	}

	if err := r.tokens.Set(resp.Token); err != nil {
		return Response[*dto.AuthResponse]{}, NewRequestError("Failed to persist session token")
	}

	return succeed(resp, "Login successful"), nil
}

// Register creates an account and persists the returned bearer token.
func (r *LocalRemote) Register(req dto.RegisterRequest) (Response[*dto.AuthResponse], error) {
	r.simulate()

	resp, err := r.auth.Register(&req, localIPAddress, localUserAgent)
	if err != nil {
		return Response[*dto.AuthResponse]{}, authFailure(err)
	}

	if err := r.tokens.Set(resp.Token); err != nil {
		return Response[*dto.AuthResponse]{}, NewRequestError("Failed to persist session token")
	}

	return succeed(resp, "Registration successful"), nil
}

// Logout removes the persisted token. The remote revocation is best effort;
// local logout never fails.
func (r *LocalRemote) Logout() error {
	r.simulate()

	if token, err := r.tokens.Get(); err == nil && token != "" {
		_ = r.auth.Logout(token, localIPAddress, localUserAgent)
	}

	return r.tokens.Remove()
}

// ListCustomers returns one page of customers matching the optional search.
func (r *LocalRemote) ListCustomers(page, limit int, search string) (Response[*dto.CustomerListResponse], error) {
	r.simulate()

	resp, err := r.customers.ListCustomers(&dto.ListCustomersRequest{Page: page, Limit: limit, Search: search})
	if err != nil {
		return Response[*dto.CustomerListResponse]{}, NewRequestError("Failed to load customers")
	}

	return succeed(resp, ""), nil
}

// GetCustomer fetches a single customer by id.
func (r *LocalRemote) GetCustomer(id string) (Response[*models.Customer], error) {
	r.simulate()

	customerID, err := uuid.Parse(id)
	if err != nil {
		return Response[*models.Customer]{}, NewRequestError("Customer not found")
	}

	customer, err := r.customers.GetCustomer(customerID)
	if err != nil {
		return Response[*models.Customer]{}, customerFailure(err)
	}

	return succeed(customer, ""), nil
}

// CreateCustomer creates a customer; the server assigns id and timestamps.
func (r *LocalRemote) CreateCustomer(req dto.CreateCustomerRequest) (Response[*models.Customer], error) {
	r.simulate()

	customer, err := r.customers.CreateCustomer(&req, nil, localIPAddress, localUserAgent)
	if err != nil {
		return Response[*models.Customer]{}, customerFailure(err)
	}

	return succeed(customer, "Customer created"), nil
}

// UpdateCustomer applies a partial update to an existing customer.
func (r *LocalRemote) UpdateCustomer(id string, req dto.UpdateCustomerRequest) (Response[*models.Customer], error) {
	r.simulate()

	customerID, err := uuid.Parse(id)
	if err != nil {
		return Response[*models.Customer]{}, NewRequestError("Customer not found")
	}

	customer, err := r.customers.UpdateCustomer(customerID, &req, nil, localIPAddress, localUserAgent)
	if err != nil {
		return Response[*models.Customer]{}, customerFailure(err)
	}

	return succeed(customer, "Customer updated"), nil
}

// DeleteCustomer removes a customer and its leads.
func (r *LocalRemote) DeleteCustomer(id string) error {
	r.simulate()

	customerID, err := uuid.Parse(id)
	if err != nil {
		return NewRequestError("Customer not found")
	}

	if err := r.customers.DeleteCustomer(customerID, nil, localIPAddress, localUserAgent); err != nil {
		return customerFailure(err)
	}

	return nil
}

// ListLeads returns leads filtered by optional customer id and status.
// Status "All" or "" means no status filter.
func (r *LocalRemote) ListLeads(customerID, status string) (Response[[]models.Lead], error) {
	r.simulate()

	filter := repositories.LeadFilter{Status: status}
	if status == models.LeadStatusFilterAll {
		filter.Status = ""
	}

	if customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			return Response[[]models.Lead]{}, NewRequestError("Customer not found")
		}
		filter.CustomerID = &id
	}

	leads, err := r.leads.ListLeads(filter)
	if err != nil {
		return Response[[]models.Lead]{}, leadFailure(err)
	}

	return succeed(leads, ""), nil
}

// GetLead fetches a single lead by id.
func (r *LocalRemote) GetLead(id string) (Response[*models.Lead], error) {
	r.simulate()

	leadID, err := uuid.Parse(id)
	if err != nil {
		return Response[*models.Lead]{}, NewRequestError("Lead not found")
	}

	lead, err := r.leads.GetLead(leadID)
	if err != nil {
		return Response[*models.Lead]{}, leadFailure(err)
	}

	return succeed(lead, ""), nil
}

// CreateLead creates a lead; status defaults to New.
func (r *LocalRemote) CreateLead(req dto.CreateLeadRequest) (Response[*models.Lead], error) {
	r.simulate()

	lead, err := r.leads.CreateLead(&req, nil, localIPAddress, localUserAgent)
	if err != nil {
		return Response[*models.Lead]{}, leadFailure(err)
	}

	return succeed(lead, "Lead created"), nil
}

// UpdateLead applies a partial update to an existing lead.
func (r *LocalRemote) UpdateLead(id string, req dto.UpdateLeadRequest) (Response[*models.Lead], error) {
	r.simulate()

	leadID, err := uuid.Parse(id)
	if err != nil {
		return Response[*models.Lead]{}, NewRequestError("Lead not found")
	}

	lead, err := r.leads.UpdateLead(leadID, &req, nil, localIPAddress, localUserAgent)
	if err != nil {
		return Response[*models.Lead]{}, leadFailure(err)
	}

	return succeed(lead, "Lead updated"), nil
}

// DeleteLead removes a lead.
func (r *LocalRemote) DeleteLead(id string) error {
	r.simulate()

	leadID, err := uuid.Parse(id)
	if err != nil {
		return NewRequestError("Lead not found")
	}

	if err := r.leads.DeleteLead(leadID, nil, localIPAddress, localUserAgent); err != nil {
		return leadFailure(err)
	}

	return nil
}

// GetDashboardStats computes the aggregate over the full lead set at call time.
func (r *LocalRemote) GetDashboardStats() (Response[models.DashboardStats], error) {
	r.simulate()

	stats, err := r.dashboard.GetStats()
	if err != nil {
		return Response[models.DashboardStats]{}, NewRequestError("Failed to load dashboard stats")
	}

	return succeed(*stats, ""), nil
}

func authFailure(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return NewRequestError("Invalid email or password")
	case errors.Is(err, services.ErrAccountLocked):
		return NewRequestError("Account is locked due to too many failed login attempts")
	case errors.Is(err, services.ErrUserAlreadyExists):
		return NewRequestError("An account with this email already exists")
	default:
		return NewRequestError(err.Error())
	}
}

func customerFailure(err error) error {
	if errors.Is(err, services.ErrCustomerNotFound) {
		return NewRequestError("Customer not found")
	}
	return NewRequestError(err.Error())
}

func leadFailure(err error) error {
	switch {
	case errors.Is(err, services.ErrLeadNotFound):
		return NewRequestError("Lead not found")
	case errors.Is(err, services.ErrLeadCustomerGone):
		return NewRequestError("Customer not found")
	case errors.Is(err, services.ErrInvalidLeadStatus):
		return NewRequestError("Invalid lead status")
	default:
		return NewRequestError(err.Error())
	}
}
