package client

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"crm-assessment/internal/config"
	"crm-assessment/internal/database"
	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"
	"crm-assessment/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// clientEnv wires a zero-latency facade over real services and an in-memory
// database, so store tests exercise the full synchronization contract.
type clientEnv struct {
	remote *LocalRemote
	tokens TokenStore
	db     *database.DB
}

func newClientEnv(t *testing.T) *clientEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repositories.NewUserRepository(db.DB)
	customerRepo := repositories.NewCustomerRepository(db.DB)
	leadRepo := repositories.NewLeadRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditService := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), logger)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "mini-crm-api-test",
	})

	tokens := NewMemoryTokenStore()

	remote := NewLocalRemote(
		services.NewAuthService(userRepo, blacklistRepo, services.NewPasswordServiceWithCost(bcrypt.MinCost), tokenService, auditService, nil, logger),
		services.NewCustomerService(customerRepo, leadRepo, auditService, nil, logger),
		services.NewLeadService(leadRepo, customerRepo, auditService, nil, logger),
		services.NewDashboardService(leadRepo, logger),
		tokens,
		0,
	)

	return &clientEnv{remote: remote, tokens: tokens, db: db}
}

func (env *clientEnv) createCustomer(t *testing.T, firstName, company string) *models.Customer {
	t.Helper()

	resp, err := env.remote.CreateCustomer(dto.CreateCustomerRequest{
		FirstName: firstName,
		LastName:  "Doe",
		Email:     "customer@example.com",
		Phone:     "+1 555 0100",
		Company:   company,
	})
	require.NoError(t, err)
	return resp.Data
}

func (env *clientEnv) createLead(t *testing.T, customerID, title, status string, value float64) *models.Lead {
	t.Helper()

	resp, err := env.remote.CreateLead(dto.CreateLeadRequest{
		CustomerID: customerID,
		Title:      title,
		Status:     status,
		Value:      decimal.NewFromFloat(value),
	})
	require.NoError(t, err)
	return resp.Data
}

func newLeadRequest(customerID, title string, value float64) dto.CreateLeadRequest {
	return dto.CreateLeadRequest{
		CustomerID: customerID,
		Title:      title,
		Value:      decimal.NewFromFloat(value),
	}
}

// failingRemote overrides selected facade operations to simulate transport
// failures without a transport.
type failingRemote struct {
	RemoteService
}

func (f *failingRemote) ListCustomers(page, limit int, search string) (Response[*dto.CustomerListResponse], error) {
	return Response[*dto.CustomerListResponse]{}, NewRequestError("Failed to load customers")
}

func (f *failingRemote) ListLeads(customerID, status string) (Response[[]models.Lead], error) {
	return Response[[]models.Lead]{}, NewRequestError("Failed to load leads")
}

func (f *failingRemote) GetDashboardStats() (Response[models.DashboardStats], error) {
	return Response[models.DashboardStats]{}, NewRequestError("Failed to load dashboard stats")
}
