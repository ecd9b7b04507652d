package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm-assessment/internal/config"
	"crm-assessment/internal/database"
	"crm-assessment/internal/repositories"
	"crm-assessment/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires real services over an in-memory database so handler tests
// exercise the full request path.
type testEnv struct {
	e                *echo.Echo
	db               *database.DB
	authService      services.AuthServiceInterface
	customerService  services.CustomerServiceInterface
	leadService      services.LeadServiceInterface
	dashboardService services.DashboardServiceInterface
	leadRepo         repositories.LeadRepositoryInterface
	customerRepo     repositories.CustomerRepositoryInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repositories.NewUserRepository(db.DB)
	customerRepo := repositories.NewCustomerRepository(db.DB)
	leadRepo := repositories.NewLeadRepository(db.DB)
	auditService := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), logger)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "mini-crm-api-test",
	})

	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		e:  e,
		db: db,
		authService: services.NewAuthService(
			userRepo,
			blacklistRepo,
			services.NewPasswordServiceWithCost(bcrypt.MinCost),
			tokenService,
			auditService,
			nil,
			logger,
		),
		customerService:  services.NewCustomerService(customerRepo, leadRepo, auditService, nil, logger),
		leadService:      services.NewLeadService(leadRepo, customerRepo, auditService, nil, logger),
		dashboardService: services.NewDashboardService(leadRepo, logger),
		leadRepo:         leadRepo,
		customerRepo:     customerRepo,
	}
}

func (env *testEnv) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.e.NewContext(req, rec), rec
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, want, rec.Body.String())
	}
}
