package services

import (
	"testing"

	"crm-assessment/internal/database"
	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CustomerServiceSuite defines the test suite for CustomerService
type CustomerServiceSuite struct {
	suite.Suite
	db       *database.DB
	leadRepo repositories.LeadRepositoryInterface
	service  CustomerServiceInterface
}

// SetupTest runs before each test in the suite
func (s *CustomerServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	logger := testLogger()

	customerRepo := repositories.NewCustomerRepository(s.db.DB)
	s.leadRepo = repositories.NewLeadRepository(s.db.DB)
	auditService := NewAuditService(repositories.NewAuditLogRepository(s.db.DB), logger)

	s.service = NewCustomerService(customerRepo, s.leadRepo, auditService, nil, logger)
}

// TearDownTest runs after each test in the suite
func (s *CustomerServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCustomerServiceSuite runs the test suite
func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) createCustomer(firstName, lastName, email, company string) *models.Customer {
	customer, err := s.service.CreateCustomer(&dto.CreateCustomerRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     "+1 555 0100",
		Company:   company,
	}, nil, "127.0.0.1", "test-agent")
	s.Require().NoError(err)
	return customer
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	customer := s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")

	s.NotEqual(uuid.Nil, customer.ID)
	s.Equal("Jane", customer.FirstName)
}

func (s *CustomerServiceSuite) TestListCustomers_Defaults() {
	for i := 0; i < 3; i++ {
		s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")
	}

	resp, err := s.service.ListCustomers(&dto.ListCustomersRequest{})
	s.NoError(err)
	s.Equal(DefaultPage, resp.Page)
	s.Equal(DefaultLimit, resp.Limit)
	s.EqualValues(3, resp.Total)
	s.Equal(1, resp.TotalPages)
	s.Len(resp.Data, 3)
}

func (s *CustomerServiceSuite) TestListCustomers_ClampsLimit() {
	resp, err := s.service.ListCustomers(&dto.ListCustomersRequest{Page: -2, Limit: 5000})
	s.NoError(err)
	s.Equal(1, resp.Page)
	s.Equal(MaxLimit, resp.Limit)
}

func (s *CustomerServiceSuite) TestListCustomers_TotalPages() {
	for i := 0; i < 7; i++ {
		s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")
	}

	resp, err := s.service.ListCustomers(&dto.ListCustomersRequest{Page: 2, Limit: 3})
	s.NoError(err)
	s.EqualValues(7, resp.Total)
	s.Equal(3, resp.TotalPages)
	s.Len(resp.Data, 3)
}

func (s *CustomerServiceSuite) TestListCustomers_Search() {
	s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")
	s.createCustomer("John", "Smith", "john@example.com", "Globex")

	resp, err := s.service.ListCustomers(&dto.ListCustomersRequest{Search: "acme"})
	s.NoError(err)
	s.EqualValues(1, resp.Total)
	s.Require().Len(resp.Data, 1)
	s.Equal("Acme Corp", resp.Data[0].Company)
}

func (s *CustomerServiceSuite) TestGetCustomer_NotFound() {
	_, err := s.service.GetCustomer(uuid.New())
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerServiceSuite) TestUpdateCustomer_Partial() {
	customer := s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")

	company := "Acme Holdings"
	updated, err := s.service.UpdateCustomer(customer.ID, &dto.UpdateCustomerRequest{
		Company: &company,
	}, nil, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Equal("Acme Holdings", updated.Company)
	s.Equal("Jane", updated.FirstName)
	s.Equal("jane@example.com", updated.Email)
}

func (s *CustomerServiceSuite) TestUpdateCustomer_NoFields() {
	customer := s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")

	updated, err := s.service.UpdateCustomer(customer.ID, &dto.UpdateCustomerRequest{}, nil, "127.0.0.1", "test-agent")
	s.NoError(err)
	s.Equal(customer.ID, updated.ID)
}

func (s *CustomerServiceSuite) TestUpdateCustomer_NotFound() {
	name := "Ghost"
	_, err := s.service.UpdateCustomer(uuid.New(), &dto.UpdateCustomerRequest{FirstName: &name}, nil, "127.0.0.1", "test-agent")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerServiceSuite) TestDeleteCustomer_CascadesLeads() {
	customer := s.createCustomer("Jane", "Doe", "jane@example.com", "Acme Corp")

	lead := &models.Lead{
		CustomerID: customer.ID,
		Title:      "Pipeline deal",
		Status:     models.LeadStatusNew,
		Value:      decimal.NewFromInt(1000),
	}
	s.Require().NoError(s.leadRepo.Create(lead))

	s.NoError(s.service.DeleteCustomer(customer.ID, nil, "127.0.0.1", "test-agent"))

	_, err := s.service.GetCustomer(customer.ID)
	s.ErrorIs(err, ErrCustomerNotFound)

	leads, err := s.leadRepo.ListAll()
	s.NoError(err)
	s.Empty(leads)
}

func (s *CustomerServiceSuite) TestDeleteCustomer_NotFound() {
	err := s.service.DeleteCustomer(uuid.New(), nil, "127.0.0.1", "test-agent")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"zero rows", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"single short page", 3, 10, 1},
		{"zero limit", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
