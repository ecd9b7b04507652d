package repositories

import (
	"testing"
	"time"

	"crm-assessment/internal/database"
	"crm-assessment/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LeadRepositorySuite defines the test suite for LeadRepository
type LeadRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     LeadRepositoryInterface
	customer *models.Customer
}

// SetupTest runs before each test in the suite
func (s *LeadRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLeadRepository(s.db.DB)
	s.customer = database.CreateTestCustomer(s.T(), s.db,
		gofakeit.FirstName(), gofakeit.LastName(), gofakeit.Email(), gofakeit.Company())
}

// TearDownTest runs after each test in the suite
func (s *LeadRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLeadRepositorySuite runs the test suite
func TestLeadRepositorySuite(t *testing.T) {
	suite.Run(t, new(LeadRepositorySuite))
}

func (s *LeadRepositorySuite) createLead(customerID uuid.UUID, status string, value float64) *models.Lead {
	lead := &models.Lead{
		CustomerID:  customerID,
		Title:       gofakeit.BuzzWord() + " opportunity",
		Description: gofakeit.Sentence(6),
		Status:      status,
		Value:       decimal.NewFromFloat(value),
	}
	s.Require().NoError(s.repo.Create(lead))
	return lead
}

func (s *LeadRepositorySuite) TestCreate() {
	lead := s.createLead(s.customer.ID, models.LeadStatusNew, 1500.00)

	s.NotEqual(uuid.Nil, lead.ID)
	s.NotZero(lead.CreatedAt)
}

func (s *LeadRepositorySuite) TestCreate_InvalidStatus() {
	lead := &models.Lead{
		CustomerID: s.customer.ID,
		Title:      "Bad status",
		Status:     "Pending",
		Value:      decimal.NewFromInt(100),
	}
	s.Error(s.repo.Create(lead))
}

func (s *LeadRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrLeadNotFound)
}

func (s *LeadRepositorySuite) TestList_FilterByCustomer() {
	other := database.CreateTestCustomer(s.T(), s.db,
		gofakeit.FirstName(), gofakeit.LastName(), gofakeit.Email(), gofakeit.Company())

	s.createLead(s.customer.ID, models.LeadStatusNew, 100)
	s.createLead(s.customer.ID, models.LeadStatusContacted, 200)
	s.createLead(other.ID, models.LeadStatusNew, 300)

	leads, err := s.repo.List(LeadFilter{CustomerID: &s.customer.ID})
	s.NoError(err)
	s.Len(leads, 2)
	for _, lead := range leads {
		s.Equal(s.customer.ID, lead.CustomerID)
	}
}

func (s *LeadRepositorySuite) TestList_FilterByStatus() {
	s.createLead(s.customer.ID, models.LeadStatusNew, 100)
	s.createLead(s.customer.ID, models.LeadStatusConverted, 200)
	s.createLead(s.customer.ID, models.LeadStatusConverted, 300)

	leads, err := s.repo.List(LeadFilter{Status: models.LeadStatusConverted})
	s.NoError(err)
	s.Len(leads, 2)
	for _, lead := range leads {
		s.Equal(models.LeadStatusConverted, lead.Status)
	}
}

func (s *LeadRepositorySuite) TestList_EmptyFilterReturnsAll() {
	s.createLead(s.customer.ID, models.LeadStatusNew, 100)
	s.createLead(s.customer.ID, models.LeadStatusLost, 200)

	leads, err := s.repo.List(LeadFilter{})
	s.NoError(err)
	s.Len(leads, 2)
}

func (s *LeadRepositorySuite) TestList_NewestFirst() {
	first := s.createLead(s.customer.ID, models.LeadStatusNew, 100)
	time.Sleep(2 * time.Millisecond)
	second := s.createLead(s.customer.ID, models.LeadStatusNew, 200)

	leads, err := s.repo.ListAll()
	s.NoError(err)
	s.Require().Len(leads, 2)
	s.Equal(second.ID, leads[0].ID)
	s.Equal(first.ID, leads[1].ID)
}

func (s *LeadRepositorySuite) TestUpdateFields() {
	lead := s.createLead(s.customer.ID, models.LeadStatusNew, 100)

	err := s.repo.UpdateFields(lead.ID, map[string]interface{}{
		"status": models.LeadStatusContacted,
		"value":  decimal.NewFromInt(2500),
	})
	s.NoError(err)

	found, err := s.repo.GetByID(lead.ID)
	s.NoError(err)
	s.Equal(models.LeadStatusContacted, found.Status)
	s.True(found.Value.Equal(decimal.NewFromInt(2500)))
	s.Equal(lead.Title, found.Title)
}

func (s *LeadRepositorySuite) TestUpdateFields_NotFound() {
	err := s.repo.UpdateFields(uuid.New(), map[string]interface{}{"status": models.LeadStatusLost})
	s.ErrorIs(err, ErrLeadNotFound)
}

func (s *LeadRepositorySuite) TestDelete() {
	lead := s.createLead(s.customer.ID, models.LeadStatusNew, 100)

	s.NoError(s.repo.Delete(lead.ID))

	_, err := s.repo.GetByID(lead.ID)
	s.ErrorIs(err, ErrLeadNotFound)
}

func (s *LeadRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrLeadNotFound)
}

func (s *LeadRepositorySuite) TestCountByStatus() {
	s.createLead(s.customer.ID, models.LeadStatusNew, 100)
	s.createLead(s.customer.ID, models.LeadStatusNew, 200)
	s.createLead(s.customer.ID, models.LeadStatusConverted, 300)

	counts, err := s.repo.CountByStatus()
	s.NoError(err)
	s.Equal(2, counts[models.LeadStatusNew])
	s.Equal(1, counts[models.LeadStatusConverted])

	// Statuses with no rows are simply absent
	_, present := counts[models.LeadStatusLost]
	s.False(present)
}
