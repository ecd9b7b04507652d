package repositories

import (
	"testing"
	"time"

	"crm-assessment/internal/database"
	"crm-assessment/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositorySuite defines the test suite for UserRepository
type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestUserRepositorySuite runs the test suite
func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) newUser(email string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleUser,
	}
}

func (s *UserRepositorySuite) TestCreate() {
	user := s.newUser("test@example.com")

	s.NoError(s.repo.Create(user))
	s.NotEqual(uuid.Nil, user.ID)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	s.NoError(s.repo.Create(s.newUser("dup@example.com")))

	err := s.repo.Create(s.newUser("dup@example.com"))
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	created := s.newUser("find@example.com")
	s.Require().NoError(s.repo.Create(created))

	found, err := s.repo.GetByEmail("find@example.com")
	s.NoError(err)
	s.Equal(created.ID, found.ID)
}

func (s *UserRepositorySuite) TestGetByEmail_NotFound() {
	_, err := s.repo.GetByEmail("missing@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdateFailedLoginAttempts() {
	user := s.newUser("lockme@example.com")
	s.Require().NoError(s.repo.Create(user))

	now := time.Now()
	user.FailedLoginAttempts = 3
	user.LockedAt = &now

	s.NoError(s.repo.UpdateFailedLoginAttempts(user))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(3, found.FailedLoginAttempts)
	s.NotNil(found.LockedAt)
}

func (s *UserRepositorySuite) TestResetFailedLoginAttempts() {
	user := s.newUser("reset@example.com")
	s.Require().NoError(s.repo.Create(user))

	now := time.Now()
	user.FailedLoginAttempts = 2
	user.LockedAt = &now
	s.Require().NoError(s.repo.UpdateFailedLoginAttempts(user))

	s.NoError(s.repo.ResetFailedLoginAttempts(user.ID))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(0, found.FailedLoginAttempts)
	s.Nil(found.LockedAt)
}

func (s *UserRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrUserNotFound)
}
