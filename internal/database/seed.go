package database

import (
	"fmt"
	"log"

	"crm-assessment/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// DemoUserEmail and DemoUserPassword are the credentials the mobile
	// client's login screen is pre-filled with in demo mode.
	DemoUserEmail    = "demo@minicrm.dev"
	DemoUserPassword = "Password123"

	demoCustomerCount    = 12
	demoLeadsPerCustomer = 3
)

// SeedDemoData populates the in-memory database with a demo user plus
// faker-generated customers and leads. Idempotent: a second call on a
// database that already has the demo user is a no-op.
func SeedDemoData(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("email = ?", DemoUserEmail).First(&existing).Error; err == nil {
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check for demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Email:        DemoUserEmail,
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "User",
		Role:         models.RoleAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	faker := gofakeit.New(0)

	for i := 0; i < demoCustomerCount; i++ {
		customer := &models.Customer{
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
			Phone:     faker.Phone(),
			Company:   faker.Company(),
		}
		if err := db.Create(customer).Error; err != nil {
			return fmt.Errorf("failed to create demo customer: %w", err)
		}

		for j := 0; j < demoLeadsPerCustomer; j++ {
			lead := &models.Lead{
				CustomerID:  customer.ID,
				Title:       faker.BuzzWord() + " " + faker.ProductName(),
				Description: faker.Sentence(8),
				Status:      models.LeadStatuses[faker.Number(0, len(models.LeadStatuses)-1)],
				Value:       decimal.NewFromFloat(faker.Price(500, 50000)).Round(2),
			}
			if err := db.Create(lead).Error; err != nil {
				return fmt.Errorf("failed to create demo lead: %w", err)
			}
		}
	}

	log.Printf("Seeded demo data: 1 user, %d customers, %d leads",
		demoCustomerCount, demoCustomerCount*demoLeadsPerCustomer)

	return nil
}
