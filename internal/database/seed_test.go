package database

import (
	"testing"

	"crm-assessment/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDemoData(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	require.NoError(t, SeedDemoData(db.DB))

	var user models.User
	require.NoError(t, db.Where("email = ?", DemoUserEmail).First(&user).Error)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(DemoUserPassword)))

	var customerCount, leadCount int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	require.NoError(t, db.Model(&models.Lead{}).Count(&leadCount).Error)

	assert.EqualValues(t, demoCustomerCount, customerCount)
	assert.EqualValues(t, demoCustomerCount*demoLeadsPerCustomer, leadCount)

	var leads []models.Lead
	require.NoError(t, db.Find(&leads).Error)
	for _, lead := range leads {
		assert.True(t, models.IsValidLeadStatus(lead.Status))
		assert.False(t, lead.Value.IsNegative())
	}
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	require.NoError(t, SeedDemoData(db.DB))
	require.NoError(t, SeedDemoData(db.DB))

	var userCount, customerCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)

	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, demoCustomerCount, customerCount)
}
