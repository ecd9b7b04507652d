package repositories

import (
	"errors"
	"fmt"
	"strings"

	"crm-assessment/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Create creates a new customer in the database
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by their ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{ID: id}
	if err := r.db.First(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return customer, nil
}

// List retrieves customers matching the filter, newest first. The total count
// is computed over the filtered set so pagination stays consistent with what
// the caller sees.
func (r *CustomerRepository) List(filter CustomerFilter, offset, limit int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	query := r.db.Model(&models.Customer{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// Update updates a customer in the database
func (r *CustomerRepository) Update(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// UpdateFields applies a partial update to a customer. GORM bumps updated_at
// automatically on map-based updates.
func (r *CustomerRepository) UpdateFields(customerID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.Model(&models.Customer{ID: customerID}).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update customer fields: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer from the database
func (r *CustomerRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Customer{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Count returns the total number of customers
func (r *CustomerRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return total, nil
}
