package repositories

import (
	"errors"
	"fmt"

	"crm-assessment/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLeadNotFound = errors.New("lead not found")
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepositoryInterface {
	return &LeadRepository{
		db: db,
	}
}

// Create creates a new lead in the database. Referential integrity against
// customers is not enforced here; dangling customer references are the
// caller's responsibility.
func (r *LeadRepository) Create(lead *models.Lead) error {
	if lead == nil {
		return errors.New("lead cannot be nil")
	}

	if err := r.db.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

// GetByID retrieves a lead by its ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	lead := &models.Lead{ID: id}
	if err := r.db.First(lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead by ID: %w", err)
	}

	return lead, nil
}

// List retrieves leads matching the filter, newest first. An empty status
// means no status filter.
func (r *LeadRepository) List(filter LeadFilter) ([]models.Lead, error) {
	var leads []models.Lead

	query := r.db.Model(&models.Lead{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// ListAll retrieves every lead, newest first
func (r *LeadRepository) ListAll() ([]models.Lead, error) {
	return r.List(LeadFilter{})
}

// Update updates a lead in the database
func (r *LeadRepository) Update(lead *models.Lead) error {
	if lead == nil {
		return errors.New("lead cannot be nil")
	}

	if err := r.db.Save(lead).Error; err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	return nil
}

// UpdateFields applies a partial update to a lead
func (r *LeadRepository) UpdateFields(leadID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.Model(&models.Lead{ID: leadID}).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update lead fields: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

// Delete removes a lead from the database
func (r *LeadRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Lead{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

// CountByStatus returns the number of leads per status. Statuses with no
// leads are absent from the result; callers wanting the full bucket set
// should start from models.NewDashboardStats.
func (r *LeadRepository) CountByStatus() (map[string]int, error) {
	type statusCount struct {
		Status string
		Count  int
	}

	var rows []statusCount
	if err := r.db.Model(&models.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
