package services

import (
	"fmt"
	"log/slog"

	"crm-assessment/internal/models"
	"crm-assessment/internal/repositories"
)

// DashboardService aggregates lead data for the dashboard view
type DashboardService struct {
	leadRepo repositories.LeadRepositoryInterface
	logger   *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(leadRepo repositories.LeadRepositoryInterface, logger *slog.Logger) DashboardServiceInterface {
	return &DashboardService{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// GetStats loads every lead and aggregates it into dashboard stats
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	leads, err := s.leadRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load leads for dashboard: %w", err)
	}

	stats := AggregateLeads(leads)
	return &stats, nil
}

// AggregateLeads folds a lead set into dashboard stats. It is a pure function
// of its input: every status bucket is present even at zero, and the total
// value is the sum over all leads regardless of status.
func AggregateLeads(leads []models.Lead) models.DashboardStats {
	stats := models.NewDashboardStats()

	for _, lead := range leads {
		stats.CountByStatus[lead.Status]++
		stats.TotalValue = stats.TotalValue.Add(lead.Value)
	}

	return stats
}
