package dto

import "crm-assessment/internal/models"

// DashboardStatsResponse wraps the aggregate computed over the full lead set
// at request time.
type DashboardStatsResponse struct {
	Stats models.DashboardStats `json:"stats"`
}
