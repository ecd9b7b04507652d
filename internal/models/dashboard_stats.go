package models

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate view over a lead set: how many leads sit in
// each pipeline status, and the combined monetary value. All four statuses are
// always present in CountByStatus, defaulting to zero.
type DashboardStats struct {
	CountByStatus map[string]int  `json:"leadsByStatus"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// NewDashboardStats returns an empty aggregate with every status bucket
// initialized to zero.
func NewDashboardStats() DashboardStats {
	counts := make(map[string]int, len(LeadStatuses))
	for _, status := range LeadStatuses {
		counts[status] = 0
	}
	return DashboardStats{
		CountByStatus: counts,
		TotalValue:    decimal.Zero,
	}
}

// TotalLeads returns the sum of all status buckets.
func (s DashboardStats) TotalLeads() int {
	total := 0
	for _, n := range s.CountByStatus {
		total += n
	}
	return total
}
