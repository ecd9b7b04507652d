package client

import (
	"sync"

	"crm-assessment/internal/models"
	"crm-assessment/internal/services"
)

// DashboardStore owns the dashboard aggregate. Refresh fetches it through
// the facade (computed over the full lead set at call time), which can go
// stale after a lead mutation; RecomputeFrom derives it live from a lead
// slice instead, for callers that already hold the collection.
type DashboardStore struct {
	mu     sync.Mutex
	remote RemoteService

	stats models.DashboardStats
	state RequestState
}

// NewDashboardStore creates a dashboard store bound to a facade.
func NewDashboardStore(remote RemoteService) *DashboardStore {
	return &DashboardStore{
		remote: remote,
		stats:  models.NewDashboardStats(),
		state:  Idle(),
	}
}

// Refresh fetches the aggregate through the facade. Previous stats stay
// visible on failure.
func (s *DashboardStore) Refresh() error {
	s.mu.Lock()
	s.state = Loading()
	s.mu.Unlock()

	resp, err := s.remote.GetDashboardStats()
	if err != nil {
		s.mu.Lock()
		s.state = Failed(FailureReason(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = resp.Data
	s.state = Succeeded()
	return nil
}

// RecomputeFrom replaces the aggregate with one derived from the given lead
// slice. Pure and synchronous; never fails.
func (s *DashboardStore) RecomputeFrom(leads []models.Lead) {
	stats := services.AggregateLeads(leads)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	s.state = Succeeded()
}

// Stats returns the current aggregate.
func (s *DashboardStore) Stats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// State returns the request lifecycle state.
func (s *DashboardStore) State() RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the current failure reason, or "".
func (s *DashboardStore) LastError() string {
	return s.State().Reason()
}
