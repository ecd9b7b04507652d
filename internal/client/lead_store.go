package client

import (
	"sync"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
)

// LeadFilter is the client-side lead list filter. Either field may be empty;
// status "All" is the explicit no-filter sentinel.
type LeadFilter struct {
	CustomerID string
	Status     string
}

// LeadStore owns the lead collection. Leads are not paginated; the filter
// block plays the role the pagination block does for customers. Merge rules
// and commute safety match CustomerStore.
type LeadStore struct {
	mu     sync.Mutex
	remote RemoteService

	items   []models.Lead
	current *models.Lead
	state   RequestState
	filter  LeadFilter
}

// NewLeadStore creates a lead store bound to a facade.
func NewLeadStore(remote RemoteService) *LeadStore {
	return &LeadStore{
		remote: remote,
		state:  Idle(),
		filter: LeadFilter{Status: models.LeadStatusFilterAll},
	}
}

func (s *LeadStore) begin() {
	s.mu.Lock()
	s.state = Loading()
	s.mu.Unlock()
}

func (s *LeadStore) fail(err error) error {
	s.mu.Lock()
	s.state = Failed(FailureReason(err))
	s.mu.Unlock()
	return err
}

// Fetch loads leads matching the filter, replacing the collection on
// success. Previous items stay visible on failure.
func (s *LeadStore) Fetch(filter LeadFilter) error {
	s.begin()

	resp, err := s.remote.ListLeads(filter.CustomerID, filter.Status)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = resp.Data
	s.filter = filter
	s.state = Succeeded()
	return nil
}

// FetchByID loads a single lead into the detail slot.
func (s *LeadStore) FetchByID(id string) error {
	s.begin()

	resp, err := s.remote.GetLead(id)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = resp.Data
	s.state = Succeeded()
	return nil
}

// Create adds a lead, prepending it to the collection on success.
func (s *LeadStore) Create(req dto.CreateLeadRequest) (*models.Lead, error) {
	s.begin()

	resp, err := s.remote.CreateLead(req)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead := resp.Data
	s.items = append([]models.Lead{*lead}, s.items...)
	s.state = Succeeded()
	return lead, nil
}

// Update applies a partial update, replacing the matching entry by id.
// No match is a silent no-op.
func (s *LeadStore) Update(id string, req dto.UpdateLeadRequest) (*models.Lead, error) {
	s.begin()

	resp, err := s.remote.UpdateLead(id, req)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead := resp.Data
	for i := range s.items {
		if s.items[i].ID == lead.ID {
			s.items[i] = *lead
			break
		}
	}
	if s.current != nil && s.current.ID == lead.ID {
		s.current = lead
	}
	s.state = Succeeded()
	return lead, nil
}

// Delete removes a lead by id, clearing a matching detail slot.
func (s *LeadStore) Delete(id string) error {
	s.begin()

	if err := s.remote.DeleteLead(id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID.String() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if s.current != nil && s.current.ID.String() == id {
		s.current = nil
	}
	s.state = Succeeded()
	return nil
}

// Items returns a copy of the current collection.
func (s *LeadStore) Items() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Lead, len(s.items))
	copy(items, s.items)
	return items
}

// Current returns the detail slot, or nil.
func (s *LeadStore) Current() *models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

// State returns the request lifecycle state.
func (s *LeadStore) State() RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the current failure reason, or "".
func (s *LeadStore) LastError() string {
	return s.State().Reason()
}

// Filter returns the filter the current collection was fetched with.
func (s *LeadStore) Filter() LeadFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}
