package client

import (
	"sync"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
	"crm-assessment/internal/services"
)

// Pagination is the client-side view of the server's pagination block.
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// CustomerStore owns the customer collection the list and detail screens
// render. All mutation goes through the typed operations below; each is a
// three-phase transition (loading, then succeeded or failed) and applies a
// deterministic merge rule on success. Completions commute: an update or
// delete completion that finds no matching id is a silent no-op, so
// back-to-back operations on the same id are safe in any arrival order.
type CustomerStore struct {
	mu     sync.Mutex
	remote RemoteService

	items      []models.Customer
	current    *models.Customer
	state      RequestState
	pagination Pagination
	search     string
}

// NewCustomerStore creates a customer store bound to a facade.
func NewCustomerStore(remote RemoteService) *CustomerStore {
	return &CustomerStore{
		remote: remote,
		state:  Idle(),
		pagination: Pagination{
			Page:  services.DefaultPage,
			Limit: services.DefaultLimit,
		},
	}
}

func (s *CustomerStore) begin() {
	s.mu.Lock()
	s.state = Loading()
	s.mu.Unlock()
}

func (s *CustomerStore) fail(err error) error {
	s.mu.Lock()
	s.state = Failed(FailureReason(err))
	s.mu.Unlock()
	return err
}

// Fetch loads one page of customers. On success the items and the pagination
// block are replaced verbatim from the response; on failure the previous
// items stay visible alongside the error.
func (s *CustomerStore) Fetch(page, limit int, search string) error {
	s.begin()

	resp, err := s.remote.ListCustomers(page, limit, search)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := resp.Data
	s.items = list.Data
	s.pagination = Pagination{
		Page:       list.Page,
		Limit:      list.Limit,
		Total:      list.Total,
		TotalPages: list.TotalPages,
	}
	s.search = search
	s.state = Succeeded()
	return nil
}

// FetchByID loads a single customer into the detail slot without touching
// the list.
func (s *CustomerStore) FetchByID(id string) error {
	s.begin()

	resp, err := s.remote.GetCustomer(id)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = resp.Data
	s.state = Succeeded()
	return nil
}

// Create adds a customer. On success the new entity is prepended (newest
// first, matching server ordering), total grows by one and totalPages is
// recomputed so the pagination block never drifts from the new total.
func (s *CustomerStore) Create(req dto.CreateCustomerRequest) (*models.Customer, error) {
	s.begin()

	resp, err := s.remote.CreateCustomer(req)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := resp.Data
	s.items = append([]models.Customer{*customer}, s.items...)
	s.pagination.Total++
	s.pagination.TotalPages = services.TotalPages(s.pagination.Total, s.pagination.Limit)
	s.state = Succeeded()
	return customer, nil
}

// Update applies a partial update. On success the matching list entry is
// replaced in place; if the detail slot holds the same id it is replaced
// too. No match found is a silent no-op, not an error.
func (s *CustomerStore) Update(id string, req dto.UpdateCustomerRequest) (*models.Customer, error) {
	s.begin()

	resp, err := s.remote.UpdateCustomer(id, req)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := resp.Data
	for i := range s.items {
		if s.items[i].ID == customer.ID {
			s.items[i] = *customer
			break
		}
	}
	if s.current != nil && s.current.ID == customer.ID {
		s.current = customer
	}
	s.state = Succeeded()
	return customer, nil
}

// Delete removes a customer. On success the matching list entry is dropped,
// total shrinks by one with totalPages recomputed, and a matching detail
// slot is cleared. An absent id no-ops structurally.
func (s *CustomerStore) Delete(id string) error {
	s.begin()

	if err := s.remote.DeleteCustomer(id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID.String() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.pagination.Total > 0 {
				s.pagination.Total--
			}
			s.pagination.TotalPages = services.TotalPages(s.pagination.Total, s.pagination.Limit)
			break
		}
	}
	if s.current != nil && s.current.ID.String() == id {
		s.current = nil
	}
	s.state = Succeeded()
	return nil
}

// Items returns a copy of the current page.
func (s *CustomerStore) Items() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Customer, len(s.items))
	copy(items, s.items)
	return items
}

// Current returns the detail slot, or nil.
func (s *CustomerStore) Current() *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

// State returns the request lifecycle state.
func (s *CustomerStore) State() RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the current failure reason, or "".
func (s *CustomerStore) LastError() string {
	return s.State().Reason()
}

// Pagination returns the pagination block as of the last applied mutation.
func (s *CustomerStore) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// Search returns the filter the current page was fetched with.
func (s *CustomerStore) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}
