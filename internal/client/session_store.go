package client

import (
	"sync"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"
)

// AuthState is the session state machine position.
type AuthState int

const (
	Anonymous AuthState = iota
	Authenticating
	Authenticated
)

// String implements fmt.Stringer for logging.
func (s AuthState) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionStore owns authentication state and gates which screens are
// reachable. The bearer token itself lives in the TokenStore, never here;
// the session holds only the decoded user and the state machine position.
type SessionStore struct {
	mu     sync.Mutex
	remote RemoteService
	tokens TokenStore

	state     AuthState
	user      *models.User
	lastError string
}

// NewSessionStore creates a session store bound to a facade and token slot.
func NewSessionStore(remote RemoteService, tokens TokenStore) *SessionStore {
	return &SessionStore{
		remote: remote,
		tokens: tokens,
		state:  Anonymous,
	}
}

// CheckAuthStatus restores the session at process start. Presence of a
// persisted token alone is the truth: no re-validation round trip is made,
// and the user slot stays whatever was cached.
func (s *SessionStore) CheckAuthStatus() error {
	token, err := s.tokens.Get()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || token == "" {
		s.state = Anonymous
		s.user = nil
		return err
	}

	s.state = Authenticated
	return nil
}

// Login authenticates with credentials. Success transitions to
// Authenticated with the token persisted by the facade; failure stays
// Anonymous and surfaces the reason.
func (s *SessionStore) Login(email, password string) error {
	s.mu.Lock()
	s.state = Authenticating
	s.lastError = ""
	s.mu.Unlock()

	resp, err := s.remote.Login(email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = Anonymous
		s.lastError = FailureReason(err)
		return err
	}

	s.state = Authenticated
	s.user = resp.Data.User
	return nil
}

// Register creates an account and logs straight in, mirroring Login.
func (s *SessionStore) Register(req dto.RegisterRequest) error {
	s.mu.Lock()
	s.state = Authenticating
	s.lastError = ""
	s.mu.Unlock()

	resp, err := s.remote.Register(req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = Anonymous
		s.lastError = FailureReason(err)
		return err
	}

	s.state = Authenticated
	s.user = resp.Data.User
	return nil
}

// Logout ends the session. Local logout is unconditional: whatever the
// remote revocation does, the state goes Anonymous and the token slot is
// cleared.
func (s *SessionStore) Logout() error {
	err := s.remote.Logout()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Anonymous
	s.user = nil

	if err != nil {
		// The facade contract says logout cannot fail locally, but a
		// broken token slot should still surface somewhere.
		s.lastError = FailureReason(err)
	}
	return nil
}

// State returns the session state machine position.
func (s *SessionStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether the session gate is open.
func (s *SessionStore) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// User returns the cached user, or nil when none was decoded this process.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// LastError returns the last surfaced failure reason, or "".
func (s *SessionStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
