package client

// RequestPhase is the lifecycle phase of a store's primary request.
type RequestPhase int

const (
	PhaseIdle RequestPhase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

// RequestState is a tagged variant over the request lifecycle. A failure
// reason only exists in the Failed phase, so "error with a stale success
// value" is unrepresentable.
type RequestState struct {
	phase  RequestPhase
	reason string
}

// Idle returns the initial request state.
func Idle() RequestState { return RequestState{phase: PhaseIdle} }

// Loading returns the in-flight request state.
func Loading() RequestState { return RequestState{phase: PhaseLoading} }

// Succeeded returns the completed request state.
func Succeeded() RequestState { return RequestState{phase: PhaseSucceeded} }

// Failed returns a failed request state carrying a display reason.
func Failed(reason string) RequestState {
	return RequestState{phase: PhaseFailed, reason: reason}
}

// Phase returns the lifecycle phase.
func (s RequestState) Phase() RequestPhase { return s.phase }

// IsLoading reports whether a request is in flight.
func (s RequestState) IsLoading() bool { return s.phase == PhaseLoading }

// IsSucceeded reports whether the last request completed successfully.
func (s RequestState) IsSucceeded() bool { return s.phase == PhaseSucceeded }

// IsFailed reports whether the last request failed.
func (s RequestState) IsFailed() bool { return s.phase == PhaseFailed }

// Reason returns the failure reason, or "" outside the Failed phase.
func (s RequestState) Reason() string {
	if s.phase != PhaseFailed {
		return ""
	}
	return s.reason
}

// String implements fmt.Stringer for logging.
func (s RequestState) String() string {
	switch s.phase {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed: " + s.reason
	default:
		return "unknown"
	}
}
