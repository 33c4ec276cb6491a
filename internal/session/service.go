package session

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/adhishthite/tippr/pkg/validate"
)

// Service applies reduce requests coming in over the wire. The reducer
// itself is pure; the service owns the two impure edges: request
// validation and stamping tip selections that arrive without a timestamp.
type Service struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new session service
func NewService() *Service {
	return &Service{
		validate: validate.New(),
		now:      time.Now,
	}
}

// Apply validates the request, applies the event to the state, and
// recomputes the snapshot from the next state.
func (s *Service) Apply(req *ReduceRequest) (*ReduceResponse, error) {
	if err := validate.Flatten(s.validate.Struct(req)); err != nil {
		return nil, err
	}

	// Callers that don't track time client-side may send tip selections
	// without a timestamp; stamp those with the server clock so the
	// debounce rule still has something to compare.
	if req.Event.Type == EventTipSelected && req.Event.At.IsZero() {
		req.Event.At = s.now()
	}

	ev, err := req.Event.ToEvent()
	if err != nil {
		return nil, err
	}

	state := req.State
	if state == (State{}) {
		state = New()
	}

	next := Reduce(state, ev)
	return &ReduceResponse{State: next, Snapshot: Compute(next)}, nil
}
