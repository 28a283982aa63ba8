package resourcecache

import (
	"context"
	"errors"
	"sync"
)

// ErrSubmissionInFlight is returned when a submission starts while another is
// still running. Callers surface it as a disabled submit control.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// Validator is any form that can check itself before submission.
type Validator interface {
	Validate() error
}

// Submitter serializes a dialog's write path: validate, run the mutation,
// then refresh the owning cache exactly once on success.
type Submitter struct {
	mu      sync.Mutex
	pending bool
}

// Pending reports whether a submission is running.
func (s *Submitter) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Submit runs one submission. form may be nil when there is nothing to
// validate. onSuccess runs only when action returned nil, and exactly once.
func (s *Submitter) Submit(ctx context.Context, form Validator, action func(context.Context) error, onSuccess func(context.Context)) error {
	if form != nil {
		if err := form.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.pending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	if err := action(ctx); err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}
