package resourcecache

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type stubForm struct {
	err error
}

func (f stubForm) Validate() error { return f.err }

func TestSubmit_RefreshesOnceOnSuccess(t *testing.T) {
	var s Submitter
	refreshes := 0
	err := s.Submit(context.Background(), stubForm{},
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) { refreshes++ })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshes != 1 {
		t.Errorf("expected exactly 1 refresh, got %d", refreshes)
	}
}

func TestSubmit_InvalidFormBlocksAction(t *testing.T) {
	var s Submitter
	ran := false
	err := s.Submit(context.Background(), stubForm{err: fmt.Errorf("name is required")},
		func(ctx context.Context) error { ran = true; return nil },
		nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if ran {
		t.Error("expected action not to run for invalid form")
	}
}

func TestSubmit_NoRefreshOnFailure(t *testing.T) {
	var s Submitter
	refreshes := 0
	err := s.Submit(context.Background(), nil,
		func(ctx context.Context) error { return fmt.Errorf("server rejected it") },
		func(ctx context.Context) { refreshes++ })
	if err == nil {
		t.Fatal("expected error")
	}
	if refreshes != 0 {
		t.Errorf("expected no refresh on failure, got %d", refreshes)
	}
}

func TestSubmit_RejectsOverlap(t *testing.T) {
	var s Submitter
	inAction := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.Submit(context.Background(), nil, func(ctx context.Context) error {
			close(inAction)
			<-release
			return nil
		}, nil)
	}()

	<-inAction
	if !s.Pending() {
		t.Error("expected pending while submission runs")
	}
	err := s.Submit(context.Background(), nil, func(ctx context.Context) error { return nil }, nil)
	if !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Pending() {
		t.Error("expected not pending after submission finished")
	}

	// A new submission is allowed once the first finished.
	if err := s.Submit(context.Background(), nil, func(ctx context.Context) error { return nil }, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
