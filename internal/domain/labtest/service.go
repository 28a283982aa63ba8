package labtest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeville/hms/pkg/pagination"
)

var validStatuses = map[string]bool{
	"requested":   true,
	"in-progress": true,
	"completed":   true,
	"cancelled":   true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(lt *LabTest) error {
	if lt.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if lt.TestName == "" {
		return fmt.Errorf("test_name is required")
	}
	if lt.Status == "" {
		lt.Status = "requested"
	}
	if !validStatuses[lt.Status] {
		return fmt.Errorf("invalid status: %s", lt.Status)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, lt *LabTest) error {
	if err := s.validate(lt); err != nil {
		return err
	}
	if lt.RequestedAt.IsZero() {
		lt.RequestedAt = time.Now()
	}
	return s.repo.Create(ctx, lt)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*LabTest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, lt *LabTest) error {
	if err := s.validate(lt); err != nil {
		return err
	}
	return s.repo.Update(ctx, lt)
}

// Complete records the result and stamps the completion time.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, result string) (*LabTest, error) {
	lt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lt.Status == "cancelled" {
		return nil, fmt.Errorf("cannot complete a cancelled test")
	}
	if result == "" {
		return nil, fmt.Errorf("result is required")
	}
	now := time.Now()
	lt.Status = "completed"
	lt.Result = result
	lt.CompletedAt = &now
	if err := s.repo.Update(ctx, lt); err != nil {
		return nil, err
	}
	return lt, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status string, pg pagination.Params) ([]*LabTest, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.List(ctx, status, pg)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabTest, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) CountOpen(ctx context.Context) (int, error) {
	return s.repo.CountOpen(ctx)
}
