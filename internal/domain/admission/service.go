package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	"admitted":   true,
	"discharged": true,
}

type Service struct {
	repo Repository
	beds BedAllocator
}

func NewService(repo Repository, beds BedAllocator) *Service {
	return &Service{repo: repo, beds: beds}
}

// Admit creates the admission record and occupies the bed. If the bed cannot
// be marked occupied the admission is not recorded.
func (s *Service) Admit(ctx context.Context, a *Admission) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.BedID == uuid.Nil {
		return fmt.Errorf("bed_id is required")
	}
	a.Status = "admitted"
	if a.AdmittedAt.IsZero() {
		a.AdmittedAt = time.Now()
	}
	if err := s.beds.MarkOccupied(ctx, a.BedID, true); err != nil {
		return fmt.Errorf("allocate bed: %w", err)
	}
	return s.repo.Create(ctx, a)
}

// Discharge closes the admission and frees the bed.
func (s *Service) Discharge(ctx context.Context, id uuid.UUID, notes string) (*Admission, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == "discharged" {
		return nil, fmt.Errorf("patient is already discharged")
	}
	now := time.Now()
	a.Status = "discharged"
	a.DischargedAt = &now
	if notes != "" {
		a.Notes = notes
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	if err := s.beds.MarkOccupied(ctx, a.BedID, false); err != nil {
		return nil, fmt.Errorf("release bed: %w", err)
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Admission) error {
	if a.Status != "" && !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Admission, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}
