package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	"scheduled": true, "confirmed": true, "completed": true,
	"cancelled": true, "no-show": true,
}

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled_at is required")
	}
	if a.Status == "" {
		a.Status = "scheduled"
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if a.Status != "" && !validStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return s.appointments.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByDoctor(ctx, doctorID, limit, offset)
}

// Cancel marks an appointment cancelled, keeping the record for history views.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Status = "cancelled"
	if reason != "" {
		a.Notes = &reason
	}
	return s.appointments.Update(ctx, a)
}

func (s *Service) CountOnDay(ctx context.Context, day time.Time) (int, error) {
	return s.appointments.CountOnDay(ctx, day)
}
