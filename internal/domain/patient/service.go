package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true, "unknown": true,
}

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) SearchByName(ctx context.Context, term string, limit, offset int) ([]*Patient, int, error) {
	return s.patients.SearchByName(ctx, term, limit, offset)
}

// MarkDeceased stamps the patient record when a death is registered.
func (s *Service) MarkDeceased(ctx context.Context, id uuid.UUID, diedAt time.Time) error {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.DeceasedAt = &diedAt
	return s.patients.Update(ctx, p)
}

func validate(p *Patient) error {
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("date_of_birth is required")
	}
	if p.DateOfBirth.After(time.Now()) {
		return fmt.Errorf("date_of_birth cannot be in the future")
	}
	if p.Gender == "" {
		p.Gender = "unknown"
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	if p.SpO2 != nil && (*p.SpO2 < 0 || *p.SpO2 > 100) {
		return fmt.Errorf("spo2 must be between 0 and 100")
	}
	if p.TemperatureC != nil && (*p.TemperatureC < 20 || *p.TemperatureC > 45) {
		return fmt.Errorf("temperature_c out of range")
	}
	return nil
}
