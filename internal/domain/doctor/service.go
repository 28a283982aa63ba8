package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if d.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if d.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	d.Active = true
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return fmt.Errorf("name is required")
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) ListBySpecialty(ctx context.Context, specialty string, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.ListBySpecialty(ctx, specialty, limit, offset)
}
