package vitalevents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validGenders = map[string]bool{
	"male":    true,
	"female":  true,
	"other":   true,
	"unknown": true,
}

type Service struct {
	births   BirthRepository
	deaths   DeathRepository
	patients PatientMarker
}

func NewService(births BirthRepository, deaths DeathRepository, patients PatientMarker) *Service {
	return &Service{births: births, deaths: deaths, patients: patients}
}

// -- Births --

func (s *Service) RegisterBirth(ctx context.Context, b *BirthRecord) error {
	if b.MotherPatientID == uuid.Nil {
		return fmt.Errorf("mother_patient_id is required")
	}
	if b.Gender == "" {
		b.Gender = "unknown"
	}
	if !validGenders[b.Gender] {
		return fmt.Errorf("invalid gender: %s", b.Gender)
	}
	if b.WeightKg != nil && (*b.WeightKg <= 0 || *b.WeightKg > 10) {
		return fmt.Errorf("weight_kg out of range")
	}
	if b.BornAt.IsZero() {
		b.BornAt = time.Now()
	}
	if b.BornAt.After(time.Now()) {
		return fmt.Errorf("born_at cannot be in the future")
	}
	return s.births.Create(ctx, b)
}

func (s *Service) GetBirth(ctx context.Context, id uuid.UUID) (*BirthRecord, error) {
	return s.births.GetByID(ctx, id)
}

func (s *Service) DeleteBirth(ctx context.Context, id uuid.UUID) error {
	return s.births.Delete(ctx, id)
}

func (s *Service) ListBirths(ctx context.Context, limit, offset int) ([]*BirthRecord, int, error) {
	return s.births.List(ctx, limit, offset)
}

func (s *Service) CountBirthsSince(ctx context.Context, since time.Time) (int, error) {
	return s.births.CountSince(ctx, since)
}

// -- Deaths --

// RegisterDeath writes the register entry, then flags the patient as
// deceased. A failed flag unwinds the entry so neither side is left half
// registered.
func (s *Service) RegisterDeath(ctx context.Context, d *DeathRecord) error {
	if d.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if d.DiedAt.IsZero() {
		d.DiedAt = time.Now()
	}
	if d.DiedAt.After(time.Now()) {
		return fmt.Errorf("died_at cannot be in the future")
	}
	if err := s.deaths.Create(ctx, d); err != nil {
		return err
	}
	if err := s.patients.MarkDeceased(ctx, d.PatientID, d.DiedAt); err != nil {
		s.deaths.Delete(ctx, d.ID)
		return fmt.Errorf("mark patient deceased: %w", err)
	}
	return nil
}

func (s *Service) GetDeath(ctx context.Context, id uuid.UUID) (*DeathRecord, error) {
	return s.deaths.GetByID(ctx, id)
}

func (s *Service) DeleteDeath(ctx context.Context, id uuid.UUID) error {
	return s.deaths.Delete(ctx, id)
}

func (s *Service) ListDeaths(ctx context.Context, limit, offset int) ([]*DeathRecord, int, error) {
	return s.deaths.List(ctx, limit, offset)
}

func (s *Service) CountDeathsSince(ctx context.Context, since time.Time) (int, error) {
	return s.deaths.CountSince(ctx, since)
}
