package vitalevents

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BirthRepository interface {
	Create(ctx context.Context, b *BirthRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*BirthRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*BirthRecord, int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

type DeathRepository interface {
	Create(ctx context.Context, d *DeathRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*DeathRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*DeathRecord, int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// PatientMarker is the slice of the patient service death registration needs.
type PatientMarker interface {
	MarkDeceased(ctx context.Context, id uuid.UUID, diedAt time.Time) error
}
