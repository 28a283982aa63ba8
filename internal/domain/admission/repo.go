package admission

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Admission) error
	GetByID(ctx context.Context, id uuid.UUID) (*Admission, error)
	Update(ctx context.Context, a *Admission) error
	List(ctx context.Context, status string, limit, offset int) ([]*Admission, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error)
	CountActive(ctx context.Context) (int, error)
}

// BedAllocator is the slice of the bed service admissions need. Admitting a
// patient occupies the bed, discharging frees it.
type BedAllocator interface {
	MarkOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}
