package labtest

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeville/hms/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, lt *LabTest) error
	GetByID(ctx context.Context, id uuid.UUID) (*LabTest, error)
	Update(ctx context.Context, lt *LabTest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status string, pg pagination.Params) ([]*LabTest, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabTest, int, error)
	CountOpen(ctx context.Context) (int, error)
}
