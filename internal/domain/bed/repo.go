package bed

import (
	"context"

	"github.com/google/uuid"
)

type TypeRepository interface {
	Create(ctx context.Context, t *BedType) error
	List(ctx context.Context) ([]*BedType, error)
	Delete(ctx context.Context, id int64) error
}

type GroupRepository interface {
	Create(ctx context.Context, g *BedGroup) error
	List(ctx context.Context) ([]*BedGroup, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Create(ctx context.Context, b *Bed) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bed, error)
	Update(ctx context.Context, b *Bed) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Bed, int, error)
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*Bed, int, error)
	MarkOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
	CountByOccupancy(ctx context.Context) (occupied, free int, err error)
}
