package bed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	types  TypeRepository
	groups GroupRepository
	beds   Repository
}

func NewService(types TypeRepository, groups GroupRepository, beds Repository) *Service {
	return &Service{types: types, groups: groups, beds: beds}
}

// -- Bed types --

func (s *Service) CreateType(ctx context.Context, t *BedType) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.types.Create(ctx, t)
}

func (s *Service) ListTypes(ctx context.Context) ([]*BedType, error) {
	return s.types.List(ctx)
}

func (s *Service) DeleteType(ctx context.Context, id int64) error {
	return s.types.Delete(ctx, id)
}

// -- Bed groups --

func (s *Service) CreateGroup(ctx context.Context, g *BedGroup) error {
	if g.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.groups.Create(ctx, g)
}

func (s *Service) ListGroups(ctx context.Context) ([]*BedGroup, error) {
	return s.groups.List(ctx)
}

func (s *Service) DeleteGroup(ctx context.Context, id int64) error {
	return s.groups.Delete(ctx, id)
}

// -- Beds --

func (s *Service) Create(ctx context.Context, b *Bed) error {
	if b.Number == "" {
		return fmt.Errorf("number is required")
	}
	if b.BedTypeID == 0 {
		return fmt.Errorf("bed_type_id is required")
	}
	if b.BedGroupID == 0 {
		return fmt.Errorf("bed_group_id is required")
	}
	return s.beds.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bed, error) {
	return s.beds.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, b *Bed) error {
	if b.Number == "" {
		return fmt.Errorf("number is required")
	}
	return s.beds.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.beds.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Occupied {
		return fmt.Errorf("cannot delete an occupied bed")
	}
	return s.beds.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Bed, int, error) {
	return s.beds.List(ctx, limit, offset)
}

func (s *Service) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*Bed, int, error) {
	return s.beds.ListByGroup(ctx, groupID, limit, offset)
}

// MarkOccupied flips the occupancy flag; admissions call this when a bed is
// assigned or released.
func (s *Service) MarkOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	return s.beds.MarkOccupied(ctx, id, occupied)
}

func (s *Service) CountByOccupancy(ctx context.Context) (int, int, error) {
	return s.beds.CountByOccupancy(ctx)
}
