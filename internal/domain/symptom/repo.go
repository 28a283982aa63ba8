package symptom

import "context"

type Repository interface {
	Create(ctx context.Context, s *SymptomType) error
	GetByID(ctx context.Context, id int64) (*SymptomType, error)
	Update(ctx context.Context, s *SymptomType) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*SymptomType, error)
}
