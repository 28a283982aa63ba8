package symptom

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, st *SymptomType) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, st)
}

func (s *Service) Get(ctx context.Context, id int64) (*SymptomType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, st *SymptomType) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, st)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*SymptomType, error) {
	return s.repo.List(ctx)
}
