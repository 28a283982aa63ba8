package symptom

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type mockRepo struct {
	nextID int64
	types  map[int64]*SymptomType
}

func newMockRepo() *mockRepo {
	return &mockRepo{types: make(map[int64]*SymptomType)}
}

func (m *mockRepo) Create(_ context.Context, s *SymptomType) error {
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	m.types[s.ID] = s
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*SymptomType, error) {
	s, ok := m.types[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return s, nil
}

func (m *mockRepo) Update(_ context.Context, s *SymptomType) error {
	if _, ok := m.types[s.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.types[s.ID] = s
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	delete(m.types, id)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*SymptomType, error) {
	var result []*SymptomType
	for _, s := range m.types {
		result = append(result, s)
	}
	return result, nil
}

func TestCreateSymptomType(t *testing.T) {
	svc := NewService(newMockRepo())
	st := &SymptomType{Name: "Fever", Description: "Elevated body temperature"}
	if err := svc.Create(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ID == 0 {
		t.Error("expected serial id to be assigned")
	}
}

func TestCreateSymptomType_MissingName(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), &SymptomType{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestUpdateSymptomType(t *testing.T) {
	svc := NewService(newMockRepo())
	st := &SymptomType{Name: "Fever"}
	svc.Create(context.Background(), st)

	st.Description = "Temperature above 38C"
	if err := svc.Update(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := svc.Get(context.Background(), st.ID)
	if got.Description != "Temperature above 38C" {
		t.Errorf("expected updated description, got %q", got.Description)
	}
}

func TestDeleteSymptomType(t *testing.T) {
	svc := NewService(newMockRepo())
	st := &SymptomType{Name: "Cough"}
	svc.Create(context.Background(), st)
	if err := svc.Delete(context.Background(), st.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), st.ID); err == nil {
		t.Error("expected error fetching deleted symptom type")
	}
}
