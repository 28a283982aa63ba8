package admission

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	admissions map[uuid.UUID]*Admission
}

func newMockRepo() *mockRepo {
	return &mockRepo{admissions: make(map[uuid.UUID]*Admission)}
}

func (m *mockRepo) Create(_ context.Context, a *Admission) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.admissions[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Admission, error) {
	a, ok := m.admissions[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) Update(_ context.Context, a *Admission) error {
	if _, ok := m.admissions[a.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.admissions[a.ID] = a
	return nil
}

func (m *mockRepo) List(_ context.Context, status string, limit, offset int) ([]*Admission, int, error) {
	var result []*Admission
	for _, a := range m.admissions {
		if status != "" && a.Status != status {
			continue
		}
		result = append(result, a)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	var result []*Admission
	for _, a := range m.admissions {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, a := range m.admissions {
		if a.Status == "admitted" {
			count++
		}
	}
	return count, nil
}

type mockAllocator struct {
	occupied map[uuid.UUID]bool
	failNext bool
}

func newMockAllocator() *mockAllocator {
	return &mockAllocator{occupied: make(map[uuid.UUID]bool)}
}

func (m *mockAllocator) MarkOccupied(_ context.Context, id uuid.UUID, occupied bool) error {
	if m.failNext {
		m.failNext = false
		return fmt.Errorf("bed unavailable")
	}
	m.occupied[id] = occupied
	return nil
}

func TestAdmit_OccupiesBed(t *testing.T) {
	repo := newMockRepo()
	beds := newMockAllocator()
	svc := NewService(repo, beds)

	a := &Admission{PatientID: uuid.New(), DoctorID: uuid.New(), BedID: uuid.New(), Diagnosis: "pneumonia"}
	if err := svc.Admit(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != "admitted" {
		t.Errorf("expected status admitted, got %s", a.Status)
	}
	if a.AdmittedAt.IsZero() {
		t.Error("expected admitted_at to be stamped")
	}
	if !beds.occupied[a.BedID] {
		t.Error("expected bed to be marked occupied")
	}
}

func TestAdmit_BedAllocationFails(t *testing.T) {
	repo := newMockRepo()
	beds := newMockAllocator()
	beds.failNext = true
	svc := NewService(repo, beds)

	a := &Admission{PatientID: uuid.New(), DoctorID: uuid.New(), BedID: uuid.New()}
	if err := svc.Admit(context.Background(), a); err == nil {
		t.Fatal("expected error when bed allocation fails")
	}
	if len(repo.admissions) != 0 {
		t.Error("expected no admission record when bed allocation fails")
	}
}

func TestAdmit_MissingBed(t *testing.T) {
	svc := NewService(newMockRepo(), newMockAllocator())
	a := &Admission{PatientID: uuid.New(), DoctorID: uuid.New()}
	if err := svc.Admit(context.Background(), a); err == nil {
		t.Error("expected error for missing bed_id")
	}
}

func TestDischarge_FreesBed(t *testing.T) {
	repo := newMockRepo()
	beds := newMockAllocator()
	svc := NewService(repo, beds)

	a := &Admission{PatientID: uuid.New(), DoctorID: uuid.New(), BedID: uuid.New()}
	svc.Admit(context.Background(), a)

	out, err := svc.Discharge(context.Background(), a.ID, "recovered")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "discharged" {
		t.Errorf("expected status discharged, got %s", out.Status)
	}
	if out.DischargedAt == nil {
		t.Error("expected discharged_at to be set")
	}
	if beds.occupied[a.BedID] {
		t.Error("expected bed to be freed")
	}
}

func TestDischarge_AlreadyDischarged(t *testing.T) {
	svc := NewService(newMockRepo(), newMockAllocator())
	a := &Admission{PatientID: uuid.New(), DoctorID: uuid.New(), BedID: uuid.New()}
	svc.Admit(context.Background(), a)
	svc.Discharge(context.Background(), a.ID, "")

	if _, err := svc.Discharge(context.Background(), a.ID, ""); err == nil {
		t.Error("expected error on double discharge")
	}
}

func TestCountActive(t *testing.T) {
	svc := NewService(newMockRepo(), newMockAllocator())
	first := &Admission{PatientID: uuid.New(), DoctorID: uuid.New(), BedID: uuid.New()}
	second := &Admission{PatientID: uuid.New(), DoctorID: uuid.New(), BedID: uuid.New()}
	svc.Admit(context.Background(), first)
	svc.Admit(context.Background(), second)
	svc.Discharge(context.Background(), second.ID, "")

	count, err := svc.CountActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 active admission, got %d", count)
	}
}
