package vitalevents

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockBirthRepo struct {
	records map[uuid.UUID]*BirthRecord
}

func newMockBirthRepo() *mockBirthRepo {
	return &mockBirthRepo{records: make(map[uuid.UUID]*BirthRecord)}
}

func (m *mockBirthRepo) Create(_ context.Context, b *BirthRecord) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	m.records[b.ID] = b
	return nil
}

func (m *mockBirthRepo) GetByID(_ context.Context, id uuid.UUID) (*BirthRecord, error) {
	b, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return b, nil
}

func (m *mockBirthRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockBirthRepo) List(_ context.Context, limit, offset int) ([]*BirthRecord, int, error) {
	var result []*BirthRecord
	for _, b := range m.records {
		result = append(result, b)
	}
	return result, len(result), nil
}

func (m *mockBirthRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, b := range m.records {
		if !b.BornAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type mockDeathRepo struct {
	records  map[uuid.UUID]*DeathRecord
	failNext bool
}

func newMockDeathRepo() *mockDeathRepo {
	return &mockDeathRepo{records: make(map[uuid.UUID]*DeathRecord)}
}

func (m *mockDeathRepo) Create(_ context.Context, d *DeathRecord) error {
	if m.failNext {
		m.failNext = false
		return fmt.Errorf("insert failed")
	}
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	m.records[d.ID] = d
	return nil
}

func (m *mockDeathRepo) GetByID(_ context.Context, id uuid.UUID) (*DeathRecord, error) {
	d, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockDeathRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockDeathRepo) List(_ context.Context, limit, offset int) ([]*DeathRecord, int, error) {
	var result []*DeathRecord
	for _, d := range m.records {
		result = append(result, d)
	}
	return result, len(result), nil
}

func (m *mockDeathRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, d := range m.records {
		if !d.DiedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type mockPatientMarker struct {
	marked map[uuid.UUID]time.Time
	fail   bool
}

func newMockPatientMarker() *mockPatientMarker {
	return &mockPatientMarker{marked: make(map[uuid.UUID]time.Time)}
}

func (m *mockPatientMarker) MarkDeceased(_ context.Context, id uuid.UUID, diedAt time.Time) error {
	if m.fail {
		return fmt.Errorf("patient not found")
	}
	m.marked[id] = diedAt
	return nil
}

func TestRegisterBirth_Defaults(t *testing.T) {
	svc := NewService(newMockBirthRepo(), newMockDeathRepo(), newMockPatientMarker())
	b := &BirthRecord{MotherPatientID: uuid.New(), BabyName: "Baby Okafor"}
	if err := svc.RegisterBirth(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Gender != "unknown" {
		t.Errorf("expected default gender unknown, got %s", b.Gender)
	}
	if b.BornAt.IsZero() {
		t.Error("expected born_at to be stamped")
	}
}

func TestRegisterBirth_MissingMother(t *testing.T) {
	svc := NewService(newMockBirthRepo(), newMockDeathRepo(), newMockPatientMarker())
	if err := svc.RegisterBirth(context.Background(), &BirthRecord{}); err == nil {
		t.Error("expected error for missing mother_patient_id")
	}
}

func TestRegisterBirth_WeightOutOfRange(t *testing.T) {
	svc := NewService(newMockBirthRepo(), newMockDeathRepo(), newMockPatientMarker())
	weight := 15.0
	b := &BirthRecord{MotherPatientID: uuid.New(), WeightKg: &weight}
	if err := svc.RegisterBirth(context.Background(), b); err == nil {
		t.Error("expected error for weight out of range")
	}
}

func TestRegisterDeath_MarksPatient(t *testing.T) {
	marker := newMockPatientMarker()
	svc := NewService(newMockBirthRepo(), newMockDeathRepo(), marker)

	patientID := uuid.New()
	died := time.Date(2025, 3, 10, 4, 30, 0, 0, time.UTC)
	d := &DeathRecord{PatientID: patientID, DiedAt: died, Cause: "cardiac arrest"}
	if err := svc.RegisterDeath(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := marker.marked[patientID]
	if !ok {
		t.Fatal("expected patient to be marked deceased")
	}
	if !got.Equal(died) {
		t.Errorf("expected deceased time %v, got %v", died, got)
	}
}

func TestRegisterDeath_PatientMarkFails(t *testing.T) {
	marker := newMockPatientMarker()
	marker.fail = true
	deaths := newMockDeathRepo()
	svc := NewService(newMockBirthRepo(), deaths, marker)

	d := &DeathRecord{PatientID: uuid.New()}
	if err := svc.RegisterDeath(context.Background(), d); err == nil {
		t.Fatal("expected error when patient cannot be marked")
	}
	if len(deaths.records) != 0 {
		t.Error("expected no death record when marking fails")
	}
}

func TestRegisterDeath_CreateFails(t *testing.T) {
	marker := newMockPatientMarker()
	deaths := newMockDeathRepo()
	deaths.failNext = true
	svc := NewService(newMockBirthRepo(), deaths, marker)

	d := &DeathRecord{PatientID: uuid.New()}
	if err := svc.RegisterDeath(context.Background(), d); err == nil {
		t.Fatal("expected error when the record cannot be written")
	}
	if len(marker.marked) != 0 {
		t.Error("expected patient to stay unmarked when the record write fails")
	}
}

func TestRegisterDeath_FutureDate(t *testing.T) {
	svc := NewService(newMockBirthRepo(), newMockDeathRepo(), newMockPatientMarker())
	d := &DeathRecord{PatientID: uuid.New(), DiedAt: time.Now().Add(24 * time.Hour)}
	if err := svc.RegisterDeath(context.Background(), d); err == nil {
		t.Error("expected error for future died_at")
	}
}

func TestCountBirthsSince(t *testing.T) {
	svc := NewService(newMockBirthRepo(), newMockDeathRepo(), newMockPatientMarker())
	old := &BirthRecord{MotherPatientID: uuid.New(), BornAt: time.Now().AddDate(0, -2, 0)}
	recent := &BirthRecord{MotherPatientID: uuid.New(), BornAt: time.Now().AddDate(0, 0, -3)}
	svc.RegisterBirth(context.Background(), old)
	svc.RegisterBirth(context.Background(), recent)

	count, err := svc.CountBirthsSince(context.Background(), time.Now().AddDate(0, -1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 birth in the window, got %d", count)
	}
}
