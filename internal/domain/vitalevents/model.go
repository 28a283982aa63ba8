package vitalevents

import (
	"time"

	"github.com/google/uuid"
)

// BirthRecord documents a delivery in the facility. The mother must be a
// registered patient; the baby gets their own patient record only if admitted.
type BirthRecord struct {
	ID              uuid.UUID `json:"id"`
	MotherPatientID uuid.UUID `json:"mother_patient_id"`
	BabyName        string    `json:"baby_name,omitempty"`
	Gender          string    `json:"gender"`
	WeightKg        *float64  `json:"weight_kg,omitempty"`
	BornAt          time.Time `json:"born_at"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeathRecord documents a patient death. Registering one also flags the
// patient record as deceased.
type DeathRecord struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	DiedAt    time.Time `json:"died_at"`
	Cause     string    `json:"cause,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
