package admission

import (
	"time"

	"github.com/google/uuid"
)

// Admission ties a patient to a bed for an inpatient stay.
type Admission struct {
	ID           uuid.UUID  `json:"id"`
	PatientID    uuid.UUID  `json:"patient_id"`
	DoctorID     uuid.UUID  `json:"doctor_id"`
	BedID        uuid.UUID  `json:"bed_id"`
	Diagnosis    string     `json:"diagnosis,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	AdmittedAt   time.Time  `json:"admitted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
