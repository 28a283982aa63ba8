package labtest

import (
	"time"

	"github.com/google/uuid"
)

// LabTest is a single laboratory investigation ordered for a patient. The
// result stays empty until the lab completes the test.
type LabTest struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	DoctorID    *uuid.UUID `json:"doctor_id,omitempty"`
	TestName    string     `json:"test_name"`
	Status      string     `json:"status"`
	Result      string     `json:"result,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
