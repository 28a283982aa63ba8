package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Optional vital-sign fields are pointers:
// a nil value means the measurement was never recorded, which is distinct
// from a recorded zero.
type Patient struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Gender        string     `db:"gender" json:"gender"`
	DateOfBirth   time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Phone         *string    `db:"phone" json:"phone,omitempty"`
	Email         *string    `db:"email" json:"email,omitempty"`
	Address       *string    `db:"address" json:"address,omitempty"`
	BloodGroup    *string    `db:"blood_group" json:"blood_group,omitempty"`
	MaritalStatus *string    `db:"marital_status" json:"marital_status,omitempty"`
	TemperatureC  *float64   `db:"temperature_c" json:"temperature_c,omitempty"`
	BPSystolic    *int       `db:"bp_systolic" json:"bp_systolic,omitempty"`
	BPDiastolic   *int       `db:"bp_diastolic" json:"bp_diastolic,omitempty"`
	WeightKg      *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	SpO2          *int       `db:"spo2" json:"spo2,omitempty"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	DeceasedAt    *time.Time `db:"deceased_at" json:"deceased_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name used in lists and dialogs.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
