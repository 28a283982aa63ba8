package symptom

import "time"

// SymptomType is a catalog entry clinicians pick from when recording
// presenting complaints.
type SymptomType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
