package hmsclient

import "time"

// Wire types mirror the server's JSON. They are kept separate from the
// server's internal models so external consumers of this package do not need
// access to server internals.

type Patient struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Gender        string     `json:"gender"`
	DateOfBirth   time.Time  `json:"date_of_birth"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	BloodGroup    string     `json:"blood_group,omitempty"`
	MaritalStatus string     `json:"marital_status,omitempty"`
	TemperatureC  *float64   `json:"temperature_c,omitempty"`
	BPSystolic    *int       `json:"bp_systolic,omitempty"`
	BPDiastolic   *int       `json:"bp_diastolic,omitempty"`
	WeightKg      *float64   `json:"weight_kg,omitempty"`
	SpO2          *int       `json:"spo2,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	DeceasedAt    *time.Time `json:"deceased_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Doctor struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BedType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BedGroup struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Floor     string    `json:"floor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Bed struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	BedTypeID  int64     `json:"bed_type_id"`
	BedGroupID int64     `json:"bed_group_id"`
	Occupied   bool      `json:"occupied"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LabTest struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	DoctorID    *string    `json:"doctor_id,omitempty"`
	TestName    string     `json:"test_name"`
	Status      string     `json:"status"`
	Result      string     `json:"result,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Admission struct {
	ID           string     `json:"id"`
	PatientID    string     `json:"patient_id"`
	DoctorID     string     `json:"doctor_id"`
	BedID        string     `json:"bed_id"`
	Diagnosis    string     `json:"diagnosis,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	AdmittedAt   time.Time  `json:"admitted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type BirthRecord struct {
	ID              string    `json:"id"`
	MotherPatientID string    `json:"mother_patient_id"`
	BabyName        string    `json:"baby_name,omitempty"`
	Gender          string    `json:"gender"`
	WeightKg        *float64  `json:"weight_kg,omitempty"`
	BornAt          time.Time `json:"born_at"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DeathRecord struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DiedAt    time.Time `json:"died_at"`
	Cause     string    `json:"cause,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SymptomType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type OverviewStats struct {
	Patients          int `json:"patients"`
	Doctors           int `json:"doctors"`
	AppointmentsToday int `json:"appointments_today"`
	OccupiedBeds      int `json:"occupied_beds"`
	FreeBeds          int `json:"free_beds"`
	OpenLabTests      int `json:"open_lab_tests"`
	ActiveAdmissions  int `json:"active_admissions"`
	BirthsThisMonth   int `json:"births_this_month"`
	DeathsThisMonth   int `json:"deaths_this_month"`
}

// Page is the server's paginated list envelope.
type Page[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
