package hmsclient

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Forms hold raw string input the way it arrives from UI controls. Validate
// checks the strings; Normalize converts them into the typed wire payload.
// Select controls submit IDs as strings, so numeric coercion happens here,
// not at the call site.

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s()-]{6,19}$`)

// PatientForm is the registration dialog payload. Vital signs arrive as raw
// text inputs: an empty field means the measurement was never taken and maps
// to a nil pointer, while "0" is a recorded zero.
type PatientForm struct {
	FirstName     string
	LastName      string
	Gender        string
	DateOfBirth   string
	Phone         string
	Email         string
	Address       string
	BloodGroup    string
	MaritalStatus string
	TemperatureC  string
	BPSystolic    string
	BPDiastolic   string
	WeightKg      string
	SpO2          string
}

func (f *PatientForm) Validate() error {
	if strings.TrimSpace(f.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if f.DateOfBirth == "" {
		return fmt.Errorf("date of birth is required")
	}
	if _, err := time.Parse("2006-01-02", f.DateOfBirth); err != nil {
		return fmt.Errorf("invalid date of birth: %s", f.DateOfBirth)
	}
	if f.Phone != "" && !phoneRe.MatchString(f.Phone) {
		return fmt.Errorf("invalid phone number")
	}
	if f.TemperatureC != "" {
		v, err := strconv.ParseFloat(f.TemperatureC, 64)
		if err != nil || v < 20 || v > 45 {
			return fmt.Errorf("invalid temperature: %s", f.TemperatureC)
		}
	}
	if f.BPSystolic != "" {
		if _, err := strconv.Atoi(f.BPSystolic); err != nil {
			return fmt.Errorf("invalid systolic pressure: %s", f.BPSystolic)
		}
	}
	if f.BPDiastolic != "" {
		if _, err := strconv.Atoi(f.BPDiastolic); err != nil {
			return fmt.Errorf("invalid diastolic pressure: %s", f.BPDiastolic)
		}
	}
	if f.WeightKg != "" {
		if _, err := strconv.ParseFloat(f.WeightKg, 64); err != nil {
			return fmt.Errorf("invalid weight: %s", f.WeightKg)
		}
	}
	if f.SpO2 != "" {
		v, err := strconv.Atoi(f.SpO2)
		if err != nil || v < 0 || v > 100 {
			return fmt.Errorf("spo2 must be between 0 and 100")
		}
	}
	return nil
}

func (f *PatientForm) Normalize() (Patient, error) {
	if err := f.Validate(); err != nil {
		return Patient{}, err
	}
	dob, _ := time.Parse("2006-01-02", f.DateOfBirth)
	return Patient{
		FirstName:     strings.TrimSpace(f.FirstName),
		LastName:      strings.TrimSpace(f.LastName),
		Gender:        f.Gender,
		DateOfBirth:   dob,
		Phone:         strings.TrimSpace(f.Phone),
		Email:         strings.TrimSpace(f.Email),
		Address:       strings.TrimSpace(f.Address),
		BloodGroup:    f.BloodGroup,
		MaritalStatus: f.MaritalStatus,
		TemperatureC:  optFloat(f.TemperatureC),
		BPSystolic:    optInt(f.BPSystolic),
		BPDiastolic:   optInt(f.BPDiastolic),
		WeightKg:      optFloat(f.WeightKg),
		SpO2:          optInt(f.SpO2),
	}, nil
}

// optFloat and optInt coerce optional numeric inputs after Validate has
// checked them: empty stays nil, anything else becomes a recorded value.

func optFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, _ := strconv.ParseFloat(s, 64)
	return &v
}

func optInt(s string) *int {
	if s == "" {
		return nil
	}
	v, _ := strconv.Atoi(s)
	return &v
}

// AppointmentForm is the scheduling dialog payload. Patient and doctor come
// from select controls, the timestamp from separate date and time inputs.
type AppointmentForm struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Reason    string
}

func (f *AppointmentForm) Validate() error {
	if f.PatientID == "" {
		return fmt.Errorf("patient is required")
	}
	if f.DoctorID == "" {
		return fmt.Errorf("doctor is required")
	}
	if f.Date == "" || f.Time == "" {
		return fmt.Errorf("date and time are required")
	}
	if _, err := time.Parse("2006-01-02 15:04", f.Date+" "+f.Time); err != nil {
		return fmt.Errorf("invalid date or time")
	}
	return nil
}

func (f *AppointmentForm) Normalize() (Appointment, error) {
	if err := f.Validate(); err != nil {
		return Appointment{}, err
	}
	at, _ := time.Parse("2006-01-02 15:04", f.Date+" "+f.Time)
	return Appointment{
		PatientID:   f.PatientID,
		DoctorID:    f.DoctorID,
		ScheduledAt: at,
		Reason:      strings.TrimSpace(f.Reason),
	}, nil
}

// BedForm is the add-bed dialog payload. Type and group arrive as string
// select values and must coerce to numeric IDs.
type BedForm struct {
	Number     string
	BedTypeID  string
	BedGroupID string
	Notes      string
}

func (f *BedForm) Validate() error {
	if strings.TrimSpace(f.Number) == "" {
		return fmt.Errorf("bed number is required")
	}
	if f.BedTypeID == "" {
		return fmt.Errorf("bed type is required")
	}
	if _, err := strconv.ParseInt(f.BedTypeID, 10, 64); err != nil {
		return fmt.Errorf("invalid bed type: %s", f.BedTypeID)
	}
	if f.BedGroupID == "" {
		return fmt.Errorf("bed group is required")
	}
	if _, err := strconv.ParseInt(f.BedGroupID, 10, 64); err != nil {
		return fmt.Errorf("invalid bed group: %s", f.BedGroupID)
	}
	return nil
}

func (f *BedForm) Normalize() (Bed, error) {
	if err := f.Validate(); err != nil {
		return Bed{}, err
	}
	typeID, _ := strconv.ParseInt(f.BedTypeID, 10, 64)
	groupID, _ := strconv.ParseInt(f.BedGroupID, 10, 64)
	return Bed{
		Number:     strings.TrimSpace(f.Number),
		BedTypeID:  typeID,
		BedGroupID: groupID,
		Notes:      strings.TrimSpace(f.Notes),
	}, nil
}
