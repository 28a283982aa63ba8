package overview

// Stats is the dashboard summary: headline counts across the whole facility.
type Stats struct {
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
