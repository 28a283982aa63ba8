package hmsclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func listQuery(limit, offset int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

// -- Patients --

func (c *Client) ListPatients(ctx context.Context, limit, offset int) (*Page[Patient], error) {
	var page Page[Patient]
	if err := c.do(ctx, http.MethodGet, "/patients", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetPatient(ctx context.Context, id string) (*Patient, error) {
	var p Patient
	if err := c.do(ctx, http.MethodGet, "/patients/"+id, nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePatient(ctx context.Context, p Patient) (*Patient, error) {
	var env mutation[Patient]
	if err := c.do(ctx, http.MethodPost, "/patients", nil, p, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, p Patient) (*Patient, error) {
	var env mutation[Patient]
	if err := c.do(ctx, http.MethodPut, "/patients/"+id, nil, p, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/patients/"+id, nil, nil, nil)
}

// -- Doctors --

func (c *Client) ListDoctors(ctx context.Context, limit, offset int) (*Page[Doctor], error) {
	var page Page[Doctor]
	if err := c.do(ctx, http.MethodGet, "/doctors", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	var d Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+id, nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateDoctor(ctx context.Context, d Doctor) (*Doctor, error) {
	var env mutation[Doctor]
	if err := c.do(ctx, http.MethodPost, "/doctors", nil, d, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdateDoctor(ctx context.Context, id string, d Doctor) (*Doctor, error) {
	var env mutation[Doctor]
	if err := c.do(ctx, http.MethodPut, "/doctors/"+id, nil, d, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/doctors/"+id, nil, nil, nil)
}

// -- Appointments --

func (c *Client) ListAppointments(ctx context.Context, limit, offset int) (*Page[Appointment], error) {
	var page Page[Appointment]
	if err := c.do(ctx, http.MethodGet, "/appointments", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateAppointment(ctx context.Context, a Appointment) (*Appointment, error) {
	var env mutation[Appointment]
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, a, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, a Appointment) (*Appointment, error) {
	var env mutation[Appointment]
	if err := c.do(ctx, http.MethodPut, "/appointments/"+id, nil, a, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id, reason string) (*Appointment, error) {
	body := map[string]string{"reason": reason}
	var env mutation[Appointment]
	if err := c.do(ctx, http.MethodPost, "/appointments/"+id+"/cancel", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+id, nil, nil, nil)
}

// -- Beds --

func (c *Client) ListBedTypes(ctx context.Context) ([]BedType, error) {
	var items []BedType
	if err := c.do(ctx, http.MethodGet, "/bed-types", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateBedType(ctx context.Context, t BedType) (*BedType, error) {
	var env mutation[BedType]
	if err := c.do(ctx, http.MethodPost, "/bed-types", nil, t, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteBedType(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/bed-types/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ListBedGroups(ctx context.Context) ([]BedGroup, error) {
	var items []BedGroup
	if err := c.do(ctx, http.MethodGet, "/bed-groups", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateBedGroup(ctx context.Context, g BedGroup) (*BedGroup, error) {
	var env mutation[BedGroup]
	if err := c.do(ctx, http.MethodPost, "/bed-groups", nil, g, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteBedGroup(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/bed-groups/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ListBeds(ctx context.Context, limit, offset int) (*Page[Bed], error) {
	var page Page[Bed]
	if err := c.do(ctx, http.MethodGet, "/beds", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateBed(ctx context.Context, b Bed) (*Bed, error) {
	var env mutation[Bed]
	if err := c.do(ctx, http.MethodPost, "/beds", nil, b, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdateBed(ctx context.Context, id string, b Bed) (*Bed, error) {
	var env mutation[Bed]
	if err := c.do(ctx, http.MethodPut, "/beds/"+id, nil, b, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteBed(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/beds/"+id, nil, nil, nil)
}

// -- Lab tests --

// ListLabTestsParams selects a page of lab tests. Page is 1-based; Search
// filters on test name.
type ListLabTestsParams struct {
	Page     int
	PageSize int
	Search   string
	Status   string
}

func (c *Client) ListLabTests(ctx context.Context, params ListLabTestsParams) (*Page[LabTest], error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	var page Page[LabTest]
	if err := c.do(ctx, http.MethodGet, "/lab-tests", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateLabTest(ctx context.Context, lt LabTest) (*LabTest, error) {
	var env mutation[LabTest]
	if err := c.do(ctx, http.MethodPost, "/lab-tests", nil, lt, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) CompleteLabTest(ctx context.Context, id, result string) (*LabTest, error) {
	body := map[string]string{"result": result}
	var env mutation[LabTest]
	if err := c.do(ctx, http.MethodPost, "/lab-tests/"+id+"/complete", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteLabTest(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/lab-tests/"+id, nil, nil, nil)
}

// -- Admissions --

func (c *Client) ListAdmissions(ctx context.Context, limit, offset int) (*Page[Admission], error) {
	var page Page[Admission]
	if err := c.do(ctx, http.MethodGet, "/admissions", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) AdmitPatient(ctx context.Context, a Admission) (*Admission, error) {
	var env mutation[Admission]
	if err := c.do(ctx, http.MethodPost, "/admissions", nil, a, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DischargePatient(ctx context.Context, id, notes string) (*Admission, error) {
	body := map[string]string{"notes": notes}
	var env mutation[Admission]
	if err := c.do(ctx, http.MethodPost, "/admissions/"+id+"/discharge", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// -- Births and deaths --

func (c *Client) ListBirths(ctx context.Context, limit, offset int) (*Page[BirthRecord], error) {
	var page Page[BirthRecord]
	if err := c.do(ctx, http.MethodGet, "/births", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) RegisterBirth(ctx context.Context, b BirthRecord) (*BirthRecord, error) {
	var env mutation[BirthRecord]
	if err := c.do(ctx, http.MethodPost, "/births", nil, b, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) ListDeaths(ctx context.Context, limit, offset int) (*Page[DeathRecord], error) {
	var page Page[DeathRecord]
	if err := c.do(ctx, http.MethodGet, "/deaths", listQuery(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) RegisterDeath(ctx context.Context, d DeathRecord) (*DeathRecord, error) {
	var env mutation[DeathRecord]
	if err := c.do(ctx, http.MethodPost, "/deaths", nil, d, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// -- Symptom types --

func (c *Client) ListSymptomTypes(ctx context.Context) ([]SymptomType, error) {
	var items []SymptomType
	if err := c.do(ctx, http.MethodGet, "/symptom-types", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateSymptomType(ctx context.Context, st SymptomType) (*SymptomType, error) {
	var env mutation[SymptomType]
	if err := c.do(ctx, http.MethodPost, "/symptom-types", nil, st, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteSymptomType(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/symptom-types/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// -- Overview --

func (c *Client) Overview(ctx context.Context) (*OverviewStats, error) {
	var stats OverviewStats
	if err := c.do(ctx, http.MethodGet, "/overview", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
