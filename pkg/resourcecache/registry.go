package resourcecache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lifeville/hms/pkg/hmsclient"
)

// Registry is the full set of caches an application session works with, one
// per list-shaped resource. Lab tests are deliberately absent: that screen is
// server-paged and fetched per page through the client directly.
type Registry struct {
	Patients     *Cache[[]hmsclient.Patient]
	Doctors      *Cache[[]hmsclient.Doctor]
	Appointments *Cache[[]hmsclient.Appointment]
	BedTypes     *Cache[[]hmsclient.BedType]
	BedGroups    *Cache[[]hmsclient.BedGroup]
	Beds         *Cache[[]hmsclient.Bed]
	Admissions   *Cache[[]hmsclient.Admission]
	Births       *Cache[[]hmsclient.BirthRecord]
	Deaths       *Cache[[]hmsclient.DeathRecord]
	SymptomTypes *Cache[[]hmsclient.SymptomType]
	Overview     *Cache[hmsclient.OverviewStats]
}

// fetchPageSize is the window each eager fetch requests. The server caps list
// windows, so caches accumulate pages until the server reports no more;
// screens backed by these caches show the whole collection.
const fetchPageSize = 100

func fetchAll[T any](ctx context.Context, list func(ctx context.Context, limit, offset int) (*hmsclient.Page[T], error)) ([]T, error) {
	var all []T
	for offset := 0; ; offset += fetchPageSize {
		page, err := list(ctx, fetchPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		if !page.HasMore || len(page.Data) == 0 {
			return all, nil
		}
	}
}

func NewRegistry(client *hmsclient.Client, log zerolog.Logger) *Registry {
	return &Registry{
		Patients: New("patients", func(ctx context.Context) ([]hmsclient.Patient, error) {
			return fetchAll(ctx, client.ListPatients)
		}, log),
		Doctors: New("doctors", func(ctx context.Context) ([]hmsclient.Doctor, error) {
			return fetchAll(ctx, client.ListDoctors)
		}, log),
		Appointments: New("appointments", func(ctx context.Context) ([]hmsclient.Appointment, error) {
			return fetchAll(ctx, client.ListAppointments)
		}, log),
		BedTypes: New("bed_types", func(ctx context.Context) ([]hmsclient.BedType, error) {
			return client.ListBedTypes(ctx)
		}, log),
		BedGroups: New("bed_groups", func(ctx context.Context) ([]hmsclient.BedGroup, error) {
			return client.ListBedGroups(ctx)
		}, log),
		Beds: New("beds", func(ctx context.Context) ([]hmsclient.Bed, error) {
			return fetchAll(ctx, client.ListBeds)
		}, log),
		Admissions: New("admissions", func(ctx context.Context) ([]hmsclient.Admission, error) {
			return fetchAll(ctx, client.ListAdmissions)
		}, log),
		Births: New("births", func(ctx context.Context) ([]hmsclient.BirthRecord, error) {
			return fetchAll(ctx, client.ListBirths)
		}, log),
		Deaths: New("deaths", func(ctx context.Context) ([]hmsclient.DeathRecord, error) {
			return fetchAll(ctx, client.ListDeaths)
		}, log),
		SymptomTypes: New("symptom_types", func(ctx context.Context) ([]hmsclient.SymptomType, error) {
			return client.ListSymptomTypes(ctx)
		}, log),
		Overview: New("overview", func(ctx context.Context) (hmsclient.OverviewStats, error) {
			stats, err := client.Overview(ctx)
			if err != nil {
				return hmsclient.OverviewStats{}, err
			}
			return *stats, nil
		}, log),
	}
}

// WarmUp runs the initial fetch for every cache concurrently and waits for
// all of them. Individual failures are logged by the caches; a session starts
// with whatever loaded.
func (r *Registry) WarmUp(ctx context.Context) {
	var wg sync.WaitGroup
	for _, refresh := range []func(context.Context){
		r.Patients.Refresh,
		r.Doctors.Refresh,
		r.Appointments.Refresh,
		r.BedTypes.Refresh,
		r.BedGroups.Refresh,
		r.Beds.Refresh,
		r.Admissions.Refresh,
		r.Births.Refresh,
		r.Deaths.Refresh,
		r.SymptomTypes.Refresh,
		r.Overview.Refresh,
	} {
		wg.Add(1)
		go func(fn func(context.Context)) {
			defer wg.Done()
			fn(ctx)
		}(refresh)
	}
	wg.Wait()
}
