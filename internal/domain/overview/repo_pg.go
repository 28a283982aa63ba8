package overview

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Stats(ctx context.Context) (*Stats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var s Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patient WHERE deceased_at IS NULL),
			(SELECT COUNT(*) FROM doctor WHERE active),
			(SELECT COUNT(*) FROM appointment WHERE scheduled_at >= $1 AND scheduled_at < $2),
			(SELECT COUNT(*) FILTER (WHERE occupied) FROM bed),
			(SELECT COUNT(*) FILTER (WHERE NOT occupied) FROM bed),
			(SELECT COUNT(*) FROM lab_test WHERE status IN ('requested', 'in-progress')),
			(SELECT COUNT(*) FROM admission WHERE status = 'admitted'),
			(SELECT COUNT(*) FROM birth_record WHERE born_at >= $3),
			(SELECT COUNT(*) FROM death_record WHERE died_at >= $3)`,
		dayStart, dayStart.AddDate(0, 0, 1), monthStart).
		Scan(&s.Patients, &s.Doctors, &s.AppointmentsToday, &s.OccupiedBeds, &s.FreeBeds,
			&s.OpenLabTests, &s.ActiveAdmissions, &s.BirthsThisMonth, &s.DeathsThisMonth)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
