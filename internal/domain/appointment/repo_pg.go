package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_id, doctor_id, scheduled_at, status, reason, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.ScheduledAt, &a.Status,
		&a.Reason, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, doctor_id, scheduled_at, status, reason, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.PatientID, a.DoctorID, a.ScheduledAt, a.Status, a.Reason, a.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointment SET scheduled_at=$2, status=$3, reason=$4, notes=$5, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.ScheduledAt, a.Status, a.Reason, a.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *repoPG) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM appointment %s ORDER BY scheduled_at DESC LIMIT $%d OFFSET $%d`,
		apptCols, where, len(args)-1, len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return r.list(ctx, ``, nil, limit, offset)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return r.list(ctx, `WHERE patient_id = $1`, []interface{}{patientID}, limit, offset)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return r.list(ctx, `WHERE doctor_id = $1`, []interface{}{doctorID}, limit, offset)
}

func (r *repoPG) CountOnDay(ctx context.Context, day time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointment WHERE scheduled_at >= $1 AND scheduled_at < $2`,
		day.Truncate(24*time.Hour), day.Truncate(24*time.Hour).Add(24*time.Hour)).Scan(&total)
	return total, err
}
