package admission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const admissionCols = `id, patient_id, doctor_id, bed_id, diagnosis, notes, status,
	admitted_at, discharged_at, created_at, updated_at`

func scanAdmission(row pgx.Row) (*Admission, error) {
	var a Admission
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.BedID, &a.Diagnosis, &a.Notes,
		&a.Status, &a.AdmittedAt, &a.DischargedAt, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Admission) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO admission (id, patient_id, doctor_id, bed_id, diagnosis, notes, status, admitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.PatientID, a.DoctorID, a.BedID, a.Diagnosis, a.Notes, a.Status, a.AdmittedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return scanAdmission(r.pool.QueryRow(ctx, `SELECT `+admissionCols+` FROM admission WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Admission) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE admission SET diagnosis=$2, notes=$3, status=$4, discharged_at=$5, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Diagnosis, a.Notes, a.Status, a.DischargedAt)
	return err
}

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*Admission, int, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admission`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM admission%s ORDER BY admitted_at DESC LIMIT $%d OFFSET $%d`,
		admissionCols, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admission WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+admissionCols+` FROM admission
		WHERE patient_id = $1 ORDER BY admitted_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admission WHERE status = 'admitted'`).Scan(&count)
	return count, err
}
