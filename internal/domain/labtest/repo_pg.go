package labtest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeville/hms/pkg/pagination"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const labTestCols = `id, patient_id, doctor_id, test_name, status, result, notes,
	requested_at, completed_at, created_at, updated_at`

func scanLabTest(row pgx.Row) (*LabTest, error) {
	var lt LabTest
	err := row.Scan(&lt.ID, &lt.PatientID, &lt.DoctorID, &lt.TestName, &lt.Status,
		&lt.Result, &lt.Notes, &lt.RequestedAt, &lt.CompletedAt, &lt.CreatedAt, &lt.UpdatedAt)
	return &lt, err
}

func (r *repoPG) Create(ctx context.Context, lt *LabTest) error {
	lt.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lab_test (id, patient_id, doctor_id, test_name, status, result, notes, requested_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		lt.ID, lt.PatientID, lt.DoctorID, lt.TestName, lt.Status, lt.Result, lt.Notes, lt.RequestedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabTest, error) {
	return scanLabTest(r.pool.QueryRow(ctx, `SELECT `+labTestCols+` FROM lab_test WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, lt *LabTest) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE lab_test SET test_name=$2, status=$3, result=$4, notes=$5, completed_at=$6, updated_at=NOW()
		WHERE id = $1`,
		lt.ID, lt.TestName, lt.Status, lt.Result, lt.Notes, lt.CompletedAt)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lab_test WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, status string, pg pagination.Params) ([]*LabTest, int, error) {
	where := ""
	args := []interface{}{}
	n := 0
	if status != "" {
		n++
		where = fmt.Sprintf(" WHERE status = $%d", n)
		args = append(args, status)
	}
	if pg.Search != "" {
		n++
		if where == "" {
			where = fmt.Sprintf(" WHERE test_name ILIKE $%d", n)
		} else {
			where += fmt.Sprintf(" AND test_name ILIKE $%d", n)
		}
		args = append(args, "%"+pg.Search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lab_test`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM lab_test%s ORDER BY requested_at DESC LIMIT $%d OFFSET $%d`,
		labTestCols, where, n+1, n+2)
	args = append(args, pg.Limit, pg.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*LabTest
	for rows.Next() {
		lt, err := scanLabTest(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lt)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabTest, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lab_test WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+labTestCols+` FROM lab_test
		WHERE patient_id = $1 ORDER BY requested_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*LabTest
	for rows.Next() {
		lt, err := scanLabTest(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lt)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lab_test WHERE status IN ('requested', 'in-progress')`).Scan(&count)
	return count, err
}
