package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, first_name, last_name, gender, date_of_birth, phone, email,
	address, blood_group, marital_status, temperature_c, bp_systolic, bp_diastolic,
	weight_kg, spo2, notes, deceased_at, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.DateOfBirth,
		&p.Phone, &p.Email, &p.Address, &p.BloodGroup, &p.MaritalStatus,
		&p.TemperatureC, &p.BPSystolic, &p.BPDiastolic, &p.WeightKg, &p.SpO2,
		&p.Notes, &p.DeceasedAt, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, first_name, last_name, gender, date_of_birth, phone,
			email, address, blood_group, marital_status, temperature_c, bp_systolic,
			bp_diastolic, weight_kg, spo2, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		p.ID, p.FirstName, p.LastName, p.Gender, p.DateOfBirth, p.Phone,
		p.Email, p.Address, p.BloodGroup, p.MaritalStatus, p.TemperatureC, p.BPSystolic,
		p.BPDiastolic, p.WeightKg, p.SpO2, p.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient SET first_name=$2, last_name=$3, gender=$4, date_of_birth=$5,
			phone=$6, email=$7, address=$8, blood_group=$9, marital_status=$10,
			temperature_c=$11, bp_systolic=$12, bp_diastolic=$13, weight_kg=$14,
			spo2=$15, notes=$16, deceased_at=$17, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Gender, p.DateOfBirth,
		p.Phone, p.Email, p.Address, p.BloodGroup, p.MaritalStatus,
		p.TemperatureC, p.BPSystolic, p.BPDiastolic, p.WeightKg,
		p.SpO2, p.Notes, p.DeceasedAt)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) SearchByName(ctx context.Context, term string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + term + "%"
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patient WHERE first_name ILIKE $1 OR last_name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY last_name, first_name LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
