package vitalevents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Birth Repository ===========

type birthRepoPG struct{ pool *pgxpool.Pool }

func NewBirthRepoPG(pool *pgxpool.Pool) BirthRepository { return &birthRepoPG{pool: pool} }

const birthCols = `id, mother_patient_id, baby_name, gender, weight_kg, born_at, notes, created_at`

func scanBirth(row pgx.Row) (*BirthRecord, error) {
	var b BirthRecord
	err := row.Scan(&b.ID, &b.MotherPatientID, &b.BabyName, &b.Gender, &b.WeightKg,
		&b.BornAt, &b.Notes, &b.CreatedAt)
	return &b, err
}

func (r *birthRepoPG) Create(ctx context.Context, b *BirthRecord) error {
	b.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO birth_record (id, mother_patient_id, baby_name, gender, weight_kg, born_at, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		b.ID, b.MotherPatientID, b.BabyName, b.Gender, b.WeightKg, b.BornAt, b.Notes)
	return err
}

func (r *birthRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*BirthRecord, error) {
	return scanBirth(r.pool.QueryRow(ctx, `SELECT `+birthCols+` FROM birth_record WHERE id = $1`, id))
}

func (r *birthRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM birth_record WHERE id = $1`, id)
	return err
}

func (r *birthRepoPG) List(ctx context.Context, limit, offset int) ([]*BirthRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM birth_record`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+birthCols+` FROM birth_record ORDER BY born_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*BirthRecord
	for rows.Next() {
		b, err := scanBirth(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *birthRepoPG) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM birth_record WHERE born_at >= $1`, since).Scan(&count)
	return count, err
}

// =========== Death Repository ===========

type deathRepoPG struct{ pool *pgxpool.Pool }

func NewDeathRepoPG(pool *pgxpool.Pool) DeathRepository { return &deathRepoPG{pool: pool} }

const deathCols = `id, patient_id, died_at, cause, notes, created_at`

func scanDeath(row pgx.Row) (*DeathRecord, error) {
	var d DeathRecord
	err := row.Scan(&d.ID, &d.PatientID, &d.DiedAt, &d.Cause, &d.Notes, &d.CreatedAt)
	return &d, err
}

func (r *deathRepoPG) Create(ctx context.Context, d *DeathRecord) error {
	d.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO death_record (id, patient_id, died_at, cause, notes)
		VALUES ($1,$2,$3,$4,$5)`,
		d.ID, d.PatientID, d.DiedAt, d.Cause, d.Notes)
	return err
}

func (r *deathRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*DeathRecord, error) {
	return scanDeath(r.pool.QueryRow(ctx, `SELECT `+deathCols+` FROM death_record WHERE id = $1`, id))
}

func (r *deathRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM death_record WHERE id = $1`, id)
	return err
}

func (r *deathRepoPG) List(ctx context.Context, limit, offset int) ([]*DeathRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM death_record`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+deathCols+` FROM death_record ORDER BY died_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*DeathRecord
	for rows.Next() {
		d, err := scanDeath(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *deathRepoPG) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM death_record WHERE died_at >= $1`, since).Scan(&count)
	return count, err
}
