package symptom

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, s *SymptomType) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO symptom_type (name, description) VALUES ($1,$2) RETURNING id, created_at`,
		s.Name, s.Description).Scan(&s.ID, &s.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*SymptomType, error) {
	var s SymptomType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM symptom_type WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) Update(ctx context.Context, s *SymptomType) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE symptom_type SET name=$2, description=$3 WHERE id = $1`,
		s.ID, s.Name, s.Description)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM symptom_type WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*SymptomType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, created_at FROM symptom_type ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*SymptomType
	for rows.Next() {
		var s SymptomType
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
