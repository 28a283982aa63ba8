package bed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Bed Type Repository ===========

type typeRepoPG struct{ pool *pgxpool.Pool }

func NewTypeRepoPG(pool *pgxpool.Pool) TypeRepository { return &typeRepoPG{pool: pool} }

func (r *typeRepoPG) Create(ctx context.Context, t *BedType) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bed_type (name, description) VALUES ($1,$2) RETURNING id, created_at`,
		t.Name, t.Description).Scan(&t.ID, &t.CreatedAt)
}

func (r *typeRepoPG) List(ctx context.Context) ([]*BedType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, created_at FROM bed_type ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*BedType
	for rows.Next() {
		var t BedType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &t)
	}
	return items, rows.Err()
}

func (r *typeRepoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bed_type WHERE id = $1`, id)
	return err
}

// =========== Bed Group Repository ===========

type groupRepoPG struct{ pool *pgxpool.Pool }

func NewGroupRepoPG(pool *pgxpool.Pool) GroupRepository { return &groupRepoPG{pool: pool} }

func (r *groupRepoPG) Create(ctx context.Context, g *BedGroup) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bed_group (name, floor) VALUES ($1,$2) RETURNING id, created_at`,
		g.Name, g.Floor).Scan(&g.ID, &g.CreatedAt)
}

func (r *groupRepoPG) List(ctx context.Context) ([]*BedGroup, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, floor, created_at FROM bed_group ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*BedGroup
	for rows.Next() {
		var g BedGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Floor, &g.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &g)
	}
	return items, rows.Err()
}

func (r *groupRepoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bed_group WHERE id = $1`, id)
	return err
}

// =========== Bed Repository ===========

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const bedCols = `id, number, bed_type_id, bed_group_id, occupied, notes, created_at, updated_at`

func scanBed(row pgx.Row) (*Bed, error) {
	var b Bed
	err := row.Scan(&b.ID, &b.Number, &b.BedTypeID, &b.BedGroupID, &b.Occupied,
		&b.Notes, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Bed) error {
	b.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bed (id, number, bed_type_id, bed_group_id, occupied, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		b.ID, b.Number, b.BedTypeID, b.BedGroupID, b.Occupied, b.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bed, error) {
	return scanBed(r.pool.QueryRow(ctx, `SELECT `+bedCols+` FROM bed WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, b *Bed) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE bed SET number=$2, bed_type_id=$3, bed_group_id=$4, occupied=$5, notes=$6, updated_at=NOW()
		WHERE id = $1`,
		b.ID, b.Number, b.BedTypeID, b.BedGroupID, b.Occupied, b.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bed WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Bed, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bed`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+bedCols+` FROM bed ORDER BY number LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Bed
	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*Bed, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bed WHERE bed_group_id = $1`, groupID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+bedCols+` FROM bed WHERE bed_group_id = $1 ORDER BY number LIMIT $2 OFFSET $3`, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Bed
	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *repoPG) MarkOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE bed SET occupied=$2, updated_at=NOW() WHERE id = $1`, id, occupied)
	return err
}

func (r *repoPG) CountByOccupancy(ctx context.Context) (int, int, error) {
	var occupied, free int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE occupied), COUNT(*) FILTER (WHERE NOT occupied) FROM bed`).
		Scan(&occupied, &free)
	return occupied, free, err
}
