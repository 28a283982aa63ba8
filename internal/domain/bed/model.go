package bed

import (
	"time"

	"github.com/google/uuid"
)

// BedType maps to the bed_type table (e.g. standard, ICU, incubator).
// Types and groups use serial integer IDs; client selects submit them as
// numbers.
type BedType struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BedGroup maps to the bed_group table (a ward or floor section).
type BedGroup struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Floor     *string   `db:"floor" json:"floor,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Bed maps to the bed table.
type Bed struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Number     string    `db:"number" json:"number"`
	BedTypeID  int64     `db:"bed_type_id" json:"bed_type_id"`
	BedGroupID int64     `db:"bed_group_id" json:"bed_group_id"`
	Occupied   bool      `db:"occupied" json:"occupied"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
