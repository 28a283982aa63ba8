package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Specialty string    `db:"specialty" json:"specialty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name used in appointment dropdowns.
func (d *Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}
