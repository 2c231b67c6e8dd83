package records

import "time"

// MedicalRecord es una vacuna o alergia de una mascota.
// Los campos opcionales son nil cuando no se informaron (nunca "").
type MedicalRecord struct {
	ID    int64
	PetID int64

	Type RecordType
	Name string

	// Solo vacunas
	DateAdministered *string
	NextDueDate      *string

	// Solo alergias
	Reactions *string
	Severity  *Severity

	CreatedAt time.Time
}
