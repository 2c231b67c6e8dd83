package pets

import "time"

// Pet representa una mascota registrada junto a su dueño.
type Pet struct {
	ID int64

	Name       string
	AnimalType string // texto libre: dog, cat, bird...
	OwnerName  string

	// DateOfBirth se guarda como texto YYYY-MM-DD, tal cual lo envía el cliente.
	DateOfBirth string

	CreatedAt time.Time
}
