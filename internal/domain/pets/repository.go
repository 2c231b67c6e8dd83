package pets

import "context"

// Repository devuelve apperr.ErrNotFound cuando el id no existe.
// Delete elimina en cascada los registros médicos de la mascota.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	// Search: substring sobre name (LIKE %term%, case-sensitive).
	Search string
	// AnimalType: match exacto.
	AnimalType string
}
