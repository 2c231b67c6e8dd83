package records

import "context"

// Repository:
// - Create devuelve apperr.ErrNotFound si la mascota no existe.
// - Create/Update devuelven apperr.ErrDuplicate si ya hay (pet_id, record_type, name).
// - Update/GetByID/Delete devuelven apperr.ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, rec MedicalRecord) (MedicalRecord, error)
	Update(ctx context.Context, rec MedicalRecord) (MedicalRecord, error)
	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	ListByPet(ctx context.Context, petID int64, filter ListFilter) ([]MedicalRecord, error)
	ListAllByPet(ctx context.Context, petID int64) ([]MedicalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// ListFilter: Type vacío = todos. Orden created_at DESC.
type ListFilter struct {
	Type RecordType
}
