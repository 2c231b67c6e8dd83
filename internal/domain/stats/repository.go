package stats

import (
	"context"

	"vet-records/internal/domain/records"
)

type Repository interface {
	CountPets(ctx context.Context) (int, error)
	// PetsByType agrupa por animal_type, ordenado por tipo.
	PetsByType(ctx context.Context) ([]TypeCount, error)
	CountRecords(ctx context.Context, t records.RecordType) (int, error)
	// UpcomingVaccines: vacunas con next_due_date no nulo y <= dueBy (YYYY-MM-DD),
	// orden ascendente por next_due_date, a lo sumo limit filas.
	UpcomingVaccines(ctx context.Context, dueBy string, limit int) ([]UpcomingVaccine, error)
	// SevereAllergies: alergias con severity = severe, ordenadas por nombre de
	// mascota y luego nombre de alergia.
	SevereAllergies(ctx context.Context) ([]SevereAllergyRow, error)
}
