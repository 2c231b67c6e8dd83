package postgres

import (
	"context"
	"database/sql"

	"vet-records/internal/domain/records"
	"vet-records/internal/domain/stats"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) CountPets(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n)
	return n, err
}

func (r *StatsRepo) PetsByType(ctx context.Context) ([]stats.TypeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT animal_type, COUNT(*)
		FROM pets
		GROUP BY animal_type
		ORDER BY animal_type COLLATE "C"
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.TypeCount, 0)
	for rows.Next() {
		var tc stats.TypeCount
		if err := rows.Scan(&tc.AnimalType, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}

	return out, rows.Err()
}

func (r *StatsRepo) CountRecords(ctx context.Context, t records.RecordType) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM medical_records WHERE record_type = $1`, string(t),
	).Scan(&n)
	return n, err
}

// UpcomingVaccines: next_due_date es TEXT YYYY-MM-DD, la comparación
// lexicográfica coincide con la cronológica. Incluye vencidas.
func (r *StatsRepo) UpcomingVaccines(ctx context.Context, dueBy string, limit int) ([]stats.UpcomingVaccine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			mr.id, mr.pet_id, mr.record_type, mr.name,
			mr.date_administered, mr.next_due_date,
			mr.reactions, mr.severity, mr.created_at,
			p.name
		FROM medical_records mr
		JOIN pets p ON p.id = mr.pet_id
		WHERE mr.record_type = 'vaccine'
		  AND mr.next_due_date IS NOT NULL
		  AND mr.next_due_date <= $1
		ORDER BY mr.next_due_date COLLATE "C" ASC, mr.id ASC
		LIMIT $2
	`, dueBy, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.UpcomingVaccine, 0)
	for rows.Next() {
		var petName string
		rec, err := scanRecord(rows, &petName)
		if err != nil {
			return nil, err
		}
		out = append(out, stats.UpcomingVaccine{Record: rec, PetName: petName})
	}

	return out, rows.Err()
}

func (r *StatsRepo) SevereAllergies(ctx context.Context) ([]stats.SevereAllergyRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, mr.name, mr.reactions
		FROM medical_records mr
		JOIN pets p ON p.id = mr.pet_id
		WHERE mr.record_type = 'allergy'
		  AND mr.severity = 'severe'
		ORDER BY p.name COLLATE "C", mr.name COLLATE "C", mr.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.SevereAllergyRow, 0)
	for rows.Next() {
		var row stats.SevereAllergyRow
		if err := rows.Scan(&row.PetID, &row.PetName, &row.AllergyName, &row.Reactions); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
