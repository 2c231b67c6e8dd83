package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vet-records/internal/domain/pets"
	"vet-records/internal/platform/apperr"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, animal_type, owner_name, date_of_birth, created_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, animal_type, owner_name, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+petColumns,
		p.Name,
		p.AnimalType,
		p.OwnerName,
		p.DateOfBirth,
		p.CreatedAt,
	)

	out, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			animal_type = $3,
			owner_name = $4,
			date_of_birth = $5
		WHERE id = $1
		RETURNING `+petColumns,
		p.ID,
		p.Name,
		p.AnimalType,
		p.OwnerName,
		p.DateOfBirth,
	)

	out, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	if id <= 0 {
		return pets.Pet{}, apperr.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapError(err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + petColumns + ` FROM pets WHERE 1 = 1`)

	args := []any{}
	argN := 1

	if filter.Search != "" {
		sb.WriteString(fmt.Sprintf(" AND name LIKE $%d", argN))
		args = append(args, "%"+filter.Search+"%")
		argN++
	}
	if filter.AnimalType != "" {
		sb.WriteString(fmt.Sprintf(" AND animal_type = $%d", argN))
		args = append(args, filter.AnimalType)
		argN++
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// Delete: los medical_records caen por ON DELETE CASCADE.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.AnimalType,
		&p.OwnerName,
		&p.DateOfBirth,
		&p.CreatedAt,
	)
	return p, err
}
