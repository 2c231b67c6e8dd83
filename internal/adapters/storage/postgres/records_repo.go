package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vet-records/internal/domain/records"
	"vet-records/internal/platform/apperr"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

const recordColumns = `id, pet_id, record_type, name, date_administered, next_due_date, reactions, severity, created_at`

// Create: FK violation (pet inexistente) => apperr.ErrNotFound,
// unique violation => apperr.ErrDuplicate.
func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO medical_records (
			pet_id, record_type, name,
			date_administered, next_due_date,
			reactions, severity,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+recordColumns,
		rec.PetID,
		string(rec.Type),
		rec.Name,
		rec.DateAdministered,
		rec.NextDueDate,
		rec.Reactions,
		severityArg(rec.Severity),
		rec.CreatedAt,
	)

	out, err := scanRecord(row)
	if err != nil {
		return records.MedicalRecord{}, mapError(err)
	}
	return out, nil
}

func (r *RecordsRepo) Update(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE medical_records
		SET
			record_type = $2,
			name = $3,
			date_administered = $4,
			next_due_date = $5,
			reactions = $6,
			severity = $7
		WHERE id = $1
		RETURNING `+recordColumns,
		rec.ID,
		string(rec.Type),
		rec.Name,
		rec.DateAdministered,
		rec.NextDueDate,
		rec.Reactions,
		severityArg(rec.Severity),
	)

	out, err := scanRecord(row)
	if err != nil {
		return records.MedicalRecord{}, mapError(err)
	}
	return out, nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	if id <= 0 {
		return records.MedicalRecord{}, apperr.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE id = $1`, id)

	rec, err := scanRecord(row)
	if err != nil {
		return records.MedicalRecord{}, mapError(err)
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64, filter records.ListFilter) ([]records.MedicalRecord, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + recordColumns + ` FROM medical_records WHERE pet_id = $1`)

	args := []any{petID}
	if filter.Type != "" {
		sb.WriteString(" AND record_type = $2")
		args = append(args, string(filter.Type))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	return r.query(ctx, sb.String(), args...)
}

func (r *RecordsRepo) ListAllByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE pet_id = $1 ORDER BY id ASC`, petID)
}

func (r *RecordsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) query(ctx context.Context, q string, args ...any) ([]records.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func scanRecord(s scanner, extra ...any) (records.MedicalRecord, error) {
	var rec records.MedicalRecord
	var typ string
	var severity sql.NullString

	dest := []any{
		&rec.ID,
		&rec.PetID,
		&typ,
		&rec.Name,
		&rec.DateAdministered,
		&rec.NextDueDate,
		&rec.Reactions,
		&severity,
		&rec.CreatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return records.MedicalRecord{}, err
	}

	rec.Type = records.RecordType(typ)
	if severity.Valid {
		sev := records.Severity(severity.String)
		rec.Severity = &sev
	}
	return rec, nil
}

func severityArg(s *records.Severity) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
