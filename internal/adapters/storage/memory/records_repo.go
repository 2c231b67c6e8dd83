package memory

import (
	"context"
	"sort"

	"vet-records/internal/domain/records"
	"vet-records/internal/platform/apperr"
)

type recordRepo struct {
	s *Store
}

func (r *recordRepo) Create(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// FK pet_id
	if _, ok := r.s.pets[rec.PetID]; !ok {
		return records.MedicalRecord{}, apperr.ErrNotFound
	}
	if r.s.conflictLocked(rec.PetID, rec.Type, rec.Name, 0) {
		return records.MedicalRecord{}, apperr.ErrDuplicate
	}

	r.s.lastRecordID++
	rec.ID = r.s.lastRecordID
	r.s.records[rec.ID] = rec
	return rec, nil
}

func (r *recordRepo) Update(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.records[rec.ID]
	if !ok {
		return records.MedicalRecord{}, apperr.ErrNotFound
	}
	if r.s.conflictLocked(current.PetID, rec.Type, rec.Name, rec.ID) {
		return records.MedicalRecord{}, apperr.ErrDuplicate
	}

	current.Type = rec.Type
	current.Name = rec.Name
	current.DateAdministered = rec.DateAdministered
	current.NextDueDate = rec.NextDueDate
	current.Reactions = rec.Reactions
	current.Severity = rec.Severity
	r.s.records[rec.ID] = current
	return current, nil
}

func (r *recordRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.records[id]
	if !ok {
		return records.MedicalRecord{}, apperr.ErrNotFound
	}
	return rec, nil
}

func (r *recordRepo) ListByPet(ctx context.Context, petID int64, filter records.ListFilter) ([]records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.s.records {
		if rec.PetID != petID {
			continue
		}
		if filter.Type != "" && rec.Type != filter.Type {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *recordRepo) ListAllByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.s.records {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *recordRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.records[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.records, id)
	return nil
}

// conflictLocked emula el índice único (pet_id, record_type, name).
// Requiere tener el lock tomado.
func (s *Store) conflictLocked(petID int64, t records.RecordType, name string, exceptID int64) bool {
	for id, rec := range s.records {
		if id == exceptID {
			continue
		}
		if rec.PetID == petID && rec.Type == t && rec.Name == name {
			return true
		}
	}
	return false
}
