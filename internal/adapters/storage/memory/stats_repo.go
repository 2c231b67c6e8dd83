package memory

import (
	"context"
	"sort"

	"vet-records/internal/domain/pets"
	"vet-records/internal/domain/records"
	"vet-records/internal/domain/stats"
)

type statsRepo struct {
	s *Store
}

func (r *statsRepo) CountPets(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.pets), nil
}

func (r *statsRepo) PetsByType(ctx context.Context) ([]stats.TypeCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, p := range r.s.pets {
		counts[p.AnimalType]++
	}

	out := make([]stats.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, stats.TypeCount{AnimalType: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AnimalType < out[j].AnimalType })

	return out, nil
}

func (r *statsRepo) CountRecords(ctx context.Context, t records.RecordType) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, rec := range r.s.records {
		if rec.Type == t {
			n++
		}
	}
	return n, nil
}

func (r *statsRepo) UpcomingVaccines(ctx context.Context, dueBy string, limit int) ([]stats.UpcomingVaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]stats.UpcomingVaccine, 0)
	for _, rec := range r.s.records {
		if rec.Type != records.RecordTypeVaccine || rec.NextDueDate == nil {
			continue
		}
		// Fechas ISO: la comparación de strings es cronológica.
		if *rec.NextDueDate > dueBy {
			continue
		}
		p, ok := r.s.pets[rec.PetID]
		if !ok {
			continue
		}
		out = append(out, stats.UpcomingVaccine{Record: rec, PetName: p.Name})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := *out[i].Record.NextDueDate, *out[j].Record.NextDueDate
		if a != b {
			return a < b
		}
		return out[i].Record.ID < out[j].Record.ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *statsRepo) SevereAllergies(ctx context.Context) ([]stats.SevereAllergyRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type row struct {
		pet pets.Pet
		rec records.MedicalRecord
	}

	matched := make([]row, 0)
	for _, rec := range r.s.records {
		if rec.Type != records.RecordTypeAllergy || rec.Severity == nil || *rec.Severity != records.SeveritySevere {
			continue
		}
		p, ok := r.s.pets[rec.PetID]
		if !ok {
			continue
		}
		matched = append(matched, row{pet: p, rec: rec})
	}

	// ORDER BY pet name, allergy name
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.pet.Name != b.pet.Name {
			return a.pet.Name < b.pet.Name
		}
		if a.rec.Name != b.rec.Name {
			return a.rec.Name < b.rec.Name
		}
		return a.rec.ID < b.rec.ID
	})

	out := make([]stats.SevereAllergyRow, 0, len(matched))
	for _, m := range matched {
		out = append(out, stats.SevereAllergyRow{
			PetID:       m.pet.ID,
			PetName:     m.pet.Name,
			AllergyName: m.rec.Name,
			Reactions:   m.rec.Reactions,
		})
	}
	return out, nil
}
