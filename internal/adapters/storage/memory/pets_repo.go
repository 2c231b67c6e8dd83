package memory

import (
	"context"
	"sort"
	"strings"

	"vet-records/internal/domain/pets"
	"vet-records/internal/platform/apperr"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastPetID++
	p.ID = r.s.lastPetID
	r.s.pets[p.ID] = p
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.pets[p.ID]
	if !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}

	current.Name = p.Name
	current.AnimalType = p.AnimalType
	current.OwnerName = p.OwnerName
	current.DateOfBirth = p.DateOfBirth
	r.s.pets[p.ID] = current
	return current, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if filter.Search != "" && !strings.Contains(p.Name, filter.Search) {
			continue
		}
		if filter.AnimalType != "" && p.AnimalType != filter.AnimalType {
			continue
		}
		out = append(out, p)
	}

	// created_at DESC, desempate por id DESC (mismo orden que Postgres)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return apperr.ErrNotFound
	}

	// ON DELETE CASCADE
	for recID, rec := range r.s.records {
		if rec.PetID == id {
			delete(r.s.records, recID)
		}
	}
	delete(r.s.pets, id)
	return nil
}
