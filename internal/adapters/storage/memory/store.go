package memory

import (
	"sync"

	"vet-records/internal/domain/pets"
	"vet-records/internal/domain/records"
	"vet-records/internal/domain/stats"
)

// Store guarda pets y medical_records bajo un mismo lock, así el borrado en
// cascada y el chequeo de unicidad son atómicos (igual que las constraints en Postgres).
type Store struct {
	mu sync.RWMutex

	pets    map[int64]pets.Pet
	records map[int64]records.MedicalRecord

	lastPetID    int64
	lastRecordID int64
}

func NewStore() *Store {
	return &Store{
		pets:    make(map[int64]pets.Pet),
		records: make(map[int64]records.MedicalRecord),
	}
}

func (s *Store) Pets() pets.Repository       { return &petRepo{s: s} }
func (s *Store) Records() records.Repository { return &recordRepo{s: s} }
func (s *Store) Stats() stats.Repository     { return &statsRepo{s: s} }
