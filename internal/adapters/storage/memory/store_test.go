package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"vet-records/internal/domain/pets"
	"vet-records/internal/domain/records"
	"vet-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func str(s string) *string { return &s }

func addPet(t *testing.T, s *Store, name, animalType string, at time.Time) pets.Pet {
	t.Helper()
	p, err := s.Pets().Create(context.Background(), pets.Pet{
		Name: name, AnimalType: animalType, OwnerName: "Ana", DateOfBirth: "2020-01-01", CreatedAt: at,
	})
	require.NoError(t, err)
	return p
}

func addVaccine(t *testing.T, s *Store, petID int64, name, due string) records.MedicalRecord {
	t.Helper()
	rec, err := s.Records().Create(context.Background(), records.MedicalRecord{
		PetID: petID, Type: records.RecordTypeVaccine, Name: name, NextDueDate: str(due), CreatedAt: base,
	})
	require.NoError(t, err)
	return rec
}

func TestPets_ListOrderTieBreaksByID(t *testing.T) {
	s := NewStore()
	a := addPet(t, s, "A", "Dog", base)
	b := addPet(t, s, "B", "Dog", base)
	c := addPet(t, s, "C", "Dog", base.Add(-time.Hour))

	list, err := s.Pets().List(context.Background(), pets.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{b.ID, a.ID, c.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestPets_ZeroIDIsMissing(t *testing.T) {
	s := NewStore()
	addPet(t, s, "A", "Dog", base)

	_, err := s.Pets().GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, s.Pets().Delete(context.Background(), 0), apperr.ErrNotFound)
}

func TestRecords_DuplicateIsAtomic(t *testing.T) {
	s := NewStore()
	p := addPet(t, s, "Milo", "Dog", base)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ok  int
		dup int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Records().Create(context.Background(), records.MedicalRecord{
				PetID: p.ID, Type: records.RecordTypeVaccine, Name: "Rabies", DateAdministered: str("2025-01-01"), CreatedAt: base,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, apperr.ErrDuplicate) {
				dup++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, dup)
}

func TestRecords_UpdateKeepsPetAndCreatedAt(t *testing.T) {
	s := NewStore()
	p := addPet(t, s, "Milo", "Dog", base)
	rec := addVaccine(t, s, p.ID, "Rabies", "2025-04-01")

	sev := records.SeverityMild
	out, err := s.Records().Update(context.Background(), records.MedicalRecord{
		ID: rec.ID, PetID: 12345, Type: records.RecordTypeAllergy, Name: "Rabies", Severity: &sev,
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, out.PetID)
	assert.Equal(t, base, out.CreatedAt)
	assert.Nil(t, out.NextDueDate)
}

func TestRecords_CreateForMissingPet(t *testing.T) {
	s := NewStore()
	_, err := s.Records().Create(context.Background(), records.MedicalRecord{
		PetID: 42, Type: records.RecordTypeVaccine, Name: "Rabies", DateAdministered: str("2025-01-01"),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStats_UpcomingWindowOrderAndLimit(t *testing.T) {
	s := NewStore()
	p := addPet(t, s, "Milo", "Dog", base)

	for i := 5; i >= 1; i-- {
		addVaccine(t, s, p.ID, "V"+strconv.Itoa(i), "2025-04-0"+strconv.Itoa(i))
	}
	addVaccine(t, s, p.ID, "Late", "2025-05-01")
	addVaccine(t, s, p.ID, "Overdue", "2024-01-01")

	out, err := s.Stats().UpcomingVaccines(context.Background(), "2025-04-30", 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Overdue", out[0].Record.Name)
	assert.Equal(t, "V1", out[1].Record.Name)
	assert.Equal(t, "V2", out[2].Record.Name)
	assert.Equal(t, "Milo", out[0].PetName)
}

func TestStats_SevereAllergiesOrdered(t *testing.T) {
	s := NewStore()
	zed := addPet(t, s, "Zed", "Dog", base)
	amy := addPet(t, s, "Amy", "Cat", base)
	ctx := context.Background()

	severe, mild := records.SeveritySevere, records.SeverityMild
	for _, rec := range []records.MedicalRecord{
		{PetID: zed.ID, Type: records.RecordTypeAllergy, Name: "Pollen", Severity: &severe},
		{PetID: zed.ID, Type: records.RecordTypeAllergy, Name: "Fish", Severity: &severe, Reactions: str("Hives")},
		{PetID: amy.ID, Type: records.RecordTypeAllergy, Name: "Dust", Severity: &severe},
		{PetID: amy.ID, Type: records.RecordTypeAllergy, Name: "Grass", Severity: &mild},
	} {
		_, err := s.Records().Create(ctx, rec)
		require.NoError(t, err)
	}

	rows, err := s.Stats().SevereAllergies(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Amy", rows[0].PetName)
	assert.Equal(t, "Fish", rows[1].AllergyName)
	assert.Equal(t, "Pollen", rows[2].AllergyName)
	assert.Nil(t, rows[2].Reactions)
}

func TestStats_Counts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	p := addPet(t, s, "Milo", "Dog", base)
	addPet(t, s, "Rex", "Dog", base)
	addPet(t, s, "Luna", "Cat", base)
	addVaccine(t, s, p.ID, "Rabies", "2025-04-01")

	n, err := s.Stats().CountPets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	byType, err := s.Stats().PetsByType(ctx)
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, "Cat", byType[0].AnimalType)
	assert.Equal(t, 2, byType[1].Count)

	v, err := s.Stats().CountRecords(ctx, records.RecordTypeVaccine)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	a, err := s.Stats().CountRecords(ctx, records.RecordTypeAllergy)
	require.NoError(t, err)
	assert.Zero(t, a)
}
