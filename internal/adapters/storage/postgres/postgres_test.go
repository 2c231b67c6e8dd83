package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"vet-records/internal/domain/pets"
	"vet-records/internal/domain/records"
	"vet-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startTestDB levanta Postgres en Docker, sin schema.
// Solo corre con TEST_INTEGRATION seteada.
func startTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("vet_records_test"),
		tcpostgres.WithUsername("vet"),
		tcpostgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// setupTestDB es startTestDB con el schema aplicado.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := startTestDB(t)
	ctx := context.Background()

	require.NoError(t, EnsureSchema(ctx, db))
	// idempotente
	require.NoError(t, EnsureSchema(ctx, db))

	return db
}

func newPet(t *testing.T, repo *PetsRepo, name, animalType string) pets.Pet {
	t.Helper()

	p, err := repo.Create(context.Background(), pets.Pet{
		Name:        name,
		AnimalType:  animalType,
		OwnerName:   "Ana",
		DateOfBirth: "2020-05-01",
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return p
}

func str(s string) *string { return &s }

func TestSchemaStatements(t *testing.T) {
	stmts := schemaStatements(schemaSQL)
	require.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, ";")
		assert.NotContains(t, s, "--")
	}
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS pets")
}

func TestPostgres_PetsAndRecords(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	petsRepo := NewPetsRepo(db)
	recordsRepo := NewRecordsRepo(db)
	statsRepo := NewStatsRepo(db)

	milo := newPet(t, petsRepo, "Milo", "Dog")
	luna := newPet(t, petsRepo, "Luna", "Cat")
	assert.Positive(t, milo.ID)

	got, err := petsRepo.GetByID(ctx, milo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)

	_, err = petsRepo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := petsRepo.List(ctx, pets.ListFilter{Search: "il"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, milo.ID, list[0].ID)

	list, err = petsRepo.List(ctx, pets.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, luna.ID, list[0].ID)

	updated, err := petsRepo.Update(ctx, pets.Pet{ID: luna.ID, Name: "Luna", AnimalType: "Cat", OwnerName: "Luis", DateOfBirth: "2019-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "Luis", updated.OwnerName)
	assert.True(t, luna.CreatedAt.Equal(updated.CreatedAt))

	_, err = petsRepo.Update(ctx, pets.Pet{ID: 999999, Name: "x", AnimalType: "x", OwnerName: "x", DateOfBirth: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	sev := records.SeveritySevere
	rabies, err := recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: milo.ID, Type: records.RecordTypeVaccine, Name: "Rabies",
		NextDueDate: str("2025-03-10"), CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Nil(t, rabies.Severity)
	require.NotNil(t, rabies.NextDueDate)

	_, err = recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: milo.ID, Type: records.RecordTypeAllergy, Name: "Pollen",
		Severity: &sev, CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	// unique (pet_id, record_type, name)
	_, err = recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: milo.ID, Type: records.RecordTypeVaccine, Name: "Rabies",
		DateAdministered: str("2025-01-01"), CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	// FK
	_, err = recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: 999999, Type: records.RecordTypeVaccine, Name: "Rabies",
		DateAdministered: str("2025-01-01"), CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	recs, err := recordsRepo.ListByPet(ctx, milo.ID, records.ListFilter{Type: records.RecordTypeAllergy})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Severity)
	assert.Equal(t, records.SeveritySevere, *recs[0].Severity)

	upcoming, err := statsRepo.UpcomingVaccines(ctx, "2025-04-30", 10)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Milo", upcoming[0].PetName)
	assert.Equal(t, rabies.ID, upcoming[0].Record.ID)

	severe, err := statsRepo.SevereAllergies(ctx)
	require.NoError(t, err)
	require.Len(t, severe, 1)
	assert.Nil(t, severe[0].Reactions)

	byType, err := statsRepo.PetsByType(ctx)
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, "Cat", byType[0].AnimalType)

	// cascade
	require.NoError(t, petsRepo.Delete(ctx, milo.ID))
	_, err = recordsRepo.GetByID(ctx, rabies.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	n, err := statsRepo.CountRecords(ctx, records.RecordTypeVaccine)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, petsRepo.Delete(ctx, milo.ID), apperr.ErrNotFound)
}

func TestPostgres_UpdateRecordDuplicate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	petsRepo := NewPetsRepo(db)
	recordsRepo := NewRecordsRepo(db)
	milo := newPet(t, petsRepo, "Milo", "Dog")

	_, err := recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: milo.ID, Type: records.RecordTypeVaccine, Name: "Rabies",
		DateAdministered: str("2025-01-01"), CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	parvo, err := recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: milo.ID, Type: records.RecordTypeVaccine, Name: "Parvo",
		DateAdministered: str("2025-01-01"), CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	parvo.Name = "Rabies"
	_, err = recordsRepo.Update(ctx, parvo)
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	parvo.Name = "Parvo"
	parvo.NextDueDate = str("2026-01-01")
	out, err := recordsRepo.Update(ctx, parvo)
	require.NoError(t, err)
	require.NotNil(t, out.NextDueDate)
	assert.Equal(t, "2026-01-01", *out.NextDueDate)

	require.NoError(t, recordsRepo.Delete(ctx, parvo.ID))
	assert.ErrorIs(t, recordsRepo.Delete(ctx, parvo.ID), apperr.ErrNotFound)
}

func TestPostgres_EnsureSchema_AddsNextDueDate(t *testing.T) {
	db := startTestDB(t)
	ctx := context.Background()

	// tablas de una base anterior a next_due_date
	for _, stmt := range []string{
		`CREATE TABLE pets (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			animal_type TEXT NOT NULL,
			owner_name TEXT NOT NULL,
			date_of_birth TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE medical_records (
			id BIGSERIAL PRIMARY KEY,
			pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
			record_type TEXT NOT NULL,
			name TEXT NOT NULL,
			date_administered TEXT,
			reactions TEXT,
			severity TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`INSERT INTO pets (name, animal_type, owner_name, date_of_birth) VALUES ('Milo', 'Dog', 'Ana', '2020-05-01')`,
		`INSERT INTO medical_records (pet_id, record_type, name, date_administered) VALUES (1, 'vaccine', 'Parvo', '2024-01-01')`,
	} {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	require.NoError(t, EnsureSchema(ctx, db))

	recordsRepo := NewRecordsRepo(db)

	legacy, err := recordsRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Parvo", legacy.Name)
	assert.Nil(t, legacy.NextDueDate)

	rabies, err := recordsRepo.Create(ctx, records.MedicalRecord{
		PetID: 1, Type: records.RecordTypeVaccine, Name: "Rabies",
		NextDueDate: str("2025-03-10"), CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := recordsRepo.GetByID(ctx, rabies.ID)
	require.NoError(t, err)
	require.NotNil(t, got.NextDueDate)
	assert.Equal(t, "2025-03-10", *got.NextDueDate)

	upcoming, err := NewStatsRepo(db).UpcomingVaccines(ctx, "2025-04-30", 10)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, rabies.ID, upcoming[0].Record.ID)
}
