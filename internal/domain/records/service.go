package records

import (
	"context"
	"errors"
	"time"

	"vet-records/internal/platform/apperr"
)

const (
	msgTypeAndNameRequired = "Record type and name are required"
	msgInvalidType         = `record_type must be "vaccine" or "allergy"`
	msgVaccineDates        = "Vaccines require either a date administered or a due date"
	msgSeverityRequired    = "Severity is required for allergies"
	msgInvalidSeverity     = `severity must be "mild" or "severe"`
	msgRecordNotFound      = "Record not found"
	msgPetNotFound         = "Pet not found"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input es el cuerpo de create/update. Strings vacíos en opcionales = ausente.
type Input struct {
	Type             RecordType
	Name             string
	DateAdministered *string
	NextDueDate      *string
	Reactions        *string
	Severity         *string
}

type validInput struct {
	Type             RecordType
	Name             string
	DateAdministered *string
	NextDueDate      *string
	Reactions        *string
	Severity         *Severity
}

func (in Input) validate() (validInput, error) {
	out := validInput{
		Type:             in.Type,
		Name:             in.Name,
		DateAdministered: optional(in.DateAdministered),
		NextDueDate:      optional(in.NextDueDate),
		Reactions:        optional(in.Reactions),
	}

	if out.Type == "" || out.Name == "" {
		return validInput{}, apperr.Invalid(msgTypeAndNameRequired)
	}
	if !out.Type.Valid() {
		return validInput{}, apperr.Invalid(msgInvalidType)
	}

	if sev := optional(in.Severity); sev != nil {
		s := Severity(*sev)
		if !s.Valid() {
			return validInput{}, apperr.Invalid(msgInvalidSeverity)
		}
		out.Severity = &s
	}

	switch out.Type {
	case RecordTypeVaccine:
		if out.DateAdministered == nil && out.NextDueDate == nil {
			return validInput{}, apperr.Invalid(msgVaccineDates)
		}
	case RecordTypeAllergy:
		if out.Severity == nil {
			return validInput{}, apperr.Invalid(msgSeverityRequired)
		}
	}

	return out, nil
}

func (s *Service) Create(ctx context.Context, petID int64, in Input) (MedicalRecord, error) {
	v, err := in.validate()
	if err != nil {
		return MedicalRecord{}, err
	}

	rec, err := s.repo.Create(ctx, MedicalRecord{
		PetID:            petID,
		Type:             v.Type,
		Name:             v.Name,
		DateAdministered: v.DateAdministered,
		NextDueDate:      v.NextDueDate,
		Reactions:        v.Reactions,
		Severity:         v.Severity,
		CreatedAt:        s.now().UTC(),
	})
	switch {
	case errors.Is(err, apperr.ErrDuplicate):
		return MedicalRecord{}, duplicate(v.Type, v.Name)
	case errors.Is(err, apperr.ErrNotFound):
		return MedicalRecord{}, apperr.NotFound(msgPetNotFound)
	case err != nil:
		return MedicalRecord{}, err
	}
	return rec, nil
}

// Update reemplaza todos los campos editables; pet_id y created_at no cambian.
// La unicidad se evalúa contra la mascota dueña del registro, excluyéndolo.
func (s *Service) Update(ctx context.Context, id int64, in Input) (MedicalRecord, error) {
	v, err := in.validate()
	if err != nil {
		return MedicalRecord{}, err
	}

	rec, err := s.repo.Update(ctx, MedicalRecord{
		ID:               id,
		Type:             v.Type,
		Name:             v.Name,
		DateAdministered: v.DateAdministered,
		NextDueDate:      v.NextDueDate,
		Reactions:        v.Reactions,
		Severity:         v.Severity,
	})
	switch {
	case errors.Is(err, apperr.ErrDuplicate):
		return MedicalRecord{}, duplicate(v.Type, v.Name)
	case errors.Is(err, apperr.ErrNotFound):
		return MedicalRecord{}, apperr.NotFound(msgRecordNotFound)
	case err != nil:
		return MedicalRecord{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (MedicalRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return MedicalRecord{}, apperr.NotFound(msgRecordNotFound)
	}
	return rec, err
}

func (s *Service) ListByPet(ctx context.Context, petID int64, filter ListFilter) ([]MedicalRecord, error) {
	return s.repo.ListByPet(ctx, petID, filter)
}

// ListAllByPet devuelve todo el historial en orden de id (export).
func (s *Service) ListAllByPet(ctx context.Context, petID int64) ([]MedicalRecord, error) {
	return s.repo.ListAllByPet(ctx, petID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound(msgRecordNotFound)
	}
	return err
}

func duplicate(t RecordType, name string) error {
	return apperr.Duplicate("This pet already has a %s record for \"%s\"", t, name)
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	if *v == "" {
		return nil
	}
	s := *v
	return &s
}
