package pets

import (
	"context"
	"errors"
	"time"

	"vet-records/internal/platform/apperr"
)

const (
	msgFieldsRequired = "All fields are required"
	msgPetNotFound    = "Pet not found"
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

// Input son los cuatro campos editables; create y update exigen todos.
type Input struct {
	Name        string
	AnimalType  string
	OwnerName   string
	DateOfBirth string
}

// normalize solo rechaza strings vacíos; los valores se guardan tal cual llegan.
func (in Input) normalize() (Input, error) {
	if in.Name == "" || in.AnimalType == "" || in.OwnerName == "" || in.DateOfBirth == "" {
		return Input{}, apperr.Invalid(msgFieldsRequired)
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	in, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}

	return s.repo.Create(ctx, Pet{
		Name:        in.Name,
		AnimalType:  in.AnimalType,
		OwnerName:   in.OwnerName,
		DateOfBirth: in.DateOfBirth,
		CreatedAt:   s.now().UTC(),
	})
}

// Update reemplaza los cuatro campos editables. created_at no cambia.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	in, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}

	p, err := s.repo.Update(ctx, Pet{
		ID:          id,
		Name:        in.Name,
		AnimalType:  in.AnimalType,
		OwnerName:   in.OwnerName,
		DateOfBirth: in.DateOfBirth,
	})
	if err != nil {
		return Pet{}, notFound(err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, notFound(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id))
}

func notFound(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound(msgPetNotFound)
	}
	return err
}
