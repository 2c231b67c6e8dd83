package stats

import (
	"context"
	"time"

	"vet-records/internal/domain/records"
)

const (
	// UpcomingWindowDays: horizonte hacia adelante. Sin cota inferior (vencidas incluidas).
	UpcomingWindowDays = 60
	UpcomingLimit      = 10

	dateLayout = "2006-01-02"
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

// WithClock reemplaza el reloj (tests end-to-end de la ventana de 60 días).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// DueBy es la fecha límite (UTC) de la ventana de próximas vacunas.
func (s *Service) DueBy() string {
	return s.now().UTC().AddDate(0, 0, UpcomingWindowDays).Format(dateLayout)
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var (
		d   Dashboard
		err error
	)

	if d.TotalPets, err = s.repo.CountPets(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.PetsByType, err = s.repo.PetsByType(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.TotalVaccines, err = s.repo.CountRecords(ctx, records.RecordTypeVaccine); err != nil {
		return Dashboard{}, err
	}
	if d.TotalAllergies, err = s.repo.CountRecords(ctx, records.RecordTypeAllergy); err != nil {
		return Dashboard{}, err
	}
	if d.UpcomingVaccines, err = s.repo.UpcomingVaccines(ctx, s.DueBy(), UpcomingLimit); err != nil {
		return Dashboard{}, err
	}

	rows, err := s.repo.SevereAllergies(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d.SevereAllergies = GroupSevereAllergies(rows)

	return d, nil
}

// GroupSevereAllergies agrupa por pet_id respetando el orden de aparición
// de cada mascota y el orden de las filas dentro de cada grupo.
func GroupSevereAllergies(rows []SevereAllergyRow) []SevereAllergyGroup {
	out := make([]SevereAllergyGroup, 0)
	idx := map[int64]int{}

	for _, row := range rows {
		i, ok := idx[row.PetID]
		if !ok {
			i = len(out)
			idx[row.PetID] = i
			out = append(out, SevereAllergyGroup{
				PetID:     row.PetID,
				PetName:   row.PetName,
				Allergies: make([]Allergy, 0, 1),
			})
		}
		out[i].Allergies = append(out[i].Allergies, Allergy{
			Name:      row.AllergyName,
			Reactions: row.Reactions,
		})
	}

	return out
}
