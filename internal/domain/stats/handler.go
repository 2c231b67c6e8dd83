package stats

import (
	"net/http"

	"vet-records/internal/domain/records"
	"vet-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/stats", statsHandler(svc))
}

type typeCountResponse struct {
	AnimalType string `json:"animal_type"`
	Count      int    `json:"count"`
}

// upcomingVaccineResponse: el registro de vacuna aplanado + pet_name.
type upcomingVaccineResponse struct {
	records.Response
	PetName string `json:"pet_name"`
}

type allergyResponse struct {
	Name      string  `json:"name"`
	Reactions *string `json:"reactions"`
}

type severeAllergyResponse struct {
	PetID     int64             `json:"pet_id"`
	PetName   string            `json:"pet_name"`
	Allergies []allergyResponse `json:"allergies"`
}

// statsResponse conserva las keys camelCase que consume el dashboard.
type statsResponse struct {
	TotalPets        int                       `json:"totalPets"`
	PetsByType       []typeCountResponse       `json:"petsByType"`
	TotalVaccines    int                       `json:"totalVaccines"`
	TotalAllergies   int                       `json:"totalAllergies"`
	UpcomingVaccines []upcomingVaccineResponse `json:"upcomingVaccines"`
	SevereAllergies  []severeAllergyResponse   `json:"severeAllergies"`
}

// statsHandler godoc
// @Summary Estadísticas del dashboard
// @Description Totales, mascotas por tipo, vacunas vencidas o con vencimiento en los próximos 60 días (máx. 10) y alergias severas agrupadas por mascota.
// @Tags stats
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 500 {object} httpjson.ErrorBody
// @Router /stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toStatsResponse(d))
	}
}

func toStatsResponse(d Dashboard) statsResponse {
	out := statsResponse{
		TotalPets:        d.TotalPets,
		PetsByType:       make([]typeCountResponse, 0, len(d.PetsByType)),
		TotalVaccines:    d.TotalVaccines,
		TotalAllergies:   d.TotalAllergies,
		UpcomingVaccines: make([]upcomingVaccineResponse, 0, len(d.UpcomingVaccines)),
		SevereAllergies:  make([]severeAllergyResponse, 0, len(d.SevereAllergies)),
	}

	for _, tc := range d.PetsByType {
		out.PetsByType = append(out.PetsByType, typeCountResponse{AnimalType: tc.AnimalType, Count: tc.Count})
	}
	for _, v := range d.UpcomingVaccines {
		out.UpcomingVaccines = append(out.UpcomingVaccines, upcomingVaccineResponse{
			Response: records.ToResponse(v.Record),
			PetName:  v.PetName,
		})
	}
	for _, g := range d.SevereAllergies {
		allergies := make([]allergyResponse, 0, len(g.Allergies))
		for _, a := range g.Allergies {
			allergies = append(allergies, allergyResponse{Name: a.Name, Reactions: a.Reactions})
		}
		out.SevereAllergies = append(out.SevereAllergies, severeAllergyResponse{
			PetID:     g.PetID,
			PetName:   g.PetName,
			Allergies: allergies,
		})
	}

	return out
}
