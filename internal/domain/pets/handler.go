package pets

import (
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode"

	"vet-records/internal/domain/records"
	"vet-records/internal/platform/apperr"
	"vet-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, recordsSvc *records.Service) {
	r.Get("/pets", listPetsHandler(svc))
	r.Post("/pets", createPetHandler(svc))

	// Perfil + historial médico
	r.Get("/pets/{petID}", getPetHandler(svc, recordsSvc))
	r.Put("/pets/{petID}", updatePetHandler(svc))
	r.Delete("/pets/{petID}", deletePetHandler(svc))

	// Descarga del historial completo
	r.Get("/pets/{petID}/export", exportPetHandler(svc, recordsSvc))
}

// petRequest es el cuerpo de create/update. Los cuatro campos son obligatorios.
type petRequest struct {
	Name        string `json:"name"`
	AnimalType  string `json:"animal_type"`
	OwnerName   string `json:"owner_name"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	AnimalType  string    `json:"animal_type"`
	OwnerName   string    `json:"owner_name"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

// petWithRecordsResponse: la mascota con sus registros embebidos en el mismo objeto.
type petWithRecordsResponse struct {
	petResponse
	Records []records.Response `json:"records"`
}

type exportResponse struct {
	Pet     petResponse        `json:"pet"`
	Records []records.Response `json:"records"`
}

func (req petRequest) toInput() Input {
	return Input{
		Name:        req.Name,
		AnimalType:  req.AnimalType,
		OwnerName:   req.OwnerName,
		DateOfBirth: req.DateOfBirth,
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista todas las mascotas, más recientes primero. search busca por substring en el nombre; animal_type filtra por tipo exacto.
// @Tags pets
// @Produce json
// @Param search query string false "Substring del nombre (case-sensitive)"
// @Param animal_type query string false "Tipo de animal exacto"
// @Success 200 {array} petResponse
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Search:     q.Get("search"),
			AnimalType: q.Get("animal_type"),
		})
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota con su historial
// @Description Devuelve la mascota y todos sus registros médicos (más recientes primero).
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petWithRecordsResponse
// @Failure 404 {object} httpjson.ErrorBody "Pet not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, recordsSvc *records.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}

		items, err := recordsSvc.ListByPet(r.Context(), p.ID, records.ListFilter{})
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, petWithRecordsResponse{
			petResponse: toPetResponse(p),
			Records:     records.ToResponses(items),
		})
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota. name, animal_type, owner_name y date_of_birth son obligatorios.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpjson.ErrorBody "All fields are required"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		p, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza los cuatro campos editables (PUT completo, no PATCH).
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorBody "All fields are required"
// @Failure 404 {object} httpjson.ErrorBody "Pet not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		// id inválido => 0 => not found (después de validar).
		id, _ := httpjson.ParseID(chi.URLParam(r, "petID"))

		p, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Elimina la mascota y, en cascada, todos sus registros médicos.
// @Tags pets
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 404 {object} httpjson.ErrorBody "Pet not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.ParseID(chi.URLParam(r, "petID"))
		if !ok {
			httpjson.WriteError(w, apperr.NotFound(msgPetNotFound))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// exportPetHandler godoc
// @Summary Exportar historial de la mascota
// @Description Devuelve {pet, records} con todos los registros, como descarga (Content-Disposition).
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} exportResponse
// @Header 200 {string} Content-Disposition "attachment; filename=\"<name>_medical_records.json\""
// @Failure 404 {object} httpjson.ErrorBody "Pet not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets/{petID}/export [get]
func exportPetHandler(svc *Service, recordsSvc *records.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}

		items, err := recordsSvc.ListAllByPet(r.Context(), p.ID)
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Disposition", ContentDisposition(ExportFilename(p.Name)))
		httpjson.Write(w, http.StatusOK, exportResponse{
			Pet:     toPetResponse(p),
			Records: records.ToResponses(items),
		})
	}
}

// ExportFilename arma "<nombre>_medical_records.json" reemplazando por "_"
// todo lo que pueda romper el header (comillas, separadores de path, control).
func ExportFilename(petName string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '"', r == '\\', r == '/', r == ';', r == ',':
			return '_'
		case unicode.IsControl(r):
			return '_'
		}
		return r
	}, strings.TrimSpace(petName))

	if clean == "" {
		clean = "pet"
	}
	return clean + "_medical_records.json"
}

// ContentDisposition siempre cita filename. Con nombres no ASCII el fallback
// lleva "_" y se agrega filename* (RFC 5987).
func ContentDisposition(filename string) string {
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '_'
		}
		return r
	}, filename)

	h := `attachment; filename="` + ascii + `"`
	if ascii != filename {
		ext := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
		if ext = strings.TrimPrefix(ext, "attachment; "); strings.HasPrefix(ext, "filename*=") {
			h += "; " + ext
		}
	}
	return h
}

func loadPet(w http.ResponseWriter, r *http.Request, svc *Service) (Pet, bool) {
	id, ok := httpjson.ParseID(chi.URLParam(r, "petID"))
	if !ok {
		httpjson.WriteError(w, apperr.NotFound(msgPetNotFound))
		return Pet{}, false
	}

	p, err := svc.GetByID(r.Context(), id)
	if err != nil {
		httpjson.WriteError(w, err)
		return Pet{}, false
	}
	return p, true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		AnimalType:  p.AnimalType,
		OwnerName:   p.OwnerName,
		DateOfBirth: p.DateOfBirth,
		CreatedAt:   p.CreatedAt,
	}
}
