package records

import (
	"net/http"
	"time"

	"vet-records/internal/platform/apperr"
	"vet-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets/{petID}/records", listRecordsHandler(svc))
	r.Post("/pets/{petID}/records", createRecordHandler(svc))

	r.Put("/records/{recordID}", updateRecordHandler(svc))
	r.Delete("/records/{recordID}", deleteRecordHandler(svc))
}

// recordRequest es el cuerpo de create/update de un registro médico.
type recordRequest struct {
	RecordType       RecordType `json:"record_type" enums:"vaccine,allergy"`
	Name             string     `json:"name"`
	DateAdministered *string    `json:"date_administered"` // YYYY-MM-DD, vacunas
	NextDueDate      *string    `json:"next_due_date"`     // YYYY-MM-DD, vacunas
	Reactions        *string    `json:"reactions"`         // alergias
	Severity         *string    `json:"severity" enums:"mild,severe"`
}

// Response representa un registro médico devuelto por la API.
// Lo reutilizan pets (detalle/export) y stats (próximas vacunas).
type Response struct {
	ID               int64      `json:"id"`
	PetID            int64      `json:"pet_id"`
	RecordType       RecordType `json:"record_type"`
	Name             string     `json:"name"`
	DateAdministered *string    `json:"date_administered"`
	NextDueDate      *string    `json:"next_due_date"`
	Reactions        *string    `json:"reactions"`
	Severity         *Severity  `json:"severity"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (req recordRequest) toInput() Input {
	return Input{
		Type:             req.RecordType,
		Name:             req.Name,
		DateAdministered: req.DateAdministered,
		NextDueDate:      req.NextDueDate,
		Reactions:        req.Reactions,
		Severity:         req.Severity,
	}
}

// listRecordsHandler godoc
// @Summary Listar registros médicos de una mascota
// @Description Devuelve vacunas y alergias de la mascota, más recientes primero. Una mascota inexistente devuelve lista vacía.
// @Tags records
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param record_type query string false "Filtrar por tipo" Enums(vaccine, allergy)
// @Success 200 {array} Response
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets/{petID}/records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := httpjson.ParseID(chi.URLParam(r, "petID"))
		if !ok {
			httpjson.Write(w, http.StatusOK, []Response{})
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, ListFilter{
			Type: RecordType(r.URL.Query().Get("record_type")),
		})
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, ToResponses(items))
	}
}

// createRecordHandler godoc
// @Summary Crear registro médico
// @Description Vacunas requieren date_administered o next_due_date. Alergias requieren severity. No puede repetirse (record_type, name) para la misma mascota.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body recordRequest true "Datos del registro"
// @Success 201 {object} Response
// @Failure 400 {object} httpjson.ErrorBody "campos faltantes/inválidos o duplicado"
// @Failure 404 {object} httpjson.ErrorBody "Pet not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /pets/{petID}/records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		petID, _ := httpjson.ParseID(chi.URLParam(r, "petID"))

		rec, err := svc.Create(r.Context(), petID, req.toInput())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, ToResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar registro médico
// @Description Reemplaza todos los campos editables. Mismas validaciones que create; el duplicado se evalúa excluyendo el propio registro.
// @Tags records
// @Accept json
// @Produce json
// @Param recordID path int true "ID del registro"
// @Param payload body recordRequest true "Datos del registro"
// @Success 200 {object} Response
// @Failure 400 {object} httpjson.ErrorBody "campos faltantes/inválidos o duplicado"
// @Failure 404 {object} httpjson.ErrorBody "Record not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /records/{recordID} [put]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		// id inválido => 0, que el repo trata como inexistente (después de validar el body).
		id, _ := httpjson.ParseID(chi.URLParam(r, "recordID"))

		rec, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, ToResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar registro médico
// @Tags records
// @Param recordID path int true "ID del registro"
// @Success 204
// @Failure 404 {object} httpjson.ErrorBody "Record not found"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.ParseID(chi.URLParam(r, "recordID"))
		if !ok {
			httpjson.WriteError(w, apperr.NotFound(msgRecordNotFound))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(rec MedicalRecord) Response {
	return Response{
		ID:               rec.ID,
		PetID:            rec.PetID,
		RecordType:       rec.Type,
		Name:             rec.Name,
		DateAdministered: rec.DateAdministered,
		NextDueDate:      rec.NextDueDate,
		Reactions:        rec.Reactions,
		Severity:         rec.Severity,
		CreatedAt:        rec.CreatedAt,
	}
}

func ToResponses(items []MedicalRecord) []Response {
	out := make([]Response, 0, len(items))
	for _, rec := range items {
		out = append(out, ToResponse(rec))
	}
	return out
}
