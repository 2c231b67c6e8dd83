// Package httpjson reúne los helpers JSON compartidos por los handlers
// de pets, records y stats.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vet-records/internal/platform/apperr"
)

// ErrorBody es el cuerpo de todas las respuestas de error.
type ErrorBody struct {
	Error string `json:"error"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorBody{Error: msg})
}

// WriteError traduce la taxonomía de apperr a status HTTP.
// Errores de store no clasificados salen como 500 con el mensaje crudo.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrDuplicate):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, err.Error())
	default:
		WriteMessage(w, http.StatusInternalServerError, err.Error())
	}
}

// Decode lee el body JSON; cualquier fallo es 400 "invalid json".
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Invalid("invalid json")
	}
	return nil
}

// ParseID interpreta un id de path. Un id no numérico se trata como inexistente.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
