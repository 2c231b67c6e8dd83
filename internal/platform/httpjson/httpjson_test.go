package httpjson

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-records/internal/platform/apperr"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"invalid", apperr.Invalid("All fields are required"), http.StatusBadRequest, `{"error":"All fields are required"}`},
		{"duplicate", apperr.Duplicate("dup %s", "x"), http.StatusBadRequest, `{"error":"dup x"}`},
		{"not found", apperr.NotFound("Pet not found"), http.StatusNotFound, `{"error":"Pet not found"}`},
		{"store", errors.New("connection refused"), http.StatusInternalServerError, `{"error":"connection refused"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.body {
				t.Fatalf("expected body %s, got %s", tc.body, got)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("unexpected content type %q", ct)
			}
		})
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	var v map[string]any
	err := Decode(req, &v)
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	cases := map[string]struct {
		id int64
		ok bool
	}{
		"42":     {42, true},
		" 7 ":    {7, true},
		"0":      {0, false},
		"-3":     {0, false},
		"abc":    {0, false},
		"":       {0, false},
		"999999": {999999, true},
	}
	for in, want := range cases {
		id, ok := ParseID(in)
		if id != want.id || ok != want.ok {
			t.Fatalf("ParseID(%q) = (%d, %v), want (%d, %v)", in, id, ok, want.id, want.ok)
		}
	}
}
