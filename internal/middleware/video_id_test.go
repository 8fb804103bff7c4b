package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avassart/reels-ms-go/internal/api_context"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestWithVideoID_ValidUUID(t *testing.T) {
	var gotOK bool
	var gotID string

	r := chi.NewRouter()
	r.With(WithVideoID()).Get("/videos/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, ok := api_context.VideoIDFromContext(req.Context())
		gotOK = ok
		gotID = id.String()
	})

	want := uuid.New().String()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/"+want, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOK || gotID != want {
		t.Errorf("context id = %q (ok=%v), want %q", gotID, gotOK, want)
	}
}

func TestWithVideoID_InvalidUUID(t *testing.T) {
	called := false

	r := chi.NewRouter()
	r.With(WithVideoID()).Get("/videos/{id}", func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/not-a-uuid", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("handler should not run")
	}
}
