package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/api_context"
	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/handler/api"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func WithVideoID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			parsedID, err := uuid.Parse(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.VideoIDKey, db.UUID(parsedID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
