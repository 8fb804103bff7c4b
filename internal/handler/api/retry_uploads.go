package api

import (
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
)

func RetryUploadsHandler(svc port.FailedRetrier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RetryFailed(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not run retry pass", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Info(r.Context(), "✅  Retry pass completed")
	}
}
