package api

import (
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
)

func QueueStatsHandler(svc port.QueueStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.QueueStats(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not read queue stats", err)
			return
		}

		RespondJSON(w, http.StatusOK, stats)
		logger.Debugf(r.Context(), "✅  Returned queue stats")
	}
}
