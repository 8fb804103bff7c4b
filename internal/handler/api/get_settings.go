package api

import (
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
)

func GetSettingsHandler(svc port.SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.GetSettings(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not get settings", err)
			return
		}

		RespondJSON(w, http.StatusOK, settings)
		logger.Debug(r.Context(), "✅  Returned settings")
	}
}
