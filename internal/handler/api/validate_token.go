package api

import (
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
)

type ValidateTokenResponse struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error,omitempty"`
}

func ValidateTokenHandler(settings port.SettingsGetter, apiFor port.PlatformAPIFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := settings.GetSettings(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not get settings", err)
			return
		}
		if !current.HasCredentials() {
			msg := "instagram credentials not configured"
			RespondJSON(w, http.StatusOK, ValidateTokenResponse{Valid: false, Error: &msg})
			return
		}

		platform := apiFor(current.InstagramAccessToken, current.InstagramAccountID)
		if err := platform.ValidateToken(r.Context()); err != nil {
			msg := err.Error()
			RespondJSON(w, http.StatusOK, ValidateTokenResponse{Valid: false, Error: &msg})
			logger.Warnf(r.Context(), "❌  Token validation failed: %v", err)
			return
		}

		RespondJSON(w, http.StatusOK, ValidateTokenResponse{Valid: true})
		logger.Info(r.Context(), "✅  Token validated")
	}
}
