package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/validation"
)

type UpdateSettingsRequest struct {
	InstagramAccessToken string `json:"instagram_access_token" validate:"max=512"`
	InstagramAccountID   string `json:"instagram_account_id" validate:"max=64"`
	PostingTimes         string `json:"posting_times" validate:"required,max=255"`
	Enabled              bool   `json:"enabled"`
}

func UpdateSettingsHandler(svc port.SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		settings, err := svc.UpdateSettings(r.Context(), port.UpdateSettingsInput{
			InstagramAccessToken: req.InstagramAccessToken,
			InstagramAccountID:   req.InstagramAccountID,
			PostingTimes:         req.PostingTimes,
			Enabled:              req.Enabled,
		})
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not update settings", err)
			return
		}

		RespondJSON(w, http.StatusOK, settings)
		logger.Info(r.Context(), "✅  Successfully updated settings")
	}
}
