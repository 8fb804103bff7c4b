package api

import (
	"errors"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/api_context"
	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/usecase/video"
)

func GetInsightsHandler(getter port.VideoGetter, settings port.SettingsGetter, apiFor port.PlatformAPIFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		v, err := getter.GetVideo(r.Context(), id)
		if err != nil {
			if errors.Is(err, video.ErrVideoNotFound) {
				WriteError(w, http.StatusNotFound, "Video not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get video", err)
			return
		}
		if v.Status != model.VideoStatusPosted || v.InstagramMediaID == nil {
			WriteError(w, http.StatusConflict, "Video has not been posted yet", nil)
			return
		}

		current, err := settings.GetSettings(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not get settings", err)
			return
		}
		if !current.HasCredentials() {
			WriteError(w, http.StatusConflict, "Instagram credentials not configured", nil)
			return
		}

		platform := apiFor(current.InstagramAccessToken, current.InstagramAccountID)
		insights, err := platform.GetMediaInsights(r.Context(), *v.InstagramMediaID)
		if err != nil {
			WriteError(w, http.StatusBadGateway, "Could not fetch insights", err)
			return
		}

		RespondJSON(w, http.StatusOK, insights)
		logger.Infof(r.Context(), "✅  Returned insights for video #%s", id)
	}
}
