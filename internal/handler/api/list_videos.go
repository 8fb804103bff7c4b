package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.ListVideosInput

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := model.VideoStatus(raw)
			if !status.IsValid() {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", raw), nil)
				return
			}
			in.Status = &status
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw), nil)
				return
			}
			in.Limit = limit
		}

		videos, err := svc.ListVideos(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list videos", err)
			return
		}

		RespondJSON(w, http.StatusOK, videos)
		logger.Infof(r.Context(), "✅  Successfully listed %d videos", len(videos))
	}
}
