package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/api_context"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/usecase/video"
)

func GetVideoHandler(renderer port.HTTPRenderer, svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetVideo(r.Context(), svc, id)
		if err != nil {
			if errors.Is(err, video.ErrVideoNotFound) {
				WriteError(w, http.StatusNotFound, "Video not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get video details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=60")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached video #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for video #%s", id)
	}
}
