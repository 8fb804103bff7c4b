package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/api_context"
	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/usecase/video"
	"github.com/avassart/reels-ms-go/internal/validation"
)

type UpdateVideoRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Caption  *string `json:"caption" validate:"omitempty,max=2200"`
	Hashtags *string `json:"hashtags" validate:"omitempty,max=500"`
}

func UpdateVideoHandler(svc port.VideoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req UpdateVideoRequest
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

		updated, err := svc.UpdateVideo(r.Context(), port.UpdateVideoInput{
			ID:       id,
			Title:    req.Title,
			Caption:  req.Caption,
			Hashtags: req.Hashtags,
		})
		if err != nil {
			if errors.Is(err, video.ErrVideoNotFound) {
				WriteError(w, http.StatusNotFound, "Video not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not update video", err)
			return
		}

		RespondJSON(w, http.StatusOK, updated)
		logger.Infof(r.Context(), "✅  Successfully updated video #%s", updated.ID)
	}
}
