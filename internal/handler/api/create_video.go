package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/validation"
)

type CreateVideoRequest struct {
	CompositionID string      `json:"composition_id" validate:"required,max=100"`
	Title         string      `json:"title" validate:"required,max=255"`
	Caption       string      `json:"caption" validate:"max=2200"`
	Hashtags      string      `json:"hashtags" validate:"max=500"`
	Props         model.Props `json:"props"`
}

func CreateVideoHandler(svc port.VideoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVideoRequest
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

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		video, err := svc.CreateVideo(r.Context(), port.CreateVideoInput{
			CompositionID: req.CompositionID,
			Title:         req.Title,
			Caption:       req.Caption,
			Hashtags:      req.Hashtags,
			Props:         req.Props,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create video", err)
			return
		}

		RespondJSON(w, http.StatusCreated, video)
		logger.Infof(r.Context(), "✅  Successfully created video #%s", video.ID)
	}
}
