package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/validation"
)

func GenerateScriptHandler(svc port.ScriptGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.ScriptRequest
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

		script, err := svc.Generate(r.Context(), req)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not generate script", err)
			return
		}

		RespondJSON(w, http.StatusOK, script)
		logger.Infof(r.Context(), "✅  Generated script for template %q", req.Template)
	}
}

type ScriptVariantsRequest struct {
	Request port.ScriptRequest `json:"request" validate:"required"`
	Count   int                `json:"count"`
}

func ScriptVariantsHandler(svc port.ScriptGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScriptVariantsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}
		if req.Count == 0 {
			req.Count = 3
		}

		variants, err := svc.GenerateVariants(r.Context(), req.Request, req.Count)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not generate variants", err)
			return
		}

		RespondJSON(w, http.StatusOK, variants)
		logger.Infof(r.Context(), "✅  Generated %d script variants", len(variants))
	}
}

func ListTemplatesHandler(svc port.ScriptGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, svc.Templates())
	}
}
