package handler

import (
	"encoding/json"
	"net/http"
)

// NotFoundHandler answers unknown routes with the API's JSON error shape.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "no route for " + r.Method + " " + r.URL.Path,
		})
	}
}
