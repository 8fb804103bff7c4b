package api

import (
	"encoding/json"
	"net/http"
)

// MethodNotAllowedHandler answers known routes hit with the wrong verb,
// using the API's JSON error shape.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": r.Method + " is not allowed on " + r.URL.Path,
		})
	}
}
