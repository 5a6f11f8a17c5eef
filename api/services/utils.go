package services

import (
	"encoding/json"
	"net/http"

	"github.com/grouphub/user-group-services/internal/apperrors"
	"github.com/grouphub/user-group-services/models"
)

// WriteResponse writes a JSON body with the given status code.
func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {
	w.Header().Set("Content-Type", "application/json")

	// API responses are never cached so the client receives current data
	w.Header().Set("Cache-Control", "max-age=0")

	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// WriteSuccess wraps payload data in the response envelope.
func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}, location ...string) {
	WriteResponse(w, statusCode, models.Response{Success: 1, Data: data}, location...)
}

// WriteError renders a taxonomy error as a structured response with the
// status its kind maps to. Failures are terminal; nothing is retried.
func WriteError(w http.ResponseWriter, appErr *apperrors.Error) {
	response := models.Response{
		Success:      0,
		ErrorCode:    appErr.Code,
		ErrorDetails: appErr.Message,
		Errors:       appErr.Fields,
	}
	WriteResponse(w, appErr.Kind.HTTPStatus(), response)
}
