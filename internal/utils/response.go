package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"WattChat.influxDB/internal/models"
)

// RespondWithError sends a JSON error response using the APIError model.
// It sets the HTTP status code from the APIError and encodes the entire struct.
func RespondWithError(writer http.ResponseWriter, apiErr models.APIError) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(apiErr.StatusCode)

	if err := json.NewEncoder(writer).Encode(apiErr); err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(writer, "Failed to send error response", http.StatusInternalServerError)
	}
}

// RespondWithServiceError maps a service-layer error to an HTTP
// response. APIError values pass through verbatim; anything else is an
// internal error and the detail stays in the server log.
func RespondWithServiceError(writer http.ResponseWriter, err error) {
	var apiErr models.APIError
	if errors.As(err, &apiErr) {
		RespondWithError(writer, apiErr)
		return
	}
	log.Printf("Internal error: %v", err)
	RespondWithError(writer, models.NewAPIError(models.ErrorCodeInternalServerError, "internal server error", nil, http.StatusInternalServerError))
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
		http.Error(writer, "Failed to send JSON response", http.StatusInternalServerError)
	}
}
