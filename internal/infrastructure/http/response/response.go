package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/request"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an error response
func Error(w http.ResponseWriter, status int, err error) {
	errorType := "error"
	switch status {
	case http.StatusNotFound:
		errorType = "not_found"
	case http.StatusBadRequest:
		errorType = "bad_request"
	case http.StatusConflict:
		errorType = "conflict"
	case http.StatusInternalServerError:
		errorType = "internal_server_error"
	}

	JSON(w, status, ErrorResponse{
		Error:   errorType,
		Message: err.Error(),
	})
}

// StatusFor maps an error from the service layer onto an HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductOutOfStock),
		errors.Is(err, domain.ErrQuantityLimit):
		return http.StatusConflict
	case errors.Is(err, request.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidSortKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromError sends err with the status StatusFor picks
func FromError(w http.ResponseWriter, err error) {
	Error(w, StatusFor(err), err)
}
