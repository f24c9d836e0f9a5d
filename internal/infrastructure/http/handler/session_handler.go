package handler

import (
	"net/http"

	"github.com/mrops-br/shopwave-api/internal/app/service"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/response"
)

// SessionHandler handles HTTP requests for the shopper's session
type SessionHandler struct {
	service *service.SessionService
}

func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.GetSession(r.Context()))
}

// Reset handles POST /session/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ResetSession(r.Context()))
}
