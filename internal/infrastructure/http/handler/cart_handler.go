package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/shopwave-api/internal/app/dto"
	"github.com/mrops-br/shopwave-api/internal/app/service"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/request"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/response"
)

// CartHandler handles HTTP requests for the cart
type CartHandler struct {
	service   *service.CartService
	validator *request.Validator
	logger    *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, validator *request.Validator, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.GetCart(r.Context()))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartRequest
	if err := h.validator.BindJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid cart request",
			slog.String("error", err.Error()),
		)
		response.FromError(w, err)
		return
	}

	cart, err := h.service.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, cart)
}

// UpdateItem handles PATCH /cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateQuantityRequest
	if err := h.validator.BindJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid cart request",
			slog.String("error", err.Error()),
		)
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.service.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), *req.Quantity))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.RemoveFromCart(r.Context(), chi.URLParam(r, "id")))
}
