package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/shopwave-api/internal/app/dto"
	"github.com/mrops-br/shopwave-api/internal/app/service"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/response"
)

// WishlistHandler handles HTTP requests for the wishlist
type WishlistHandler struct {
	service *service.WishlistService
}

func NewWishlistHandler(service *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.GetWishlist(r.Context()))
}

// GetStatus handles GET /wishlist/{id}
func (h *WishlistHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	response.JSON(w, http.StatusOK, &dto.WishlistStatusResponse{
		ProductID:  productID,
		Wishlisted: h.service.IsWishlisted(r.Context(), productID),
	})
}

// Toggle handles POST /wishlist/{id}/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ToggleWishlist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
