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

// CatalogHandler handles HTTP requests for categories and products
type CatalogHandler struct {
	service   *service.CatalogService
	validator *request.Validator
	logger    *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, validator *request.Validator, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ListCategories(r.Context()))
}

// BrowseProducts handles GET /products?search=&category=&sort=
func (h *CatalogHandler) BrowseProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.BrowseProductsRequest{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
	}
	if err := h.validator.Validate(&req); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid browse request",
			slog.String("error", err.Error()),
		)
		response.FromError(w, err)
		return
	}

	products, err := h.service.BrowseProducts(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}
