package get_product

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-StorefrontService/internal/service/catalog"
)

const (
	msgMissingSlug     = "slug товара обязателен"
	msgProductNotFound = "товар не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /products/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrProductNotFound):
			h.logger.Warn("GET /products/{slug} - Product not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgProductNotFound)

		default:
			h.logger.Error("GET /products/{slug} - Failed to load product: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{slug} - Product retrieved successfully: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
