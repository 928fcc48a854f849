package get_products

import (
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
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

// Handle GET /api/v1/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /products - Failed to load catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products - Catalog retrieved successfully: products_count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
