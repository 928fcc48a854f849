package get_cart

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-StorefrontService/internal/service/cart"
)

const (
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/session/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	result, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrSessionNotFound):
			h.logger.Warn("GET /session/cart - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /session/cart - Failed to get cart: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /session/cart - Cart retrieved successfully: session_id=%s, items_count=%d",
		sessionID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
